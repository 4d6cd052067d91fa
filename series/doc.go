// Package series holds the observed price series and everything that
// produces one: CSV ingestion, compressed file loading, and a seeded
// synthetic generator.
//
// A Series pairs raw date labels with float64 values. The numeric core
// only ever sees the values by index; dates exist for display, and the
// date-stepping helpers here translate future indexes back into labels.
//
// Ingestion is tolerant by contract: delimiters are sniffed, the date
// and close/price columns are recognized by header name, and rows that
// do not parse are dropped and counted rather than failing the load.
package series
