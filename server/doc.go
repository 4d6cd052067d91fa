// Package server exposes the forecasting engine over HTTP.
//
// The API is deliberately small:
//
//	GET  /healthz              liveness probe
//	GET  /metrics              Prometheus metrics
//	POST /api/v1/forecast      fit a dataset and extrapolate
//	GET  /api/v1/sample        generated random-walk dataset
//
// The forecast endpoint accepts a CSV dataset either as the raw
// request body or as a multipart upload in a "file" field. Compressed
// payloads (gzip, zstd, lz4, s2, snappy) are detected from their
// leading bytes and unpacked transparently. The horizon is passed as
// a query parameter and checked against configured bounds; violations
// return 400 with a JSON error body.
//
// Every server owns its own Prometheus registry and logger, so tests
// and embedders can run several instances side by side.
package server
