package series

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/quantora/trendcast/compress"
	"github.com/quantora/trendcast/errs"
	"github.com/quantora/trendcast/internal/options"
)

// maxConsecutiveBadRows caps how many structurally broken rows in a row
// are tolerated before parsing gives up on the remainder of the input.
const maxConsecutiveBadRows = 100

// ParseConfig holds CSV ingestion settings.
type ParseConfig struct {
	delimiter   rune
	dateColumn  string
	valueColumn string
}

// defaultParseConfig returns the default settings: delimiter sniffed
// from the header, columns recognized by name.
func defaultParseConfig() ParseConfig {
	return ParseConfig{}
}

// ParseOption is a functional option for ParseCSV.
type ParseOption = options.Option[*ParseConfig]

// WithDelimiter forces the field delimiter instead of sniffing it from
// the header line.
func WithDelimiter(d rune) ParseOption {
	return options.NoError(func(cfg *ParseConfig) {
		cfg.delimiter = d
	})
}

// WithDateColumn selects the date column by exact header name instead of
// the "contains date" rule.
func WithDateColumn(name string) ParseOption {
	return options.NoError(func(cfg *ParseConfig) {
		cfg.dateColumn = name
	})
}

// WithValueColumn selects the value column by exact header name instead
// of the "contains close or price" rule.
func WithValueColumn(name string) ParseOption {
	return options.NoError(func(cfg *ParseConfig) {
		cfg.valueColumn = name
	})
}

// ParseStats reports how ingestion treated the raw table.
type ParseStats struct {
	// Rows is the number of data rows encountered, excluding the header.
	Rows int
	// Dropped is how many of those rows were discarded as unparseable,
	// incomplete, or non-finite.
	Dropped int
}

// ParseCSV reads a two-column price table from r.
//
// The header row is required. The date column is the first header cell
// containing "date" and the value column the first containing "close"
// or "price", both case-insensitive; WithDateColumn and WithValueColumn
// override the recognition for other layouts. Comma, semicolon and tab
// delimiters are sniffed from the header line.
//
// Data rows that are structurally broken, incomplete, empty, or whose
// value does not parse to a finite number are dropped and counted in
// ParseStats. Surviving rows are sorted lexicographically by their raw
// date string before the series is built.
//
// Returns:
//   - *Series: Parsed series in date order
//   - *ParseStats: Row accounting for the caller to surface
//   - error: errs.ErrEmptyInput, errs.ErrMissingColumns, or
//     errs.ErrNoValidRows
func ParseCSV(r io.Reader, opts ...ParseOption) (*Series, *ParseStats, error) {
	cfg := defaultParseConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, nil, err
	}

	br := bufio.NewReader(r)
	headerLine, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	if strings.TrimSpace(headerLine) == "" {
		return nil, nil, fmt.Errorf("%w: no header row", errs.ErrEmptyInput)
	}

	delim := cfg.delimiter
	if delim == 0 {
		delim = sniffDelimiter(headerLine)
	}

	reader := csv.NewReader(io.MultiReader(strings.NewReader(headerLine), br))
	reader.Comma = delim
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("parse header: %w", err)
	}

	dateIdx, valueIdx := locateColumns(header, &cfg)
	if dateIdx < 0 || valueIdx < 0 {
		return nil, nil, fmt.Errorf("%w: header %q", errs.ErrMissingColumns, strings.TrimSpace(headerLine))
	}

	type obs struct {
		date  string
		value float64
	}

	stats := &ParseStats{}
	var rows []obs
	consecutiveBad := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Rows++
			stats.Dropped++
			consecutiveBad++
			if consecutiveBad > maxConsecutiveBadRows {
				break
			}
			continue
		}
		consecutiveBad = 0
		stats.Rows++

		if dateIdx >= len(record) || valueIdx >= len(record) {
			stats.Dropped++
			continue
		}

		date := strings.TrimSpace(record[dateIdx])
		raw := strings.TrimSpace(record[valueIdx])
		if date == "" || raw == "" || raw == "NA" || raw == "NaN" || raw == "null" {
			stats.Dropped++
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			stats.Dropped++
			continue
		}

		rows = append(rows, obs{date: date, value: value})
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: %d rows read", errs.ErrNoValidRows, stats.Rows)
	}

	slices.SortStableFunc(rows, func(a, b obs) int {
		return strings.Compare(a.date, b.date)
	})

	s := &Series{
		Dates:  make([]string, len(rows)),
		Values: make([]float64, len(rows)),
	}
	for i, row := range rows {
		s.Dates[i] = row.date
		s.Values[i] = row.value
	}

	return s, stats, nil
}

// DecodeCSV parses a possibly compressed CSV payload. The compression
// format is sniffed from the content first and falls back to the file
// extension of name; plain CSV passes through untouched. The series
// name is derived from name with compression and table extensions
// stripped.
func DecodeCSV(name string, data []byte, opts ...ParseOption) (*Series, *ParseStats, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", errs.ErrEmptyInput, name)
	}

	format := compress.Sniff(data)
	if format == compress.FormatNone {
		format = compress.DetectPath(name)
	}
	if format != compress.FormatNone {
		decoded, err := compress.Decompress(data, format)
		if err != nil {
			return nil, nil, fmt.Errorf("decompress %s: %w", format, err)
		}
		data = decoded
	}

	s, stats, err := ParseCSV(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, nil, err
	}
	s.Name = datasetName(name)

	return s, stats, nil
}

// Load reads a CSV file from disk, transparently decompressing it, and
// parses it into a Series.
func Load(path string, opts ...ParseOption) (*Series, *ParseStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	return DecodeCSV(path, data, opts...)
}

// sniffDelimiter picks the candidate delimiter with the most occurrences
// in the header line. Comma wins ties.
func sniffDelimiter(header string) rune {
	best := ','
	bestCount := strings.Count(header, ",")
	if c := strings.Count(header, ";"); c > bestCount {
		best, bestCount = ';', c
	}
	if c := strings.Count(header, "\t"); c > bestCount {
		best = '\t'
	}

	return best
}

// locateColumns resolves the date and value column indexes from the
// header row. Explicit column names in cfg take precedence; otherwise
// the first cell containing "date" and the first containing "close" or
// "price" are used. Either index is -1 when nothing matches.
func locateColumns(header []string, cfg *ParseConfig) (dateIdx, valueIdx int) {
	dateIdx, valueIdx = -1, -1

	for i, cell := range header {
		name := normalizeHeaderCell(cell)
		switch {
		case cfg.dateColumn != "" && strings.EqualFold(name, cfg.dateColumn):
			dateIdx = i
		case cfg.valueColumn != "" && strings.EqualFold(name, cfg.valueColumn):
			valueIdx = i
		case cfg.dateColumn == "" && dateIdx == -1 && strings.Contains(name, "date"):
			dateIdx = i
		case cfg.valueColumn == "" && valueIdx == -1 &&
			(strings.Contains(name, "close") || strings.Contains(name, "price")):
			valueIdx = i
		}
	}

	return dateIdx, valueIdx
}

// normalizeHeaderCell lowers a header cell and strips quotes, padding
// and a UTF-8 BOM.
func normalizeHeaderCell(cell string) string {
	cell = strings.TrimPrefix(cell, "\uFEFF")
	cell = strings.TrimSpace(strings.Trim(cell, "\""))

	return strings.ToLower(cell)
}

// strippedExts are the extensions removed when deriving a dataset name
// from a file path.
var strippedExts = map[string]struct{}{
	".csv": {}, ".txt": {},
	".gz": {}, ".gzip": {}, ".zst": {}, ".zstd": {},
	".lz4": {}, ".s2": {}, ".sz": {}, ".snappy": {},
}

// datasetName derives a display name from a file path.
func datasetName(path string) string {
	base := filepath.Base(path)
	for {
		ext := strings.ToLower(filepath.Ext(base))
		if _, ok := strippedExts[ext]; !ok {
			break
		}
		base = base[:len(base)-len(ext)]
	}

	if base == "" || base == "." || base == "-" {
		return "dataset"
	}

	return base
}
