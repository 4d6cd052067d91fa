package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quantora/trendcast"
	"github.com/quantora/trendcast/errs"
	"github.com/quantora/trendcast/forecast"
	"github.com/quantora/trendcast/series"
)

// ModelJSON is the fitted line as returned by the API.
type ModelJSON struct {
	Slope       float64 `json:"slope"`
	Intercept   float64 `json:"intercept"`
	RSquared    float64 `json:"r_squared"`
	Correlation float64 `json:"correlation"`
	Formula     string  `json:"formula"`
}

// ObservedPoint pairs an observed value with its in-sample prediction.
type ObservedPoint struct {
	Index     int     `json:"index"`
	Date      string  `json:"date,omitempty"`
	Actual    float64 `json:"actual"`
	Predicted float64 `json:"predicted"`
}

// FuturePoint is one extrapolated value beyond the observed range.
type FuturePoint struct {
	Index     int     `json:"index"`
	Date      string  `json:"date,omitempty"`
	Predicted float64 `json:"predicted"`
}

// ForecastResponse is the body returned by the forecast endpoint.
type ForecastResponse struct {
	Dataset     string          `json:"dataset"`
	Fingerprint string          `json:"fingerprint"`
	Rows        int             `json:"rows"`
	RowsDropped int             `json:"rows_dropped"`
	N           int             `json:"n"`
	SplitIndex  int             `json:"split_index"`
	Horizon     int             `json:"horizon"`
	Model       ModelJSON       `json:"model"`
	RMSE        forecast.Metric `json:"rmse"`
	MAE         forecast.Metric `json:"mae"`
	InSample    []ObservedPoint `json:"in_sample"`
	Forecast    []FuturePoint   `json:"forecast"`
}

// errorResponse is the JSON body for 4xx/5xx replies.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, errorResponse{Error: fmt.Sprintf(format, args...)})
}

// handleHealth reports liveness, version and uptime.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": trendcast.Version,
		"uptime":  time.Since(s.started).Round(time.Second).String(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// handleForecast ingests a CSV dataset (plain or compressed, raw body
// or multipart upload) and returns the fitted trend, validation
// metrics and the extrapolated horizon.
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	horizon, err := s.parseHorizon(r)
	if err != nil {
		s.metrics.ForecastsTotal.WithLabelValues(outcomeClientError).Inc()
		writeError(w, http.StatusBadRequest, "%s", err)

		return
	}

	name, data, err := s.readDataset(w, r)
	if err != nil {
		s.metrics.ForecastsTotal.WithLabelValues(outcomeClientError).Inc()
		writeError(w, http.StatusBadRequest, "%s", err)

		return
	}
	s.metrics.UploadBytes.Observe(float64(len(data)))

	ds, stats, err := series.DecodeCSV(name, data)
	if err != nil {
		s.metrics.ForecastsTotal.WithLabelValues(outcomeClientError).Inc()
		writeError(w, http.StatusBadRequest, "%s", err)

		return
	}
	if stats.Dropped > 0 {
		s.metrics.RowsDropped.Add(float64(stats.Dropped))
		logger.Warn().
			Str("dataset", ds.Name).
			Int("rows", stats.Rows).
			Int("dropped", stats.Dropped).
			Msg("dataset rows discarded during ingest")
	}

	result, err := forecast.Evaluate(ds, horizon)
	if err != nil {
		s.metrics.ForecastsTotal.WithLabelValues(outcomeServerError).Inc()
		logger.Error().Err(err).Str("dataset", ds.Name).Msg("forecast failed")
		writeError(w, http.StatusInternalServerError, "forecast failed: %s", err)

		return
	}

	s.metrics.ForecastsTotal.WithLabelValues(outcomeOK).Inc()
	logger.Info().
		Str("dataset", ds.Name).
		Int("n", ds.Len()).
		Int("horizon", horizon).
		Float64("slope", result.Model.Slope).
		Msg("forecast served")

	writeJSON(w, http.StatusOK, buildForecastResponse(ds, stats, result, horizon))
}

// handleSample returns a generated random-walk dataset, as CSV by
// default or JSON on request. Intended for trying the API without a
// real price history at hand.
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var opts []series.GenOption
	if raw := q.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			writeError(w, http.StatusBadRequest, "invalid days %q", raw)

			return
		}
		opts = append(opts, series.WithDays(days))
	}
	if raw := q.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid seed %q", raw)

			return
		}
		opts = append(opts, series.WithSeed(seed))
	}

	sample, err := series.Generate(opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%s", err)

		return
	}

	if q.Get("format") == "json" {
		writeJSON(w, http.StatusOK, map[string]any{
			"dataset": sample.Name,
			"dates":   sample.Dates,
			"values":  sample.Values,
		})

		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sample.csv"`)
	if err := sample.WriteCSV(w); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("sample write failed")
	}
}

// parseHorizon resolves the horizon query parameter against the
// configured bounds. A missing parameter falls back to the default.
func (s *Server) parseHorizon(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("horizon")
	if raw == "" {
		return s.cfg.Horizon.Default, nil
	}

	horizon, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errs.ErrInvalidHorizon, raw)
	}
	if horizon < s.cfg.Horizon.Min || horizon > s.cfg.Horizon.Max {
		return 0, fmt.Errorf("%w: %d is outside [%d, %d]",
			errs.ErrInvalidHorizon, horizon, s.cfg.Horizon.Min, s.cfg.Horizon.Max)
	}

	return horizon, nil
}

// readDataset extracts the uploaded dataset bytes from the request,
// accepting either a multipart form with a "file" field or the raw
// request body. The body size is capped by MaxUploadBytes.
func (s *Server) readDataset(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return "", nil, fmt.Errorf("dataset exceeds the %d byte upload limit", tooLarge.Limit)
			}

			return "", nil, fmt.Errorf("multipart upload needs a \"file\" field: %w", err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read upload: %w", err)
		}

		return header.Filename, data, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", nil, fmt.Errorf("dataset exceeds the %d byte upload limit", tooLarge.Limit)
		}

		return "", nil, fmt.Errorf("failed to read request body: %w", err)
	}

	return "upload", data, nil
}

// buildForecastResponse projects an evaluation result into the wire shape.
func buildForecastResponse(ds *series.Series, stats *series.ParseStats, result *forecast.Result, horizon int) ForecastResponse {
	dated := len(ds.Dates) == ds.Len() && ds.Len() > 0
	futureDates := ds.FutureDates(len(result.Future))

	inSample := make([]ObservedPoint, len(result.InSample))
	for i, p := range result.InSample {
		op := ObservedPoint{
			Index:     p.Index,
			Actual:    ds.Values[p.Index],
			Predicted: p.Value,
		}
		if dated {
			op.Date = ds.Dates[p.Index]
		}
		inSample[i] = op
	}

	future := make([]FuturePoint, len(result.Future))
	for i, p := range result.Future {
		fp := FuturePoint{
			Index:     p.Index,
			Predicted: p.Value,
		}
		if i < len(futureDates) {
			fp.Date = futureDates[i]
		}
		future[i] = fp
	}

	return ForecastResponse{
		Dataset:     ds.Name,
		Fingerprint: fmt.Sprintf("%016x", ds.Fingerprint()),
		Rows:        stats.Rows,
		RowsDropped: stats.Dropped,
		N:           ds.Len(),
		SplitIndex:  result.SplitIndex,
		Horizon:     horizon,
		Model: ModelJSON{
			Slope:       result.Model.Slope,
			Intercept:   result.Model.Intercept,
			RSquared:    result.Model.RSquared,
			Correlation: result.Model.Correlation,
			Formula:     result.Model.Formula(),
		},
		RMSE:     result.RMSE,
		MAE:      result.MAE,
		InSample: inSample,
		Forecast: future,
	}
}
