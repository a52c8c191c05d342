package api

import (
	"math"
	"net/http"

	"frauddash/domain/dataset"

	"github.com/go-chi/chi/v5"
)

// HealthResponse reports whether the dataset loaded
type HealthResponse struct {
	Status  string `json:"status"`
	Rows    int    `json:"rows,omitempty"`
	Columns int    `json:"columns,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SeriesResponse is one partition of a numerical feature. NaN values
// (kept nulls) encode as JSON null.
type SeriesResponse struct {
	Label     dataset.Label `json:"label"`
	Values    []*float64    `json:"values"`
	Nulls     int           `json:"nulls"`
	X         []float64     `json:"x"`
	Y         []float64     `json:"y"`
	Bandwidth float64       `json:"bandwidth"`
}

// NumericalResponse holds both partitions of a numerical feature
type NumericalResponse struct {
	Feature string           `json:"feature"`
	Groups  []SeriesResponse `json:"groups"`
}

// CorrelationResponse is the matrix with undefined coefficients as null
type CorrelationResponse struct {
	Columns []string     `json:"columns"`
	Values  [][]*float64 `json:"values"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ov, err := h.service.Overview(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Rows: ov.Rows, Columns: ov.Columns})
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.service.Overview(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}

func (h *Handler) handleFeatures(w http.ResponseWriter, r *http.Request) {
	features, err := h.service.Features(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"features": features,
		"defaults": dataset.DefaultSelection(),
	})
}

func (h *Handler) handleNumerical(w http.ResponseWriter, r *http.Request) {
	section, err := h.service.Numerical(r.Context(), chi.URLParam(r, "feature"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := NumericalResponse{Feature: section.Feature}
	for i, g := range section.Series.Groups {
		sr := SeriesResponse{Label: g.Label, Values: nullable(g.Values), Nulls: g.Nulls}
		if i < len(section.Curves) {
			c := section.Curves[i].Curve
			sr.X, sr.Y, sr.Bandwidth = c.X, c.Y, c.Bandwidth
		}
		resp.Groups = append(resp.Groups, sr)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCategorical(w http.ResponseWriter, r *http.Request) {
	section, err := h.service.Categorical(r.Context(), chi.URLParam(r, "feature"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, section.Table)
}

func (h *Handler) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.Correlation(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := CorrelationResponse{Columns: m.Columns, Values: make([][]*float64, len(m.Values))}
	for i, row := range m.Values {
		resp.Values[i] = nullable(row)
	}
	writeJSON(w, http.StatusOK, resp)
}

func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[i] = pointer(v)
		}
	}
	return out
}

func pointer[T any](v T) *T {
	return &v
}
