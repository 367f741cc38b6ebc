package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/klogins-hash/collectiv-intelligence/internal/report"
	"github.com/klogins-hash/collectiv-intelligence/internal/scoring"
	"github.com/klogins-hash/collectiv-intelligence/internal/store"
)

type ReportHandler struct {
	report *report.Report
	store  store.Store
}

func NewReportHandler(rep *report.Report, s store.Store) *ReportHandler {
	return &ReportHandler{report: rep, store: s}
}

// Current returns the report built at startup.
// GET /api/v1/report
func (h *ReportHandler) Current(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.report)
}

// Table returns the report as the plain-text table printed on stdout.
// GET /api/v1/report/table
func (h *ReportHandler) Table(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = h.report.WriteTable(w)
}

// Entity returns one row by entity name.
// GET /api/v1/entities/{name}
func (h *ReportHandler) Entity(w http.ResponseWriter, r *http.Request) {
	// chi matches against RawPath when set, leaving the param escaped.
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		var err error
		if name, err = url.PathUnescape(name); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid entity name"})
			return
		}
	}
	row, ok := h.report.Find(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "entity not found"})
		return
	}
	writeJSON(w, http.StatusOK, row)
}

// Verdicts returns the number of entities per band.
// GET /api/v1/verdicts
func (h *ReportHandler) Verdicts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.report.VerdictCounts())
}

// Dimensions describes the scoring rubric.
// GET /api/v1/dimensions
func (h *ReportHandler) Dimensions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoring.Rubric())
}

// List returns stored report summaries, newest first.
// GET /api/v1/reports?limit=N
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	list, err := h.store.ListReports(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if list == nil {
		list = []*store.ReportSummary{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get returns a stored report.
// GET /api/v1/reports/{id}
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid report id"})
		return
	}

	rep, err := h.store.GetReport(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if rep == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "report not found"})
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
