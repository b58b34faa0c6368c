package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rpgo/creditcalc/internal/calculation"
	"github.com/rpgo/creditcalc/internal/config"
	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/rpgo/creditcalc/internal/output"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

// Handler serves the loan calculator over HTTP. The engine is stateless so
// one Handler serves concurrent requests.
type Handler struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger logrus.FieldLogger
}

// NewHandler creates a handler around an engine
func NewHandler(engine *calculation.CalculationEngine, parser *config.InputParser, logger logrus.FieldLogger) *Handler {
	return &Handler{engine: engine, parser: parser, logger: logger}
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Calculate resolves one loan request. The optional format query parameter
// selects a registered formatter instead of the JSON result.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.LoanRequest
	if !h.decode(w, r, &req) {
		return
	}

	params, err := h.parser.BuildParameters(req)
	if err != nil {
		h.fail(w, err)
		return
	}
	result, err := h.engine.Calculate(params)
	if err != nil {
		h.fail(w, err)
		return
	}

	if format := r.URL.Query().Get("format"); format != "" {
		h.render(w, output.NewResultReport(result), format)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Batch resolves every loan of a batch body. Rejected loans are reported in
// the failures list and do not fail the request.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var cfg domain.Configuration
	if !h.decode(w, r, &cfg) {
		return
	}
	if err := h.parser.ValidateConfiguration(&cfg); err != nil {
		h.fail(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	batch := h.engine.RunBatch(&cfg, h.parser)
	if format := r.URL.Query().Get("format"); format != "" {
		h.render(w, output.NewBatchReport(batch), format)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

// Ledger summarizes what has been repaid against a principal
func (h *Handler) Ledger(w http.ResponseWriter, r *http.Request) {
	var ledger domain.RepaymentLedger
	if !h.decode(w, r, &ledger) {
		return
	}
	summary, err := calculation.SummarizeLedger(ledger)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Formats lists the registered output formats
func (h *Handler) Formats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"formats": output.AvailableFormatterNames(),
		"aliases": output.AvailableFormatAliases(),
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) render(w http.ResponseWriter, report *output.Report, format string) {
	f, err := output.LookupFormatter(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	data, err := f.Format(report)
	if err != nil {
		h.logger.WithError(err).Error("formatting response")
		writeError(w, http.StatusInternalServerError, "failed to format response")
		return
	}
	w.Header().Set("Content-Type", contentType(f))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.WithError(err).Error("request failed")
	} else {
		h.logger.WithError(err).Debug("request rejected")
	}
	writeError(w, status, err.Error())
}

// StatusFor maps an engine or validation error onto an HTTP status code
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInsufficientPayment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrAmbiguousParameters):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func contentType(f output.Formatter) string {
	switch output.Extension(f) {
	case "json":
		return "application/json"
	case "html":
		return "text/html; charset=utf-8"
	case "csv":
		return "text/csv"
	case "yaml":
		return "application/yaml"
	case "xml":
		return "application/xml"
	default:
		return "text/plain; charset=utf-8"
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
