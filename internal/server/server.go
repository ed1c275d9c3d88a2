package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/amortize/internal/calculator"
	"github.com/iwvelando/amortize/internal/config"
	"github.com/iwvelando/amortize/pkg/amortization"
	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/iwvelando/amortize/pkg/frequency"
	"github.com/iwvelando/amortize/pkg/output"
	"github.com/iwvelando/amortize/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	calc          *calculator.Calculator
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the amortization API.
func NewHandler(logger *zap.Logger, calc *calculator.Calculator, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = calculator.New(logger, nil)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	maxUploadSize := cfg.UploadSizeBytes()
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, calc: calc, maxUploadSize: maxUploadSize, version: trimmedVersion}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)
		r.Get("/frequencies", h.handleFrequencies)
		r.Get("/defaults", h.handleDefaults)
		r.Post("/schedule", h.handleSchedule)
		r.Post("/config", h.handleConfig)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request served",
				zap.String("op", "server.requestLogger"),
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

type scheduleRequest struct {
	Name string `json:"name"`
	amortization.LoanTerms
}

type scheduleResponse struct {
	output.Report
	Cached bool `json:"cached"`
}

type frequenciesResponse struct {
	Options            []frequency.Option `json:"options"`
	Payment            *frequency.Option  `json:"payment,omitempty"`
	Compounding        []frequency.Option `json:"compounding,omitempty"`
	DefaultCompounding *frequency.Option  `json:"defaultCompounding,omitempty"`
}

type configResponse struct {
	Reports    []output.Report `json:"reports"`
	CSV        string          `json:"csv"`
	Warnings   []string        `json:"warnings,omitempty"`
	Duration   string          `json:"duration"`
	ConfigYAML string          `json:"configYaml"`
}

var contentTypes = map[string]string{
	constants.OutputFormatPretty: "text/plain; charset=utf-8",
	constants.OutputFormatCSV:    "text/csv; charset=utf-8",
	constants.OutputFormatYAML:   "application/yaml",
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleFrequencies(w http.ResponseWriter, r *http.Request) {
	resp := frequenciesResponse{Options: frequency.Options()}

	if raw := r.URL.Query().Get("payment"); raw != "" {
		payment, err := frequency.Parse(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid payment frequency: %v", err), "server.handleFrequencies")
			return
		}
		def := frequency.DefaultCompounding(payment)
		resp.Payment = &frequency.Option{Text: payment.String(), Value: payment}
		resp.Compounding = frequency.CompoundingOptions(payment)
		resp.DefaultCompounding = &frequency.Option{Text: def.String(), Value: def}
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, amortization.DefaultTerms())
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSchedule"

	outputFormat := r.URL.Query().Get("format")
	if outputFormat == "" {
		outputFormat = constants.OutputFormatJSON
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode loan terms: %v", err), op)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		req.Name = constants.DefaultLoanName
	}
	if req.PaymentFrequency == 0 {
		req.PaymentFrequency = constants.DefaultPaymentFrequency
	}

	calc, err := h.calc.Calculate(r.Context(), req.Name, req.LoanTerms)
	if err != nil {
		h.respondError(w, statusFor(err), err.Error(), op)
		return
	}
	report := output.NewReport(calc.Name, calc.Result, calc.Warnings)

	if outputFormat == constants.OutputFormatJSON {
		h.writeJSON(w, http.StatusOK, scheduleResponse{Report: report, Cached: calc.Cached})
		return
	}

	var buf bytes.Buffer
	if err := output.Write(&buf, outputFormat, []output.Report{report}); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render schedule: %v", err), op)
		return
	}
	w.Header().Set("Content-Type", contentTypes[outputFormat])
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write response", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfig"

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	warnings := cfg.ValidateConfiguration()

	calculations, err := h.calc.CalculateAll(r.Context(), cfg)
	if err != nil {
		h.respondError(w, statusFor(err), err.Error(), op)
		return
	}
	reports := calculator.Reports(calculations)
	elapsed := time.Since(start)

	h.logger.Info("configuration calculated",
		zap.String("op", op),
		zap.Int("loans", len(reports)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, configResponse{
		Reports:    reports,
		CSV:        output.CsvString(reports),
		Warnings:   warnings,
		Duration:   elapsed.String(),
		ConfigYAML: buf.String(),
	})
}

// statusFor maps engine errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, amortization.ErrPaymentTooSmall):
		return http.StatusUnprocessableEntity
	case errors.Is(err, amortization.ErrInvalidLoanTerms):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
