package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rpgo/investment-calculator/internal/api/models"
	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/output"
)

// ProjectionHandler handles projection-related requests
type ProjectionHandler struct {
	engine   *calculation.ProjectionEngine
	parser   *config.InputParser
	currency domain.CurrencyOptions
}

// NewProjectionHandler creates a new projection handler
func NewProjectionHandler(engine *calculation.ProjectionEngine, currency domain.CurrencyOptions) *ProjectionHandler {
	if engine == nil {
		engine = calculation.NewProjectionEngine()
	}
	return &ProjectionHandler{engine: engine, parser: config.NewInputParser(), currency: currency}
}

// Defaults handles GET /api/v1/defaults
func (h *ProjectionHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultsResponse{
		Input:               config.DefaultInput(),
		Currency:            h.currency,
		CompoundFrequencies: domain.CompoundFrequencies,
	})
}

// Project handles POST /api/v1/projections
func (h *ProjectionHandler) Project(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	in, ok := h.coerce(c, req.Input)
	if !ok {
		return
	}

	name := req.Name
	if name == "" {
		name = "Projection"
	}
	projection := h.engine.Calculate(name, in)
	if !projection.Result.Finite() {
		overflow(c)
		return
	}
	if !req.Trace {
		projection.Trace = nil
	}

	r := projection.Result
	c.JSON(http.StatusOK, models.ProjectionResponse{
		ID:         uuid.NewString(),
		Projection: projection,
		Display: models.DisplayValues{
			FutureValue:            output.FormatCurrency(r.FutureValue, h.currency),
			TotalPrincipal:         output.FormatCurrency(r.TotalPrincipal, h.currency),
			TotalContributions:     output.FormatCurrency(r.TotalContributions, h.currency),
			TotalInterest:          output.FormatCurrency(r.TotalInterest, h.currency),
			InflationAdjustedValue: output.FormatCurrency(r.InflationAdjustedValue, h.currency),
		},
	})
}

// Compare handles POST /api/v1/projections/compare
func (h *ProjectionHandler) Compare(c *gin.Context) {
	comparison, ok := h.compare(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// Render handles POST /api/v1/projections/render?format=html
func (h *ProjectionHandler) Render(c *gin.Context) {
	format := c.DefaultQuery("format", "html")
	f := output.GetFormatterByName(format)
	if f == nil {
		badRequest(c, "UNSUPPORTED_FORMAT", output.UnsupportedFormatError(format))
		return
	}

	comparison, ok := h.compare(c)
	if !ok {
		return
	}
	data, err := f.Format(comparison)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewError("RENDER_ERROR", err.Error()))
		return
	}
	c.Data(http.StatusOK, contentType(f.Name()), data)
}

// Sweep handles POST /api/v1/projections/sweep
func (h *ProjectionHandler) Sweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	in, ok := h.coerce(c, req.Input)
	if !ok {
		return
	}
	if req.From <= -100 {
		c.JSON(http.StatusUnprocessableEntity, models.NewError("OUT_OF_RANGE", "sweep must start above -100%"))
		return
	}

	points, err := calculation.Sweep(in, req.From, req.To, req.Step)
	if err != nil {
		badRequest(c, "INVALID_SWEEP", err)
		return
	}
	for _, p := range points {
		if !p.Result.Finite() {
			overflow(c)
			return
		}
	}
	c.JSON(http.StatusOK, models.SweepResponse{Input: in, Points: points})
}

// coerce converts and range-checks collector input, writing the error response on failure.
func (h *ProjectionHandler) coerce(c *gin.Context, raw domain.RawInput) (domain.ProjectionInput, bool) {
	in, err := calculation.FromRaw(raw)
	if err != nil {
		badRequest(c, "INVALID_INPUT", err)
		return in, false
	}
	if err := h.parser.ValidateInput(in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.NewError("OUT_OF_RANGE", err.Error()))
		return in, false
	}
	return in, true
}

func (h *ProjectionHandler) compare(c *gin.Context) (*domain.ScenarioComparison, bool) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return nil, false
	}

	cfg := &domain.Configuration{Currency: h.currency, Scenarios: req.Scenarios}
	if req.Currency != nil {
		cfg.Currency = *req.Currency
	}
	if err := h.parser.ValidateConfiguration(cfg); err != nil {
		status, code := http.StatusUnprocessableEntity, "INVALID_CONFIGURATION"
		if errors.Is(err, calculation.ErrNonNumeric) || errors.Is(err, calculation.ErrFractionalYears) {
			status, code = http.StatusBadRequest, "INVALID_INPUT"
		}
		c.JSON(status, models.NewError(code, err.Error()))
		return nil, false
	}

	comparison, err := h.engine.RunScenarios(c.Request.Context(), cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewError("PROJECTION_ERROR", err.Error()))
		return nil, false
	}
	for _, s := range comparison.Scenarios {
		if !s.Result.Finite() {
			overflow(c)
			return nil, false
		}
	}
	return comparison, true
}

// overflow reports a projection whose figures left the float64 range.
func overflow(c *gin.Context) {
	c.JSON(http.StatusUnprocessableEntity, models.NewError("OUT_OF_RANGE", "projection overflows; reduce the amounts, rate or horizon"))
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.NewError(code, err.Error()))
}

func contentType(format string) string {
	switch output.ExtensionFor(format) {
	case "html":
		return "text/html; charset=utf-8"
	case "json":
		return "application/json; charset=utf-8"
	case "csv":
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
