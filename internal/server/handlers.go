package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/thaitax/pit-calculator/internal/calculation"
	"github.com/thaitax/pit-calculator/internal/domain"
	"github.com/thaitax/pit-calculator/internal/form"
)

// CalculationRequest is the JSON body of POST /tax/calculations.
type CalculationRequest struct {
	Variant string          `json:"variant"`
	Input   domain.TaxInput `json:"input"`
}

// ErrorResponse is returned with every 4xx and 5xx status.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ExpenseAllowanceResponse is the body of GET /tax/expense-allowance.
type ExpenseAllowanceResponse struct {
	Salary   decimal.Decimal `json:"salary"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CounterResponse is the body of GET /tax/counter-step.
type CounterResponse struct {
	Value int `json:"value"`
}

// BracketResponse describes one band of the schedule.
type BracketResponse struct {
	Range     string          `json:"range"`
	Lower     decimal.Decimal `json:"lower"`
	Upper     decimal.Decimal `json:"upper"`
	Unbounded bool            `json:"unbounded"`
	Rate      decimal.Decimal `json:"rate"`
}

// TaxHandlers serves the calculator endpoints.
type TaxHandlers struct {
	engine *calculation.CalculationEngine
	logger logrus.FieldLogger
}

// NewTaxHandlers constructs the handlers around a calculation engine.
func NewTaxHandlers(logger logrus.FieldLogger, engine *calculation.CalculationEngine) *TaxHandlers {
	return &TaxHandlers{engine: engine, logger: logger}
}

// Calculate handles POST /tax/calculations.
func (h *TaxHandlers) Calculate(c echo.Context) error {
	var req CalculationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
	}

	variant, err := domain.ParseVariant(req.Variant)
	if err != nil {
		return h.respondError(c, err)
	}
	return h.calculate(c, variant, req.Input)
}

// CalculateForm handles POST /tax/calculations/form, a urlencoded submission
// keyed by the calculator form's field names.
func (h *TaxHandlers) CalculateForm(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form body"})
	}

	variant, in, err := form.Collect(values)
	if err != nil {
		return h.respondError(c, err)
	}
	return h.calculate(c, variant, in)
}

func (h *TaxHandlers) calculate(c echo.Context, variant domain.Variant, in domain.TaxInput) error {
	result, err := h.engine.Calculate(variant, in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ExpenseAllowance handles GET /tax/expense-allowance?salary=...
func (h *TaxHandlers) ExpenseAllowance(c echo.Context) error {
	salary := form.ParseAmount(c.QueryParam(form.FieldSalary))
	if salary.IsNegative() {
		return h.respondError(c, &domain.InputError{Field: "salary", Reason: "must not be negative, got " + salary.String()})
	}
	return c.JSON(http.StatusOK, ExpenseAllowanceResponse{
		Salary:   salary,
		Expenses: calculation.ExpenseAllowance(salary),
	})
}

// CounterStep handles GET /tax/counter-step?value=...&delta=..., the +/- buttons
// of the family counters.
func (h *TaxHandlers) CounterStep(c echo.Context) error {
	value := form.ParseCount(c.QueryParam("value"))
	delta := form.ParseCount(c.QueryParam("delta"))
	return c.JSON(http.StatusOK, CounterResponse{Value: form.StepCounter(value, delta)})
}

// Brackets handles GET /tax/brackets.
func (h *TaxHandlers) Brackets(c echo.Context) error {
	_, breakdown := calculation.ApplyProgressiveBrackets(decimal.Zero, h.engine.Brackets)
	return c.JSON(http.StatusOK, lo.Map(breakdown, func(b domain.BracketBreakdown, _ int) BracketResponse {
		return BracketResponse{
			Range:     b.Range,
			Lower:     b.Lower,
			Upper:     b.Upper,
			Unbounded: b.Unbounded,
			Rate:      b.Rate,
		}
	}))
}

func (h *TaxHandlers) respondError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	}
	h.logger.WithError(err).Error("calculation failed")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
}
