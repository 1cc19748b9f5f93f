package domain

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultQuantityStep is the minimum tradable increment used when a pair has
// no configured step.
var DefaultQuantityStep = decimal.New(1, -6)

// SizingRequest holds the inputs of a risk-based position sizing calculation.
// RiskFraction is the proportion of equity the trader is willing to lose
// before the stop is hit (0 < f <= 1).
type SizingRequest struct {
	Equity       decimal.Decimal
	EntryPrice   decimal.Decimal
	StopPrice    decimal.Decimal
	RiskFraction decimal.Decimal
	// Step is the pair's minimum tradable increment; DefaultQuantityStep when zero.
	Step decimal.Decimal
}

// ComputeSize returns the order quantity whose loss at the stop price equals
// equity*riskFraction. The result is floored to the pair's quantity step.
// Deterministic, no side effects.
func ComputeSize(req SizingRequest) (decimal.Decimal, error) {
	if req.Equity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.Wrapf(ErrInvalidRisk, "equity must be positive, got %s", req.Equity.String())
	}
	if req.RiskFraction.LessThanOrEqual(decimal.Zero) || req.RiskFraction.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, errors.Wrapf(ErrInvalidRisk, "risk fraction must be in (0, 1], got %s", req.RiskFraction.String())
	}

	perUnitRisk := req.EntryPrice.Sub(req.StopPrice).Abs()
	if perUnitRisk.IsZero() {
		return decimal.Zero, errors.Wrap(ErrInvalidRisk, "stop price equals entry price")
	}

	step := req.Step
	if step.LessThanOrEqual(decimal.Zero) {
		step = DefaultQuantityStep
	}

	riskAmount := req.Equity.Mul(req.RiskFraction)
	qty := riskAmount.Div(perUnitRisk)

	return qty.Div(step).Floor().Mul(step), nil
}
