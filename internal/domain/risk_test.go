package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSize(t *testing.T) {
	// riskAmount = 1000*0.02 = 20, perUnitRisk = |100-98| = 2, qty = 10
	qty, err := ComputeSize(SizingRequest{
		Equity:       decimal.NewFromInt(1000),
		EntryPrice:   decimal.NewFromInt(100),
		StopPrice:    decimal.NewFromInt(98),
		RiskFraction: decimal.NewFromFloat(0.02),
	})
	require.NoError(t, err)
	assert.True(t, qty.Equal(decimal.NewFromInt(10)), "got %s", qty.String())
}

func TestComputeSize_StopAboveEntry(t *testing.T) {
	// shorts use the same absolute distance
	qty, err := ComputeSize(SizingRequest{
		Equity:       decimal.NewFromInt(1000),
		EntryPrice:   decimal.NewFromInt(98),
		StopPrice:    decimal.NewFromInt(100),
		RiskFraction: decimal.NewFromFloat(0.02),
	})
	require.NoError(t, err)
	assert.True(t, qty.Equal(decimal.NewFromInt(10)))
}

func TestComputeSize_FlooredToStep(t *testing.T) {
	qty, err := ComputeSize(SizingRequest{
		Equity:       decimal.NewFromInt(1000),
		EntryPrice:   decimal.NewFromInt(100),
		StopPrice:    decimal.NewFromInt(97),
		RiskFraction: decimal.NewFromFloat(0.01),
		Step:         decimal.NewFromFloat(0.001),
	})
	require.NoError(t, err)
	// 10/3 = 3.333... floored to 3.333
	assert.True(t, qty.Equal(decimal.NewFromFloat(3.333)), "got %s", qty.String())
}

func TestComputeSize_Deterministic(t *testing.T) {
	req := SizingRequest{
		Equity:       decimal.NewFromInt(12345),
		EntryPrice:   decimal.NewFromFloat(68250),
		StopPrice:    decimal.NewFromFloat(67000),
		RiskFraction: decimal.NewFromFloat(0.015),
	}
	first, err := ComputeSize(req)
	require.NoError(t, err)
	second, err := ComputeSize(req)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestComputeSize_InvalidInputs(t *testing.T) {
	one := decimal.NewFromInt(1)
	cases := []struct {
		name string
		req  SizingRequest
	}{
		{"stop equals entry", SizingRequest{
			Equity: decimal.NewFromInt(1000), EntryPrice: decimal.NewFromInt(100),
			StopPrice: decimal.NewFromInt(100), RiskFraction: decimal.NewFromFloat(0.02),
		}},
		{"zero equity", SizingRequest{
			EntryPrice: decimal.NewFromInt(100), StopPrice: decimal.NewFromInt(98),
			RiskFraction: decimal.NewFromFloat(0.02),
		}},
		{"negative equity", SizingRequest{
			Equity: decimal.NewFromInt(-5), EntryPrice: decimal.NewFromInt(100),
			StopPrice: decimal.NewFromInt(98), RiskFraction: decimal.NewFromFloat(0.02),
		}},
		{"zero risk fraction", SizingRequest{
			Equity: decimal.NewFromInt(1000), EntryPrice: decimal.NewFromInt(100),
			StopPrice: decimal.NewFromInt(98),
		}},
		{"risk fraction above one", SizingRequest{
			Equity: decimal.NewFromInt(1000), EntryPrice: decimal.NewFromInt(100),
			StopPrice: decimal.NewFromInt(98), RiskFraction: one.Add(one),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeSize(tc.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRisk))
		})
	}
}
