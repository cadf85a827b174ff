package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmountBRL(t *testing.T) {
	testCases := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "cents_only", amount: "0.50", expected: "R$ 0,50"},
		{name: "no_grouping", amount: "150.50", expected: "R$ 150,50"},
		{name: "one_group", amount: "1234.56", expected: "R$ 1.234,56"},
		{name: "two_groups", amount: "1234567.89", expected: "R$ 1.234.567,89"},
		{name: "whole_amount_gets_cents", amount: "99", expected: "R$ 99,00"},
		{name: "rounds_to_two_places", amount: "10.005", expected: "R$ 10,01"},
		{name: "zero", amount: "0", expected: "R$ 0,00"},
		{name: "negative", amount: "-1234.56", expected: "-R$ 1.234,56"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmountBRL(decimal.RequireFromString(tc.amount)))
		})
	}
}
