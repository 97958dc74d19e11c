package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStregCents_String(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		value    StregCents
		expected string
	}

	tests := []testCase{
		{name: "whole and cents", value: 725, expected: "7.25"},
		{name: "zero cents", value: 800, expected: "8.00"},
		{name: "zero", value: 0, expected: "0.00"},
		{name: "single digit cents", value: 5, expected: "0.05"},
		{name: "negative", value: -725, expected: "-7.25"},
		{name: "negative below one", value: -5, expected: "-0.05"},
		{name: "max", value: math.MaxInt64, expected: "92233720368547758.07"},
		{name: "min", value: math.MinInt64, expected: "-92233720368547758.08"},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestStregCents_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(struct {
		Price StregCents `json:"price"`
	}{Price: 1250})
	require.NoError(t, err)

	assert.JSONEq(t, `{"price":"12.50"}`, string(data))
}

func TestStregCents_Add(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		a, b        StregCents
		expectedRes StregCents
		expectedErr error
	}

	tests := []testCase{
		{name: "simple", a: 100, b: 250, expectedRes: 350},
		{name: "negative operand", a: 100, b: -250, expectedRes: -150},
		{name: "overflow", a: math.MaxInt64, b: 1, expectedErr: &StregCentsOverflowError{}},
		{name: "underflow", a: math.MinInt64, b: -1, expectedErr: &StregCentsOverflowError{}},
		{name: "max exactly", a: math.MaxInt64 - 1, b: 1, expectedRes: math.MaxInt64},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := tt.a.Add(tt.b)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestStregCents_Sub(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		a, b        StregCents
		expectedRes StregCents
		expectedErr error
	}

	tests := []testCase{
		{name: "simple", a: 1000, b: 600, expectedRes: 400},
		{name: "below zero", a: 100, b: 600, expectedRes: -500},
		{name: "underflow", a: math.MinInt64, b: 1, expectedErr: &StregCentsOverflowError{}},
		{name: "overflow", a: math.MaxInt64, b: -1, expectedErr: &StregCentsOverflowError{}},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := tt.a.Sub(tt.b)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestStregCents_Mul(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		value       StregCents
		amount      uint32
		expectedRes StregCents
		expectedErr error
	}

	tests := []testCase{
		{name: "simple", value: 200, amount: 3, expectedRes: 600},
		{name: "by zero", value: 200, amount: 0, expectedRes: 0},
		{name: "zero price max amount", value: 0, amount: math.MaxUint32, expectedRes: 0},
		{name: "overflow", value: math.MaxInt64 / 2, amount: 3, expectedErr: &StregCentsOverflowError{}},
		{name: "overflow with max amount", value: 1 << 40, amount: math.MaxUint32, expectedErr: &StregCentsOverflowError{}},
		{name: "negative underflow", value: math.MinInt64 / 2, amount: 3, expectedErr: &StregCentsOverflowError{}},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := tt.value.Mul(tt.amount)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestSumStregCents(t *testing.T) {
	t.Parallel()

	res, err := SumStregCents()
	require.NoError(t, err)
	assert.Equal(t, StregCents(0), res)

	res, err = SumStregCents(100, 200, 300)
	require.NoError(t, err)
	assert.Equal(t, StregCents(600), res)

	_, err = SumStregCents(math.MaxInt64, 1, -10)
	assert.ErrorIs(t, err, &StregCentsOverflowError{})
}
