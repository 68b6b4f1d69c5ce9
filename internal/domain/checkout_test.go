package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMinorUnits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		price string
		want  int64
	}{
		{"0", 0},
		{"0.01", 1},
		{"5.00", 500},
		{"19.99", 1999},
		{"19.994", 1999},
		{"19.995", 2000},
		{"1234.56", 123456},
	}
	for _, tc := range cases {
		got := MinorUnits(decimal.RequireFromString(tc.price))
		if got != tc.want {
			t.Errorf("MinorUnits(%s) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestClampQuantity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int64
		want int64
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{7, 7},
		{100000, 100000},
	}
	for _, tc := range cases {
		if got := ClampQuantity(tc.in); got != tc.want {
			t.Errorf("ClampQuantity(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
