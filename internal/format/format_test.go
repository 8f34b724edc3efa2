package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "+1,50%"},
		{-0.75, "-0,75%"},
		{0, "0,00%"},
		{12.345, "+12,35%"},
		{-3, "-3,00%"},
		{math.NaN(), "0,00%"},
	}
	for _, test := range tests {
		require.Equal(t, test.want, Percentage(test.in), "Percentage(%v)", test.in)
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.3, "R$ 12,30"},
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{-4.5, "-R$ 4,50"},
		{math.NaN(), "R$ 0,00"},
	}
	for _, test := range tests {
		require.Equal(t, test.want, Currency(test.in), "Currency(%v)", test.in)
	}
}

func TestVolume(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1_000, "1 mil"},
		{1_500, "1,5 mil"},
		{123_456, "123,5 mil"},
		{999_960, "1 mi"},
		{2_345_678, "2,3 mi"},
		{10_000_000, "10 mi"},
		{1_000_000_000, "1 bi"},
		{-1_500, "-1,5 mil"},
	}
	for _, test := range tests {
		require.Equal(t, test.want, Volume(test.in), "Volume(%d)", test.in)
	}
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 7, 0, 0, time.UTC)
	require.Equal(t, "05/03/2024 09:07", Timestamp(ts))
}

func TestSummary(t *testing.T) {
	require.Equal(t, "Exibindo 100 de 100 empresas", Summary(100, 100, ""))
	require.Equal(t, "Exibindo 100 de 100 empresas", Summary(100, 100, "   "))
	require.Equal(t, `Resultados para "petr": Exibindo 1 de 100 empresas`, Summary(1, 100, "petr"))
}
