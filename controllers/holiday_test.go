package controllers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	start, end, err := monthRange("2025", "6")
	require.NoError(t, err)
	require.Equal(t, "2025-06-01", start)
	require.Equal(t, "2025-07-01", end)

	// December rolls into the next year instead of a fictional day 31 bound.
	start, end, err = monthRange("2025", "12")
	require.NoError(t, err)
	require.Equal(t, "2025-12-01", start)
	require.Equal(t, "2026-01-01", end)

	// February needs no special casing with a half-open range.
	start, end, err = monthRange("2024", "2")
	require.NoError(t, err)
	require.Equal(t, "2024-02-01", start)
	require.Equal(t, "2024-03-01", end)

	_, _, err = monthRange("2025", "13")
	require.Error(t, err)
	_, _, err = monthRange("2025", "0")
	require.Error(t, err)
	_, _, err = monthRange("twenty", "1")
	require.Error(t, err)
}

func TestValidDate(t *testing.T) {
	require.True(t, validDate("2025-12-25"))
	require.False(t, validDate("2025-12-32"))
	require.False(t, validDate("25-12-2025"))
	require.False(t, validDate(""))
}
