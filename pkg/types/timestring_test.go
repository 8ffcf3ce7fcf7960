package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 8, 30, 9, 5, 42, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("9:00")
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("23:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "00:15", ts.String())

	ts, err = TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "11:30", ts.String())
}

func TestMidpoint(t *testing.T) {
	tests := []struct {
		name     string
		a, b     TimeString
		expected string
	}{
		{name: "whole hours", a: "06:00", b: "09:00", expected: "07:30"},
		{name: "minute overflow renormalized", a: "09:45", b: "10:15", expected: "10:00"},
		{name: "same time", a: "12:00", b: "12:00", expected: "12:00"},
		{name: "odd interval rounds down", a: "10:00", b: "10:01", expected: "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mid, err := Midpoint(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mid.String())
		})
	}
}

func TestMidpoint_InvalidInput(t *testing.T) {
	_, err := Midpoint("banana", "10:00")
	assert.Error(t, err)
}
