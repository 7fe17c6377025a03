package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/billx-go/pkg/billx/models"
)

func TestCleanNumberText(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
		ok       bool
	}{
		{"$1,234.50", 1234.50, true},
		{"1234", int64(1234), true},
		{"  -100 ", int64(-100), true},
		{"Rs. 2,500/-", nil, false},
		{"₹ 99.9", 99.9, true},
		{"--", nil, false},
		{"", nil, false},
		{"   ", nil, false},
		{"abc", nil, false},
		{".", nil, false},
		{"-", nil, false},
		{"-.", nil, false},
		{"-0", nil, false},
		{"1.2.3", nil, false},
		{"1-2", nil, false},
		{".5", 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, ok := CleanNumberText(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCleanNumber(t *testing.T) {
	v, ok := CleanNumber(models.Number(1234.5))
	assert.True(t, ok)
	assert.Equal(t, 1234.5, v, "numbers pass through unchanged")

	v, ok = CleanNumber(models.Date(45000))
	assert.True(t, ok)
	assert.Equal(t, 45000.0, v)

	_, ok = CleanNumber(models.Empty())
	assert.False(t, ok)

	_, ok = CleanNumber(models.Cell{Kind: models.KindError})
	assert.False(t, ok)

	v, ok = CleanNumber(models.Text("USD 12"))
	assert.True(t, ok)
	assert.Equal(t, int64(12), v)
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		cell     models.Cell
		date1904 bool
		expected string
		ok       bool
	}{
		{"date serial", models.Date(45292), false, "2024-01-01", true},
		{"positive number", models.Number(45292), false, "2024-01-01", true},
		{"1904 epoch", models.Date(43830), true, "2024-01-01", true},
		{"negative number", models.Number(-3), false, "-3", true},
		{"zero", models.Number(0), false, "0", true},
		{"negative serial falls back", models.Date(-1), false, "-1", true},
		{"text is trimmed", models.Text("  12/03/2024 "), false, "12/03/2024", true},
		{"blank text", models.Text("   "), false, "", false},
		{"empty", models.Empty(), false, "", false},
		{"error", models.Cell{Kind: models.KindError}, false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := FormatDate(tt.cell, tt.date1904)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}
