package daterange_test

import (
	"testing"
	"time"

	"innkeep/shared/daterange"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestConflicts(t *testing.T) {
	tests := []struct {
		name     string
		a        daterange.Range
		b        daterange.Range
		expected bool
	}{
		{
			name:     "overlapping stays",
			a:        daterange.New(day("2024-01-10"), day("2024-01-20")),
			b:        daterange.New(day("2024-01-15"), day("2024-01-25")),
			expected: true,
		},
		{
			name:     "same day turnover is allowed",
			a:        daterange.New(day("2024-01-10"), day("2024-01-15")),
			b:        daterange.New(day("2024-01-15"), day("2024-01-20")),
			expected: false,
		},
		{
			name:     "contained stay",
			a:        daterange.New(day("2024-01-10"), day("2024-01-20")),
			b:        daterange.New(day("2024-01-12"), day("2024-01-14")),
			expected: true,
		},
		{
			name:     "disjoint stays",
			a:        daterange.New(day("2024-01-10"), day("2024-01-12")),
			b:        daterange.New(day("2024-01-20"), day("2024-01-25")),
			expected: false,
		},
		{
			name:     "identical stays",
			a:        daterange.New(day("2024-01-10"), day("2024-01-15")),
			b:        daterange.New(day("2024-01-10"), day("2024-01-15")),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, daterange.Conflicts(tt.a, tt.b))
			assert.Equal(t, tt.expected, daterange.Conflicts(tt.b, tt.a))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        daterange.Range
		b        daterange.Range
		expected bool
	}{
		{
			name:     "shared endpoint counts",
			a:        daterange.New(day("2024-01-10"), day("2024-01-15")),
			b:        daterange.New(day("2024-01-15"), day("2024-01-20")),
			expected: true,
		},
		{
			name:     "adjacent days do not count",
			a:        daterange.New(day("2024-01-10"), day("2024-01-14")),
			b:        daterange.New(day("2024-01-15"), day("2024-01-20")),
			expected: false,
		},
		{
			name:     "disjoint ranges",
			a:        daterange.New(day("2024-01-01"), day("2024-01-05")),
			b:        daterange.New(day("2024-02-01"), day("2024-02-05")),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, daterange.Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.expected, daterange.Overlaps(tt.b, tt.a))
		})
	}
}

func TestOverlapDays(t *testing.T) {
	tests := []struct {
		name     string
		a        daterange.Range
		b        daterange.Range
		expected int
	}{
		{
			name:     "partial overlap counts both endpoint days",
			a:        daterange.New(day("2024-01-10"), day("2024-01-20")),
			b:        daterange.New(day("2024-01-15"), day("2024-01-25")),
			expected: 6,
		},
		{
			name:     "single shared day",
			a:        daterange.New(day("2024-01-10"), day("2024-01-15")),
			b:        daterange.New(day("2024-01-15"), day("2024-01-20")),
			expected: 1,
		},
		{
			name:     "disjoint ranges",
			a:        daterange.New(day("2024-01-10"), day("2024-01-12")),
			b:        daterange.New(day("2024-01-20"), day("2024-01-25")),
			expected: 0,
		},
		{
			name:     "contained range",
			a:        daterange.New(day("2024-01-01"), day("2024-01-31")),
			b:        daterange.New(day("2024-01-10"), day("2024-01-12")),
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, daterange.OverlapDays(tt.a, tt.b))
			assert.Equal(t, tt.expected, daterange.OverlapDays(tt.b, tt.a))
		})
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 5, daterange.Nights(daterange.New(day("2024-01-10"), day("2024-01-15"))))
	assert.Equal(t, 0, daterange.Nights(daterange.New(day("2024-01-10"), day("2024-01-10"))))
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 6, daterange.DaysInclusive(daterange.New(day("2024-01-10"), day("2024-01-15"))))
	assert.Equal(t, 1, daterange.DaysInclusive(daterange.New(day("2024-01-10"), day("2024-01-10"))))
}

func TestValid(t *testing.T) {
	assert.True(t, daterange.New(day("2024-01-10"), day("2024-01-15")).Valid())
	assert.True(t, daterange.New(day("2024-01-10"), day("2024-01-10")).Valid())
	assert.False(t, daterange.New(day("2024-01-15"), day("2024-01-10")).Valid())
}

func TestContains(t *testing.T) {
	r := daterange.New(day("2024-01-10"), day("2024-01-15"))

	assert.True(t, r.Contains(day("2024-01-10")))
	assert.True(t, r.Contains(day("2024-01-15")))
	assert.True(t, r.Contains(day("2024-01-12")))
	assert.False(t, r.Contains(day("2024-01-09")))
	assert.False(t, r.Contains(day("2024-01-16")))
}

func TestNormalizationIgnoresWallClock(t *testing.T) {
	a := daterange.New(
		time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
	)
	b := daterange.New(day("2024-01-15"), day("2024-01-20"))

	assert.False(t, daterange.Conflicts(a, b))
	assert.Equal(t, 5, daterange.Nights(a))
}
