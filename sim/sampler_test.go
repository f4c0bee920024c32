package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceSampler_Validation(t *testing.T) {
	tests := []struct {
		name    string
		spec    DurationSpec
		wantErr bool
	}{
		{"fixed valid", DurationSpec{Type: "fixed", Value: 2.0}, false},
		{"fixed zero", DurationSpec{Type: "fixed", Value: 0}, false},
		{"fixed negative", DurationSpec{Type: "fixed", Value: -1}, true},
		{"triangular valid", DurationSpec{Type: "triangular", Min: 1, Mode: 2, Max: 3}, false},
		{"triangular degenerate", DurationSpec{Type: "triangular", Min: 2, Mode: 2, Max: 2}, false},
		{"triangular min>mode", DurationSpec{Type: "triangular", Min: 3, Mode: 2, Max: 4}, true},
		{"triangular mode>max", DurationSpec{Type: "triangular", Min: 1, Mode: 5, Max: 4}, true},
		{"triangular negative min", DurationSpec{Type: "triangular", Min: -1, Mode: 2, Max: 3}, true},
		{"unknown type", DurationSpec{Type: "gaussian", Value: 1}, true},
		{"empty type", DurationSpec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServiceSampler(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, s)
			}
		})
	}
}

func TestFixedSampler_ReturnsValue(t *testing.T) {
	s, err := NewServiceSampler(DurationSpec{Type: "fixed", Value: 7.5})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		assert.Equal(t, 7.5, s.Sample(rng))
	}
}

func TestExponentialSampler_MatchesInverseCDF(t *testing.T) {
	// Same uniform source must reproduce -ln(1-u) * mean exactly.
	s := &ExponentialSampler{mean: 6.0}
	rngA := rand.New(rand.NewSource(99))
	rngB := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		got := s.Sample(rngA)
		u := rngB.Float64()
		want := -math.Log(1-u) * 6.0
		assert.Equal(t, want, got)
	}
}

func TestExponentialSampler_NonNegative_MeanApprox(t *testing.T) {
	s := &ExponentialSampler{mean: 10.0}
	rng := rand.New(rand.NewSource(42))
	sum := 0.0
	n := 200000
	for i := 0; i < n; i++ {
		v := s.Sample(rng)
		require.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	assert.InDelta(t, 10.0, sum/float64(n), 0.5)
}

func TestTriangularSampler_WithinBounds(t *testing.T) {
	s := &TriangularSampler{min: 6, mode: 10, max: 18}
	rng := rand.New(rand.NewSource(3))
	sawLower, sawUpper := false, false
	for i := 0; i < 10000; i++ {
		v := s.Sample(rng)
		require.GreaterOrEqual(t, v, 6.0)
		require.LessOrEqual(t, v, 18.0)
		// both inverse-CDF branches must be exercised
		if v < 10 {
			sawLower = true
		} else {
			sawUpper = true
		}
	}
	assert.True(t, sawLower, "no draws below the mode")
	assert.True(t, sawUpper, "no draws above the mode")
}

func TestTriangularSampler_Degenerate_ReturnsMin(t *testing.T) {
	s := &TriangularSampler{min: 4, mode: 4, max: 4}
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 4.0, s.Sample(rng))
}

func TestTriangularSampler_Deterministic(t *testing.T) {
	s := &TriangularSampler{min: 0.5, mode: 1, max: 2}
	rngA := rand.New(rand.NewSource(5))
	rngB := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		assert.Equal(t, s.Sample(rngA), s.Sample(rngB))
	}
}

func TestDwellSampler_BaselinePolicy_ExactDaySet(t *testing.T) {
	// Baseline dwell must only ever produce 3, 5 or 7 days, in minutes.
	s, err := NewDwellSampler(DwellPolicyBaseline)
	require.NoError(t, err)

	allowed := map[float64]bool{3 * MinutesPerDay: true, 5 * MinutesPerDay: true, 7 * MinutesPerDay: true}
	seen := map[float64]int{}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10000; i++ {
		v := s.Sample(rng)
		require.True(t, allowed[v], "unexpected dwell value %v", v)
		seen[v]++
	}
	// all three day-lengths should occur across 10k draws
	assert.Len(t, seen, 3)
}

func TestDwellSampler_ImprovedPolicy_ExactDaySet(t *testing.T) {
	s, err := NewDwellSampler(DwellPolicyImproved)
	require.NoError(t, err)

	allowed := map[float64]bool{2 * MinutesPerDay: true, 3 * MinutesPerDay: true, 4 * MinutesPerDay: true}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10000; i++ {
		require.True(t, allowed[s.Sample(rng)])
	}
}

func TestNewDwellSampler_UnknownPolicy(t *testing.T) {
	s, err := NewDwellSampler("aggressive")
	assert.Error(t, err)
	assert.Nil(t, s)
}
