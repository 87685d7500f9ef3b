package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      float64
		places int32
		want   float64
	}{
		{"half_up", 1.005, 2, 1.01},
		{"half_away_negative", -1.005, 2, -1.01},
		{"float_noise", 499.99999999999, 2, 500},
		{"five_places", 0.004999999999999893, 5, 0.005},
		{"negative_zero", -0.001, 2, 0},
		{"integer", 42, 2, 42},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Round(tt.x, tt.places)
			assert.Equal(t, tt.want, got)
			assert.False(t, math.Signbit(got) && got == 0)
		})
	}
}

func TestRoundNonFinite(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
	assert.True(t, math.IsInf(Round(math.Inf(1), 2), 1))
}

func TestFixed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1234.50", Fixed(1234.5, 2))
	assert.Equal(t, "-0.10", Fixed(-0.1, 2))
	assert.Equal(t, "0.00", Fixed(math.NaN(), 2))
	assert.Equal(t, "50.0", Fixed(49.99, 1))
}
