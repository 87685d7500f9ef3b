package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level  string
		format string
		want   zapcore.Level
	}{
		{"debug", "console", zapcore.DebugLevel},
		{"warn", "json", zapcore.WarnLevel},
		{"", "console", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.level+"_"+tt.format, func(t *testing.T) {
			t.Parallel()
			l, err := New(tt.level, tt.format)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.want))
			assert.False(t, l.Core().Enabled(tt.want-1))
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	t.Parallel()

	_, err := New("chatty", "console")
	assert.Error(t, err)
}
