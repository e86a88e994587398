package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{DebugLevel, zapcore.DebugLevel},
		{InfoLevel, zapcore.InfoLevel},
		{WarnLevel, zapcore.WarnLevel},
		{ErrorLevel, zapcore.ErrorLevel},
		{"unknown", defaultZapLevel},
		{"", defaultZapLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, toZapLevel(tt.input))
		})
	}
}

func TestGet_Singleton(t *testing.T) {
	first := Get(InfoLevel)
	second := Get(DebugLevel) // level ignored after first call

	assert.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotNil(t, log)
	// Must not panic or write anywhere.
	log.Infow("discarded", "key", "value")
	log.Debugf("discarded %d", 1)
}
