package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The encoder must never drop a field.
func TestConsoleEncoderKeepsFields(t *testing.T) {
	enc := newConsoleEncoder()
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "derive",
		Message:    "field classified",
	}

	tests := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String(FieldType, "Particle"), "type=Particle"},
		{zap.String(FieldField, "Pos"), "field=Pos"},
		{zap.Int(FieldCount, 3), "count=3"},
		{zap.Bool("fallback", true), "fallback=true"},
		{zap.Float64("t", 0.5), "t=0.5"},
		{zap.String("field.with.dots", "x"), "field.with.dots=x"},
		{zap.Error(nil), ""},
	}
	var fields []zapcore.Field
	for _, tt := range tests {
		fields = append(fields, tt.field)
	}

	buf, err := enc.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := buf.String()

	for _, tt := range tests {
		assert.Contains(t, out, tt.mustFind)
	}
	assert.NotContains(t, out, "INFO")
	assert.Contains(t, out, "derive  field classified")
}

func TestConsoleEncoderLevels(t *testing.T) {
	enc := newConsoleEncoder()

	buf, err := enc.EncodeEntry(zapcore.Entry{Level: zapcore.WarnLevel, Message: "careful"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "WARN  careful\n", buf.String())

	buf, err = enc.EncodeEntry(zapcore.Entry{Level: zapcore.InfoLevel, Message: "fine"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "fine\n", buf.String())
}

func TestConsoleEncoderContextFields(t *testing.T) {
	var out bytes.Buffer
	core := zapcore.NewCore(newConsoleEncoder(), zapcore.AddSync(&out), zapcore.DebugLevel)
	log := zap.New(core).Sugar().Named("lerpgen")

	child := log.With(FieldType, "Data", FieldPackage, "shapes")
	child.Infow("wrote generated code", FieldOutput, "data_lerp.go")
	log.Infow("done")

	assert.Equal(t,
		"lerpgen  wrote generated code  package=shapes  type=Data  output=data_lerp.go\n"+
			"lerpgen  done\n",
		out.String())
}
