package logger

import (
	"fmt"
	"sort"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var bufferPool = buffer.NewPool()

// consoleEncoder writes one compact line per entry, without timestamps:
//
//	WARN  derive  generation failed  type=Data  error=unsupported type []float64
//
// The level is only shown when it is not INFO. Context fields added with
// With are printed in key order, followed by the entry's own fields.
type consoleEncoder struct {
	*zapcore.MapObjectEncoder
}

func newConsoleEncoder() *consoleEncoder {
	return &consoleEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (enc *consoleEncoder) Clone() zapcore.Encoder {
	clone := newConsoleEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (enc *consoleEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := bufferPool.Get()

	if ent.Level != zapcore.InfoLevel {
		line.AppendString(ent.Level.CapitalString())
		line.AppendString("  ")
	}
	if ent.LoggerName != "" {
		line.AppendString(ent.LoggerName)
		line.AppendString("  ")
	}
	line.AppendString(ent.Message)

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		appendField(line, k, enc.Fields[k])
	}

	for _, f := range fields {
		m := zapcore.NewMapObjectEncoder()
		f.AddTo(m)
		// a field may add nothing (zap.Error(nil)) or, when namespaced, several keys
		for k, v := range m.Fields {
			appendField(line, k, v)
		}
	}

	if ent.Stack != "" {
		line.AppendString("\n")
		line.AppendString(ent.Stack)
	}
	line.AppendString("\n")
	return line, nil
}

func appendField(line *buffer.Buffer, key string, value any) {
	line.AppendString("  ")
	line.AppendString(key)
	line.AppendByte('=')
	line.AppendString(fmt.Sprint(value))
}
