// Package logger holds the process-wide structured logger.
//
// Logs always go to stderr, since lerpgen may write generated source to stdout.
// The logger discards everything until Initialize is called, so library code
// such as derive stays silent when used outside the CLI.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. Prefer ComponentLogger over using it directly.
var Logger = zap.NewNop().Sugar()

// Initialize points the global logger at stderr. verbosity is the number of
// -v flags given on the command line.
func Initialize(jsonOutput bool, verbosity int) {
	InitializeTo(os.Stderr, jsonOutput, verbosity)
}

// InitializeTo is Initialize with an explicit destination.
func InitializeTo(w io.Writer, jsonOutput bool, verbosity int) {
	var enc zapcore.Encoder
	if jsonOutput {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		enc = newConsoleEncoder()
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), VerbosityToLevel(verbosity))
	Logger = zap.New(core).Sugar()
}

// Cleanup flushes buffered entries.
func Cleanup() {
	_ = Logger.Sync()
}
