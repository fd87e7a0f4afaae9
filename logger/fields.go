package logger

import (
	"go.uber.org/zap"
)

// Structured field names shared by every lerpgen component.
const (
	// Source locations
	FieldPackage = "package"
	FieldFile    = "file"
	FieldLine    = "line"
	FieldOutput  = "output"

	// Generation
	FieldType     = "type"
	FieldField    = "field"
	FieldStrategy = "strategy"
	FieldScalar   = "scalar"
	FieldShape    = "shape"

	// Errors
	FieldError     = "error"
	FieldErrorKind = "error_kind"

	// Counts
	FieldCount = "count"

	// Configuration
	FieldConfigFile = "config_file"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	gen := derive.New(derive.Options{
//	    Logger: logger.ComponentLogger("derive"),
//	})
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
// Use for sub-operations that need extra context fields.
//
// Example:
//
//	typeLogger := logger.ChildLogger(baseLogger, logger.FieldType, s.Name)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
