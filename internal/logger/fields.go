package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldCriterion is the structured log field key for a criterion name.
	FieldCriterion = "criterion"
	// FieldCategory is the structured log field key for a criterion category.
	FieldCategory = "category"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CriterionFields returns standard zap fields that describe a criterion.
// Empty values are ignored to keep log entries compact.
func CriterionFields(name, category string) []zap.Field {
	return StringFields(
		StringField{Key: FieldCriterion, Value: name},
		StringField{Key: FieldCategory, Value: category},
	)
}

// WithCriterionFields attaches the criterion fields to the provided logger.
// If the logger is nil, a no-op logger is created to avoid panics.
func WithCriterionFields(logger *zap.Logger, name, category string) *zap.Logger {
	fields := CriterionFields(name, category)
	return WithFields(logger, fields...)
}
