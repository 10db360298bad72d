package logger

import (
	"go.uber.org/zap"
)

// Field type alias for better abstraction
type Field = zap.Field

// Field construction functions - abstracts zap implementation
// This allows using logger field functions instead of importing zap directly

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// ErrorField constructs a field that carries an error (alias for Err)
func ErrorField(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}
