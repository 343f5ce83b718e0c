package logging

import "github.com/vvka-141/dbconfig/pkg/dbconfig"

var _ dbconfig.Logger = (*NullLogger)(nil)

// NullLogger discards every message. Tests and dry library use pass it
// wherever a dbconfig.Logger is required.
type NullLogger struct{}

// NewNullLogger returns a NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}

func (*NullLogger) Info(string, ...interface{}) {}

func (*NullLogger) Error(string, ...interface{}) {}
