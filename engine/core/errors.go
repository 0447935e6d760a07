package core

import (
	"errors"
)

var (
	ErrErrorLogClosed    = errors.New("error log already closed")
	ErrErrorLogCorrupted = errors.New("error log output stream corrupted, log closed")
	ErrInvalidLogLevel   = errors.New("invalid log level")
)
