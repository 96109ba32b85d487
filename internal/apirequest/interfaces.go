package apirequest

import "github.com/rs/zerolog"

//go:generate mockgen -source=interfaces.go -destination=../mock/apirequest_mock.go -package=mock

// LogLevelProvider exposes the active log verbosity. Masked request and
// reply dumps are only produced when it is debug or lower.
type LogLevelProvider interface {
	LogLevel() zerolog.Level
}

// IDGenerator produces identifiers that correlate the log entries of one call.
type IDGenerator interface {
	Generate() string
}
