// Package apperr defines the error kinds that cross package boundaries and
// decide how a failure is reported: CLI exit code or HTTP status.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfigPathUnresolved
	KindConfigMissing
	KindConfigParse
	KindConfigWrite
	KindNetwork
	KindResponseParse
)

var kindNames = map[Kind]string{
	KindUnknown:              "unknown",
	KindConfigPathUnresolved: "config path unresolved",
	KindConfigMissing:        "config missing",
	KindConfigParse:          "config parse error",
	KindConfigWrite:          "config write error",
	KindNetwork:              "network error",
	KindResponseParse:        "response parse error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsConfig reports whether k is one of the config store kinds.
func (k Kind) IsConfig() bool {
	switch k {
	case KindConfigPathUnresolved, KindConfigMissing, KindConfigParse, KindConfigWrite:
		return true
	}
	return false
}

// Error wraps an underlying error with its kind and, when relevant, the
// file path or URL it concerns.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an *Error of the given kind.
func New(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// Errorf is New with a formatted cause.
func Errorf(kind Kind, path, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
