package infra

import (
	"errors"
	"log/slog"

	"tripbook-reservations/internal/pkg/errs"
)

type AdapterErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound      AdapterErrorKind = "NOT_FOUND"
	KindStoreFailure  AdapterErrorKind = "STORE_FAILURE"
	KindRemoteFailure AdapterErrorKind = "REMOTE_FAILURE"
)

type AdapterError struct {
	Kind AdapterErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e AdapterError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e AdapterError) Unwrap() error {
	return e.err
}

func NewError(kind AdapterErrorKind, msg string) error {
	return AdapterError{Kind: kind, msg: msg}
}

func WrapErr(logger *slog.Logger, kind AdapterErrorKind, msg string, err error) error {
	if logger != nil && kind != KindNotFound {
		logger.Error("adapter error: "+msg, slog.String("kind", string(kind)))
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return AdapterError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind AdapterErrorKind) bool {
	var e AdapterError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
