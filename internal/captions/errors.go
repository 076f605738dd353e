package captions

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Kind tags an Error with the failure mode it represents. Handlers translate
// kinds into HTTP statuses.
type Kind string

const (
	KindUnknown         Kind = "unknown"
	KindNotFound        Kind = "not_found"
	KindDisabled        Kind = "disabled"
	KindUnavailable     Kind = "unavailable"
	KindBlocked         Kind = "blocked"
	KindAgeRestricted   Kind = "age_restricted"
	KindInvalidID       Kind = "invalid_id"
	KindTokenRequired   Kind = "token_required"
	KindUpstreamFailure Kind = "upstream_failure"
)

// Error is a classified caption retrieval failure. Message is safe to show
// to API clients; Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a classified error with a formatted message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ClassifyError wraps an error coming back from the transcript client with
// the Kind matching its failure mode. Already-classified errors pass through
// unchanged. Transport-level failures (the request to the video platform
// itself failed) become KindUpstreamFailure; unrecognized errors become
// KindUnknown.
func ClassifyError(err error) *Error {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr
	}

	var uerr *url.Error
	var nerr net.Error
	if errors.As(err, &uerr) || errors.As(err, &nerr) {
		return &Error{Kind: KindUpstreamFailure, Message: err.Error(), Err: err}
	}

	msg := strings.ToLower(err.Error())
	kind := KindUnknown
	switch {
	case containsAny(msg, "disabled"):
		kind = KindDisabled
	case containsAny(msg, "age restricted", "age-restricted"):
		kind = KindAgeRestricted
	case containsAny(msg, "unavailable", "unplayable", "no longer available"):
		kind = KindUnavailable
	case containsAny(msg, "block"):
		kind = KindBlocked
	case containsAny(msg, "invalid video"):
		kind = KindInvalidID
	case containsAny(msg, "token"):
		kind = KindTokenRequired
	case containsAny(msg, "no transcript", "not found"):
		kind = KindNotFound
	}
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
