package domain

import (
	"errors"
	"fmt"
)

// FetchErrorKind discriminates transport-level failures. The pipeline treats
// every kind the same way (skip the tab); the kind is preserved so callers
// can surface distinct messages.
type FetchErrorKind string

const (
	FetchNotFound         FetchErrorKind = "not_found"
	FetchPermissionDenied FetchErrorKind = "permission_denied"
	FetchNetworkError     FetchErrorKind = "network_error"
	FetchParseError       FetchErrorKind = "parse_error"
)

// FetchError is a per-tab transport failure. Non-fatal: it excludes the tab
// from the report and never aborts the remaining tabs.
type FetchError struct {
	Kind FetchErrorKind
	Tab  string
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %q: %s: %v", e.Tab, e.Kind, e.Err)
	}

	return fmt.Sprintf("fetch %q: %s", e.Tab, e.Kind)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Message returns a user-surfaceable description for the error kind.
func (e *FetchError) Message() string {
	switch e.Kind {
	case FetchNotFound:
		return "tab not found in source"
	case FetchPermissionDenied:
		return "access to source denied"
	case FetchNetworkError:
		return "source unreachable"
	case FetchParseError:
		return "source data is not tabular"
	default:
		return "fetch failed"
	}
}

// Configuration errors abort the whole aggregation before any fetch.
var (
	ErrNoTabs   = errors.New("no tabs configured")
	ErrNoSource = errors.New("no source configured")
)
