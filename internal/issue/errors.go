// Package issue implements the issue lifecycle and its delegated
// authorization rules: who may create, edit, view, comment on and react to
// maintenance issues, and which status transitions are legal.
package issue

import "errors"

// Kind is the machine-readable outcome category of a rejected operation.
type Kind string

const (
	// KindAuth: the actor's role or delegation denied access to an
	// otherwise valid target.
	KindAuth Kind = "AUTH"
	// KindNotFound: the referenced issue, comment or announcement does not
	// exist.
	KindNotFound Kind = "NOT_FOUND"
	// KindImpossibleTask: a structural precondition cannot be met, e.g. the
	// raiser has no seat or the requested status is unreachable for any
	// actor.
	KindImpossibleTask Kind = "IMPOSSIBLE_TASK"
	// KindInvalidInput: malformed target type, status or filter value.
	KindInvalidInput Kind = "INVALID_INPUT"
	// KindConflict: a concurrent edit moved the issue between the
	// permission check and the write; nothing was persisted.
	KindConflict Kind = "CONFLICT"
)

// Error is the typed outcome surfaced for every rejected operation.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func authError(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func notFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func impossibleTaskError(msg string) *Error {
	return &Error{Kind: KindImpossibleTask, Message: msg}
}

func invalidInputError(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func conflictError(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// KindOf extracts the outcome category from err, or "" for unexpected
// internal failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
