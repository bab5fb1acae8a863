// Package errors provides structured error handling for domhost.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUnsupportedType indicates a component type with no registered constructor.
	KindUnsupportedType
	// KindPlatform indicates a failure reported by the DOM or media platform.
	KindPlatform
	// KindPlayback indicates a media playback failure.
	KindPlayback
	// KindLayout indicates a layout finalization failure.
	KindLayout
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupportedType:
		return "unsupported_type"
	case KindPlatform:
		return "platform"
	case KindPlayback:
		return "playback"
	case KindLayout:
		return "layout"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// HostError represents a structured error raised while reconciling views or
// driving media playback.
type HostError struct {
	// Op is the operation that failed (e.g., "view.Resolve").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Component is the unique id of the component involved, if any.
	Component string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *HostError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError is returned when a component type tag has no entry in
// the constructor table.
type UnsupportedTypeError struct {
	// Type is the offending type tag as reported by the component.
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported component type %q", e.Type)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "media.Player.onTimeUpdate").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by domhost.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *HostError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
