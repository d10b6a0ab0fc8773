package handler

import (
	"fmt"

	"github.com/lineclip/lineclip/internal/engine"
)

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the action had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
	// StatusCancelled indicates the action was cancelled.
	StatusCancelled
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Edit records a text edit for result reporting.
type Edit struct {
	// Range is the range that was modified.
	Range engine.Range
	// NewText is the text that was inserted.
	NewText string
	// OldText is the text that was replaced.
	OldText string
}

// ViewUpdate describes required view updates.
type ViewUpdate struct {
	// Redraw indicates whether the entire view needs redrawing.
	Redraw bool
	// RedrawLines specifies specific lines that need redrawing.
	RedrawLines []uint32
}

// Result represents the outcome of handling an action.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Error contains any error that occurred.
	Error error

	// Message is an optional status message for display.
	Message string

	// Edits contains text edits that were applied.
	Edits []Edit

	// ViewUpdate indicates required view updates.
	ViewUpdate ViewUpdate

	// Data holds handler-specific return data.
	Data map[string]interface{}
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsNoOp returns true if the action had no effect.
func (r Result) IsNoOp() bool {
	return r.Status == StatusNoOp
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// SuccessWithMessage creates a successful result with a message.
func SuccessWithMessage(msg string) Result {
	return Result{Status: StatusOK, Message: msg}
}

// SuccessWithData creates a successful result with data.
func SuccessWithData(key string, value interface{}) Result {
	return Result{
		Status: StatusOK,
		Data:   map[string]interface{}{key: value},
	}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// NoOpWithMessage creates a no-operation result with a message.
func NoOpWithMessage(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...interface{}) Result {
	return Result{
		Status: StatusError,
		Error:  fmt.Errorf(format, args...),
	}
}

// Cancelled creates a cancelled result.
func Cancelled() Result {
	return Result{Status: StatusCancelled}
}

// CancelledWithMessage creates a cancelled result with a message.
func CancelledWithMessage(msg string) Result {
	return Result{Status: StatusCancelled, Message: msg}
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithRedraw returns a copy of the result requesting a full redraw.
func (r Result) WithRedraw() Result {
	r.ViewUpdate.Redraw = true
	return r
}

// WithRedrawLines returns a copy of the result with specific lines to redraw.
func (r Result) WithRedrawLines(lines ...uint32) Result {
	r.ViewUpdate.RedrawLines = append(r.ViewUpdate.RedrawLines, lines...)
	return r
}

// WithEdit returns a copy of the result with an edit added.
func (r Result) WithEdit(edit Edit) Result {
	r.Edits = append(r.Edits, edit)
	return r
}

// WithEdits returns a copy of the result with edits added.
func (r Result) WithEdits(edits []Edit) Result {
	r.Edits = append(r.Edits, edits...)
	return r
}

// WithData returns a copy of the result with data added.
func (r Result) WithData(key string, value interface{}) Result {
	if r.Data == nil {
		r.Data = make(map[string]interface{})
	}
	r.Data[key] = value
	return r
}

// GetData retrieves a value from the result data.
func (r Result) GetData(key string) (interface{}, bool) {
	if r.Data == nil {
		return nil, false
	}
	v, ok := r.Data[key]
	return v, ok
}

// GetDataString retrieves a string value from the result data.
func (r Result) GetDataString(key string) string {
	if v, ok := r.GetData(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetDataInt retrieves an int value from the result data.
func (r Result) GetDataInt(key string) int {
	if v, ok := r.GetData(key); ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}
