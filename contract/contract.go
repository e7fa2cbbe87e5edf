// Package contract is the failure-reporting collaborator for precondition
// checks. A failed check is a programmer error, not a recoverable
// condition: it is logged with its source location and then halts
// forward progress by panicking with a *Violation. Callers are not
// expected to recover it.
package contract

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

var logger, _ = zap.NewProduction()

// SetLogger replaces the sink used when a check fails.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Violation carries the failed condition and where it was checked.
type Violation struct {
	File      string
	Line      int
	Condition string
	Message   string
}

func (v *Violation) Error() string {
	if v.Message == "" {
		return fmt.Sprintf("contract violation at %s:%d: %s", v.File, v.Line, v.Condition)
	}
	return fmt.Sprintf("contract violation at %s:%d: %s (%s)", v.File, v.Line, v.Condition, v.Message)
}

// Check halts if cond is false. condition is the human-readable text
// of the precondition that failed.
func Check(cond bool, condition string) {
	if cond {
		return
	}
	fail(condition, "")
}

// Checkf is Check with a formatted diagnostic message.
func Checkf(cond bool, condition, format string, args ...any) {
	if cond {
		return
	}
	fail(condition, fmt.Sprintf(format, args...))
}

func fail(condition, message string) {
	_, file, line, _ := runtime.Caller(2)
	v := &Violation{File: file, Line: line, Condition: condition, Message: message}
	logger.Error("contract violation",
		zap.String("condition", condition),
		zap.String("detail", message),
		zap.String("file", file),
		zap.Int("line", line),
	)
	panic(v)
}
