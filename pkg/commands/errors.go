package commands

import (
	"fmt"
	"strings"

	"github.com/go-errors/errors"
	"golang.org/x/xerrors"
)

// ErrorCode classifies the errors callers react to differently
type ErrorCode int

const (
	// SnapshotNotFound tells us snapper has no snapshot with the requested number
	SnapshotNotFound ErrorCode = iota + 1
	// SnapshotsDisabled tells us DISABLE_SNAPSHOTS forbids creating this kind of snapshot
	SnapshotsDisabled
	// InvalidArgument tells us the caller asked for something that cannot work,
	// like restoring from snapshot 0
	InvalidArgument
	// ConfigUnknown is snapper saying the -c config doesn't exist
	ConfigUnknown
	// ConfigMissing is snapper saying the config exists but isn't set up
	ConfigMissing
	// PermissionDenied means we need to run as root
	PermissionDenied
)

// snapper's messages, matched as substrings of its stderr
var snapperErrorMessages = []struct {
	substring string
	code      ErrorCode
}{
	{"Unknown config", ConfigUnknown},
	{"does not exist", ConfigMissing},
	{"No permissions", PermissionDenied},
	{"permission denied", PermissionDenied},
}

// ClassifyError finds the code of err. ComplexErrors carry their own, for
// anything else snapper's message decides. Zero means unknown.
func ClassifyError(err error) ErrorCode {
	if err == nil {
		return 0
	}

	var complexErr ComplexError
	if xerrors.As(err, &complexErr) {
		return complexErr.Code
	}

	message := err.Error()
	for _, known := range snapperErrorMessages {
		if strings.Contains(message, known.substring) {
			return known.code
		}
	}
	return 0
}

// ErrRestoreCancelled is returned by RestoreFiles when its context is
// cancelled between two batches.
var ErrRestoreCancelled = errors.New("restore cancelled")

// WrapError wraps an error for the sake of showing a stack trace at the top level
// the go-errors package, for some reason, does not return nil when you try to wrap
// a non-error, so we're just doing it here
func WrapError(err error) error {
	if err == nil {
		return err
	}

	return errors.Wrap(err, 0)
}

// ComplexError an error which carries a code so that calling code has an easier job to do
// adapted from https://medium.com/yakka/better-go-error-handling-with-xerrors-1987650e0c79
type ComplexError struct {
	Message string
	Code    ErrorCode
	frame   xerrors.Frame
}

// NewComplexError records the caller's frame alongside the code.
func NewComplexError(code ErrorCode, message string) ComplexError {
	return ComplexError{
		Message: message,
		Code:    code,
		frame:   xerrors.Caller(1),
	}
}

// FormatError prints the code and message, then the frame with %+v
func (ce ComplexError) FormatError(p xerrors.Printer) error {
	p.Printf("%d %s", ce.Code, ce.Message)
	ce.frame.Format(p)
	return nil
}

func (ce ComplexError) Format(f fmt.State, c rune) {
	xerrors.FormatError(ce, f, c)
}

func (ce ComplexError) Error() string {
	return ce.Message
}

// HasErrorCode tells whether err, or anything it wraps, is a ComplexError
// with the given code
func HasErrorCode(err error, code ErrorCode) bool {
	var complexErr ComplexError
	return xerrors.As(err, &complexErr) && complexErr.Code == code
}
