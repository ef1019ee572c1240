package protocol

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// BoundsError is returned by the byte cursor when a read would run past the
// end of the input window, or a write could not be grown to fit. It signals
// truncation or overflow, never a protocol-semantics problem.
type BoundsError struct {
	Op     string // e.g. "getString", "putVarInt"
	Want   int    // bytes required
	Have   int    // bytes remaining
	Offset int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("protocol: %s at offset %d: need %d bytes, have %d", e.Op, e.Offset, e.Want, e.Have)
}

func newBoundsError(op string, want, have, offset int) error {
	return &BoundsError{Op: op, Want: want, Have: have, Offset: offset}
}

// DecodeError is raised when bytes parse cleanly but violate a protocol
// rule: an unknown packet/action ID, an enum index out of range, a
// parameter type bitfield missing all of {ENUM, POSTFIX, VALID}, or an
// enum constraint referencing a value the enum doesn't have.
type DecodeError struct {
	Context string // e.g. "AvailableCommands", "ItemStackRequest"
	Reason  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("protocol decode error in %s: %s", e.Context, e.Reason)
}

// NewDecodeError builds a *DecodeError with the given context and reason.
func NewDecodeError(context, reason string) error {
	return &DecodeError{Context: context, Reason: reason}
}

// EncodeError is raised when the in-memory value handed to Encode is
// internally inconsistent — a programmer error in the caller rather than a
// data error. Encoders that discover more than one inconsistency while
// building intern tables collect them all via multierror instead of
// failing at the first.
type EncodeError struct {
	Context string
	Cause   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("protocol encode error in %s: %v", e.Context, e.Cause)
}

func (e *EncodeError) Unwrap() error { return e.Cause }

// NewEncodeError wraps a single cause (possibly a *multierror.Error
// accumulated across an intern-table build) as an *EncodeError.
func NewEncodeError(context string, cause error) error {
	return &EncodeError{Context: context, Cause: cause}
}

// EncodeErrors accumulates catalog-consistency violations found while
// building the command catalog's intern tables (see
// packet/available_commands.go), surfacing all of them in one EncodeError
// instead of bailing on the first.
type EncodeErrors struct {
	merr *multierror.Error
}

func (e *EncodeErrors) Add(format string, args ...interface{}) {
	e.merr = multierror.Append(e.merr, fmt.Errorf(format, args...))
}

func (e *EncodeErrors) ErrOrNil() error {
	return e.merr.ErrorOrNil()
}
