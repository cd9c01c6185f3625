package harness

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching.
var (
	// ErrDuplicateName matches any *DuplicateNameError.
	ErrDuplicateName = errors.New("duplicate lesson name")

	// ErrNotFound matches any *NotFoundError.
	ErrNotFound = errors.New("lesson not found")

	// ErrInvalidLesson is returned when a lesson has an empty name or a nil body.
	ErrInvalidLesson = errors.New("invalid lesson")
)

// DuplicateNameError is returned by Registry.Register when the name is taken.
//
// This is a configuration error: the registry is built once at startup and a
// duplicate means the compiled-in lesson set is broken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate lesson name %q", e.Name)
}

// Is reports whether target is ErrDuplicateName.
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// NotFoundError is returned when a lesson name is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lesson %q is not registered", e.Name)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Failure is returned by a lesson body to signal that the lesson could not
// complete. The runner records it as a failed outcome and moves on.
type Failure struct {
	Reason string
}

func (e *Failure) Error() string {
	return e.Reason
}

// Fail builds a *Failure with a formatted reason.
func Fail(format string, args ...any) error {
	return &Failure{Reason: fmt.Sprintf(format, args...)}
}

// IsNotFound returns true if err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDuplicateName returns true if err is or wraps a *DuplicateNameError.
func IsDuplicateName(err error) bool {
	var de *DuplicateNameError
	return errors.As(err, &de)
}

// failureReason extracts the reason recorded for a failed lesson.
// A *Failure anywhere in the chain contributes its bare reason; anything else
// is reported with its full message.
func failureReason(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}
	return err.Error()
}
