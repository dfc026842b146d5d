package csproj

import (
	"errors"
	"fmt"
	"strings"
)

// Invocation errors. These stop a run before any file is opened.
var (
	// ErrUnknownAction is returned for an action selector that is not one of
	// modify-property, bump-version-major, bump-version-minor or bump-version-patch.
	ErrUnknownAction = errors.New("unknown action")

	// ErrNameRequired is returned when modify-property is run without a property name.
	ErrNameRequired = errors.New("a property name is required")

	// ErrConflictingName is returned when a bump action is given a property
	// name other than Version.
	ErrConflictingName = errors.New("bump actions always edit the Version property")
)

// Per-file rejection sentinels. A *Rejection matches exactly one of these
// through errors.Is.
var (
	ErrPropertyMissing     = errors.New("property missing")
	ErrMalformedFormat     = errors.New("version is not MAJOR.MINOR.PATCH")
	ErrNonNumericComponent = errors.New("version component is not a number")
	ErrIndexOutOfRange     = errors.New("component index out of range")
	ErrComponentOverflow   = errors.New("version component overflow")
)

// Reason identifies the validation stage that rejected an operation.
type Reason int

const (
	PropertyMissing Reason = iota + 1
	MalformedFormat
	NonNumericComponent
	IndexOutOfRange
	ComponentOverflow
)

func (r Reason) sentinel() error {
	switch r {
	case PropertyMissing:
		return ErrPropertyMissing
	case MalformedFormat:
		return ErrMalformedFormat
	case NonNumericComponent:
		return ErrNonNumericComponent
	case IndexOutOfRange:
		return ErrIndexOutOfRange
	case ComponentOverflow:
		return ErrComponentOverflow
	}
	return nil
}

func (r Reason) String() string {
	if err := r.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Rejection reports an operation that was refused without touching the store.
// Only the fields relevant to Reason are set.
type Rejection struct {
	Reason Reason

	// Name is the property the operation targeted.
	Name string

	// Value is the full property value that failed validation.
	Value string

	// Pieces holds the result of splitting Value on ".".
	Pieces []string

	// Index is the offending component position (NonNumericComponent,
	// ComponentOverflow) or the requested one (IndexOutOfRange).
	Index int

	// Text is the offending component text.
	Text string

	// Listing is every property in the store, filled in when SetProperty
	// cannot find its target.
	Listing []ListedProperty
}

func (r *Rejection) Error() string {
	switch r.Reason {
	case PropertyMissing:
		return fmt.Sprintf("Did not find property %q.", r.Name)
	case MalformedFormat:
		return fmt.Sprintf("%s not formatted as MAJOR.MINOR.PATCH: %q has %d %s (%s)",
			r.Name, r.Value, len(r.Pieces), plural(len(r.Pieces), "part", "parts"), quoteAll(r.Pieces))
	case NonNumericComponent:
		return fmt.Sprintf("%s %s is not a number: %q", r.Name, componentName(r.Index), r.Text)
	case IndexOutOfRange:
		return fmt.Sprintf("Component index %d is out of range, max is %d", r.Index, len(componentNames)-1)
	case ComponentOverflow:
		return fmt.Sprintf("%s %s cannot be incremented past %s", r.Name, componentName(r.Index), r.Text)
	}
	return r.Reason.String()
}

// Is lets errors.Is match a Rejection against its reason sentinel.
func (r *Rejection) Is(target error) bool {
	return target != nil && target == r.Reason.sentinel()
}

// IOError wraps a failure to read, parse or write a project file.
type IOError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Path, e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func quoteAll(pieces []string) string {
	quoted := make([]string, len(pieces))
	for i, p := range pieces {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return strings.Join(quoted, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
