package csproj

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// VersionProperty is the property every bump reads and writes.
const VersionProperty = "Version"

// Component selects which part of a MAJOR.MINOR.PATCH version to bump.
type Component int

const (
	Major Component = iota
	Minor
	Patch
)

var componentNames = []string{"MAJOR", "MINOR", "PATCH"}

func (c Component) String() string {
	return componentName(int(c))
}

func componentName(i int) string {
	if i < 0 || i >= len(componentNames) {
		return fmt.Sprintf("component %d", i)
	}
	return componentNames[i]
}

// Bump increments one component of the Version property and writes the
// result back through the store. The pipeline stops at the first failing
// stage and returns a *Rejection; the store is only written on success.
//
// Components that are not bumped keep their original text, so "01.2.3"
// bumped at PATCH becomes "01.2.4". Lower components are not reset.
func Bump(s Store, c Component) (Change, error) {
	old, ok := Resolve(s, VersionProperty)
	if !ok {
		return Change{}, &Rejection{Reason: PropertyMissing, Name: VersionProperty}
	}

	idx := int(c)
	if idx < 0 || idx >= len(componentNames) {
		return Change{}, &Rejection{Reason: IndexOutOfRange, Name: VersionProperty, Value: old, Index: idx}
	}

	pieces := strings.Split(old, ".")
	if len(pieces) != len(componentNames) {
		return Change{}, &Rejection{Reason: MalformedFormat, Name: VersionProperty, Value: old, Pieces: pieces}
	}

	numbers := make([]uint64, len(pieces))
	for i, piece := range pieces {
		n, err := parseComponent(piece)
		if err != nil {
			return Change{}, &Rejection{
				Reason: NonNumericComponent,
				Name:   VersionProperty,
				Value:  old,
				Pieces: pieces,
				Index:  i,
				Text:   piece,
			}
		}
		numbers[i] = n
	}

	if numbers[idx] == math.MaxUint64 {
		return Change{}, &Rejection{
			Reason: ComponentOverflow,
			Name:   VersionProperty,
			Value:  old,
			Pieces: pieces,
			Index:  idx,
			Text:   pieces[idx],
		}
	}

	bumped := make([]string, len(pieces))
	copy(bumped, pieces)
	bumped[idx] = strconv.FormatUint(numbers[idx]+1, 10)
	updated := strings.Join(bumped, ".")

	s.Upsert(VersionProperty, updated)
	return Change{Name: VersionProperty, Old: old, New: updated}, nil
}

// parseComponent accepts plain decimal digits only: no sign, no spaces.
func parseComponent(piece string) (uint64, error) {
	if piece == "" {
		return 0, fmt.Errorf("empty version component")
	}
	for _, r := range piece {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid digit %q in %q", r, piece)
		}
	}
	return strconv.ParseUint(piece, 10, 64)
}

// IsCanonical reports whether version is a canonical semantic version, i.e.
// it has no leading zeros.
func IsCanonical(version string) bool {
	v := "v" + version
	return semver.IsValid(v) && semver.Canonical(v) == v
}
