package csproj

import (
	"fmt"
	"strings"
)

// Action is an operation the runner applies to every discovered project.
type Action int

const (
	ModifyProperty Action = iota + 1
	BumpMajor
	BumpMinor
	BumpPatch
)

var actionNames = map[Action]string{
	ModifyProperty: "modify-property",
	BumpMajor:      "bump-version-major",
	BumpMinor:      "bump-version-minor",
	BumpPatch:      "bump-version-patch",
}

// Actions lists every supported action in display order.
var Actions = []Action{ModifyProperty, BumpMajor, BumpMinor, BumpPatch}

// ParseAction maps a selector such as "bump-version-minor" to its Action.
// Matching ignores case.
func ParseAction(s string) (Action, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Actions {
		if actionNames[a] == want {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Component returns the version component a bump action targets.
func (a Action) Component() (Component, bool) {
	switch a {
	case BumpMajor:
		return Major, true
	case BumpMinor:
		return Minor, true
	case BumpPatch:
		return Patch, true
	}
	return 0, false
}

// Valid reports whether a is one of the supported actions.
func (a Action) Valid() bool {
	_, ok := actionNames[a]
	return ok
}
