package csproj

import "fmt"

// Property is one name/value entry in a project's property section.
type Property struct {
	Name  string
	Value string
}

// ListedProperty is a Property with its 1-based position in the store,
// as shown in diagnostic listings.
type ListedProperty struct {
	Index int
	Name  string
	Value string
}

// Store is an ordered collection of properties backed by a project document.
// Names are not guaranteed to be unique.
type Store interface {
	// Properties returns every entry in document order.
	Properties() []Property

	// Upsert creates the named property or overwrites an existing one.
	// Which entry is overwritten when names repeat is up to the implementation.
	Upsert(name, value string)
}

// Change describes a property value replacement.
type Change struct {
	Name string
	Old  string
	New  string
}

func (c Change) String() string {
	return fmt.Sprintf("%s: \"%s\" -> \"%s\"", c.Name, c.Old, c.New)
}
