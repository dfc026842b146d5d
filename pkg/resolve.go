package csproj

// Resolve returns the value of the first property named name, scanning the
// store in order. The match is exact and case-sensitive.
func Resolve(s Store, name string) (string, bool) {
	for _, p := range s.Properties() {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// List returns every property in the store with its 1-based index.
func List(s Store) []ListedProperty {
	props := s.Properties()
	listing := make([]ListedProperty, len(props))
	for i, p := range props {
		listing[i] = ListedProperty{Index: i + 1, Name: p.Name, Value: p.Value}
	}
	return listing
}

// SetProperty replaces the value of an existing property. A missing property
// is never created: the call returns a PropertyMissing *Rejection carrying
// the full listing of the store and leaves the store untouched.
func SetProperty(s Store, name, value string) (Change, error) {
	old, ok := Resolve(s, name)
	if !ok {
		return Change{}, &Rejection{Reason: PropertyMissing, Name: name, Listing: List(s)}
	}
	s.Upsert(name, value)
	return Change{Name: name, Old: old, New: value}, nil
}
