package csproj

import (
	"errors"
	"fmt"
	"io"
)

// WriteOutcome prints the human-readable report for one processed file.
func WriteOutcome(w io.Writer, o Outcome, dryRun bool) error {
	var rej *Rejection
	errors.As(o.Err, &rej)
	switch {
	case o.Err == nil:
		if dryRun {
			_, err := fmt.Fprintf(w, "%s\n%s would be updated (dry run).\n", o.Change, o.Path)
			return err
		}
		_, err := fmt.Fprintf(w, "%s\n%s updated and saved.\n", o.Change, o.Path)
		return err
	case rej != nil && rej.Reason == PropertyMissing && rej.Listing != nil:
		return writeListing(w, o.Path, rej)
	case rej != nil:
		_, err := fmt.Fprintf(w, "%s: %s\n", o.Path, rej)
		return err
	default:
		var ioErr *IOError
		if errors.As(o.Err, &ioErr) {
			_, err := fmt.Fprintln(w, ioErr)
			return err
		}
		_, err := fmt.Fprintf(w, "%s: %v\n", o.Path, o.Err)
		return err
	}
}

func writeListing(w io.Writer, path string, rej *Rejection) error {
	if _, err := fmt.Fprintf(w, "%s: Property %s not found.\n", path, rej.Name); err != nil {
		return err
	}
	for _, p := range rej.Listing {
		if _, err := fmt.Fprintf(w, "Property %d:\t\"%s\" = \"%s\"\n", p.Index, p.Name, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// Summary counts outcomes by status.
type Summary struct {
	Total    int
	Updated  int
	Rejected int
	Failed   int
}

// Summarize tallies outcomes.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch o.Status() {
		case Updated:
			s.Updated++
		case Rejected:
			s.Rejected++
		case Failed:
			s.Failed++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d %s processed: %d updated, %d rejected, %d failed",
		s.Total, plural(s.Total, "file", "files"), s.Updated, s.Rejected, s.Failed)
}

// WriteReport prints every outcome followed by a summary line.
func WriteReport(w io.Writer, outcomes []Outcome, dryRun bool) error {
	for _, o := range outcomes {
		if err := WriteOutcome(w, o, dryRun); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, Summarize(outcomes))
	return err
}
