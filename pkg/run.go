package csproj

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Options configures a Run.
type Options struct {
	// Path is a project file or a directory searched recursively.
	Path string

	Action Action

	// Name and Value are the property to edit for ModifyProperty. Bump
	// actions always edit Version; Name may be empty or "Version".
	Name  string
	Value string

	// Extension selects project files when Path is a directory.
	// Defaults to DefaultExtension.
	Extension string

	// DryRun computes every change without saving any file.
	DryRun bool

	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger
}

// Status classifies the Outcome of processing one file.
type Status int

const (
	Updated Status = iota + 1
	Rejected
	Failed
)

func (s Status) String() string {
	switch s {
	case Updated:
		return "updated"
	case Rejected:
		return "rejected"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome is the result of applying the action to one project file.
type Outcome struct {
	Path   string
	Change Change
	Err    error
}

// Status derives the outcome class from Err.
func (o Outcome) Status() Status {
	if o.Err == nil {
		return Updated
	}
	var rej *Rejection
	if errors.As(o.Err, &rej) {
		return Rejected
	}
	return Failed
}

// Validate checks the options that make a run impossible. It never touches
// the filesystem.
func (o Options) Validate() error {
	if !o.Action.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownAction, o.Action)
	}
	if o.Action == ModifyProperty {
		if o.Name == "" {
			return fmt.Errorf("%s: %w", o.Action, ErrNameRequired)
		}
		return nil
	}
	if o.Name != "" && o.Name != VersionProperty {
		return fmt.Errorf("%s with --name %q: %w", o.Action, o.Name, ErrConflictingName)
	}
	return nil
}

// Run applies the configured action to every project file found under
// opts.Path, one file at a time. Validation and I/O failures are recorded
// in the returned outcomes and never stop the loop; only an invalid
// invocation or a failed discovery returns an error.
func Run(opts Options) ([]Outcome, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	paths, err := DiscoverPaths(opts.Path, opts.Extension)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		logger.Warn("no project files found", "path", opts.Path)
		return nil, nil
	}
	logger.Debug("discovered project files", "path", opts.Path, "count", len(paths))

	outcomes := make([]Outcome, 0, len(paths))
	for _, path := range paths {
		outcome := processFile(path, opts, logger)
		logger.Debug("processed", "path", path, "status", outcome.Status())
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func processFile(path string, opts Options, logger *log.Logger) Outcome {
	project, err := OpenProject(path)
	if err != nil {
		return Outcome{Path: path, Err: err}
	}

	change, err := apply(project, opts)
	if err != nil {
		return Outcome{Path: path, Err: err}
	}
	if change.Name == VersionProperty && opts.Action != ModifyProperty && !IsCanonical(change.New) {
		logger.Warn("version is not canonical semver", "path", path, "version", change.New)
	}

	if opts.DryRun {
		logger.Debug("dry run, not saving", "path", path)
		return Outcome{Path: path, Change: change}
	}
	if err := project.Save(); err != nil {
		return Outcome{Path: path, Change: change, Err: err}
	}
	return Outcome{Path: path, Change: change}
}

func apply(s Store, opts Options) (Change, error) {
	switch opts.Action {
	case ModifyProperty:
		return SetProperty(s, opts.Name, opts.Value)
	case BumpMajor, BumpMinor, BumpPatch:
		c, _ := opts.Action.Component()
		return Bump(s, c)
	}
	return Change{}, fmt.Errorf("%w: %s", ErrUnknownAction, opts.Action)
}
