// Package main implements the csproj CLI tool.
//
// The csproj tool edits MSBuild project files in place. It either replaces the
// value of an existing property or increments one component of the Version
// property (MAJOR.MINOR.PATCH). The target path may be a single project file or
// a directory, in which case every project file below it is processed in turn.
// A file with a missing property or a malformed version is reported and
// skipped; the remaining files are still processed.
//
// Command Usage:
//
//	csproj [flags] <path> <action>
//
// Actions:
//
//	modify-property:     Replaces the value of the property named by --name with --value.
//	                     A property that does not exist is not created; instead every
//	                     existing property of the file is listed.
//	bump-version-major:  Increments MAJOR of the Version property (1.2.3 → 2.2.3).
//	bump-version-minor:  Increments MINOR of the Version property (1.2.3 → 1.3.3).
//	bump-version-patch:  Increments PATCH of the Version property (1.2.3 → 1.2.4).
//
// Flags:
//
//	-name:    Property to modify. Bump actions always edit Version and reject any other name.
//	-value:   New value for modify-property.
//	-ext:     Extension of the project files searched for in directories (default ".csproj").
//	-dry:     Report the changes without saving any file.
//	-config:  Config file (YAML, TOML or JSON) providing defaults for name, value, ext, dry and verbose.
//	-verbose: Enables debug logging on stderr.
//	-version: Displays the version of the csproj CLI tool and exits.
//
// Every flag can also be set through the environment with a CSPROJ_ prefix,
// e.g. CSPROJ_EXT=.fsproj or CSPROJ_CONFIG=./csproj.yaml.
//
// Examples:
//
//	# Bump the patch version of one project
//	csproj ./App/App.csproj bump-version-patch
//
//	# Bump the minor version of every project below ./src
//	csproj ./src bump-version-minor
//
//	# Retarget every project
//	csproj ./src modify-property --name TargetFramework --value net8.0
//
// For the library API, see the documentation of the "pkg" package.
package main
