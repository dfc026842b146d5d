// Package csproj edits properties of MSBuild project files (.csproj) in place.
//
// It provides functionalities for:
//   - Opening a project file as an ordered Store of name/value properties.
//   - Resolving a property by exact name, first match wins when names repeat.
//   - Replacing the value of an existing property with before/after reporting.
//     A missing property is reported together with a listing of every
//     existing property and is never created.
//   - Bumping the MAJOR, MINOR or PATCH component of the Version property,
//     rejecting values that are not three dot-separated non-negative integers.
//   - Running one action over a single file or a directory tree, one file at
//     a time, so that a bad file never stops the rest of the run.
//
// Usage Example:
//
//	import (
//	    "log"
//	    "os"
//
//	    csproj "github.com/bcomnes/csproj/pkg"
//	)
//
//	func main() {
//	    outcomes, err := csproj.Run(csproj.Options{
//	        Path:   "./src",
//	        Action: csproj.BumpPatch,
//	    })
//	    if err != nil {
//	        log.Fatalf("bump failed: %v", err)
//	    }
//	    csproj.WriteReport(os.Stdout, outcomes, false)
//	}
package csproj
