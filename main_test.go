package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain triggers the CLI as a subprocess when GO_HELPER_PROCESS is set.
func TestMain(m *testing.M) {
	if os.Getenv("GO_HELPER_PROCESS") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runCLI runs the CLI in helper process mode with optional extra environment vars.
func runCLI(args []string, extraEnv ...string) (string, error) {
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), "GO_HELPER_PROCESS=1")
	cmd.Env = append(cmd.Env, extraEnv...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runInProcess executes the root command against buffers.
func runInProcess(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func project(version string) string {
	return `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <Version>` + version + `</Version>
  </PropertyGroup>
</Project>
`
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCLIHelp(t *testing.T) {
	out, _ := runCLI([]string{"--help"})
	if !strings.Contains(out, "Usage:") || !strings.Contains(out, "bump-version-patch") {
		t.Errorf("expected help output, got:\n%s", out)
	}
}

func TestCLIVersionFlag(t *testing.T) {
	out, _ := runCLI([]string{"--version"})
	if !strings.Contains(out, Version) {
		t.Errorf("expected CLI version in output, got:\n%s", out)
	}
}

func TestCLIMissingArgs(t *testing.T) {
	out, err := runCLI([]string{})
	if err == nil {
		t.Fatalf("expected non-zero exit, got output:\n%s", out)
	}
	if !strings.Contains(out, "Error: <path> and <action> positional arguments are required") {
		t.Errorf("expected missing positional argument error, got:\n%s", out)
	}
}

func TestCLIUnknownActionExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.csproj")
	writeFile(t, path, project("1.2.3"))

	out, err := runCLI([]string{path, "bump-version-build"})
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, out, "unknown action")
	assert.Equal(t, project("1.2.3"), readFile(t, path))
}

func TestBumpPatchSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "App.csproj")
	writeFile(t, path, project("1.2.3"))

	stdout, stderr, code := runInProcess(t, path, "bump-version-patch")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Version: \"1.2.3\" -> \"1.2.4\"\n"+
		path+" updated and saved.\n"+
		"1 file processed: 1 updated, 0 rejected, 0 failed\n", stdout)
	assert.Equal(t, project("1.2.4"), readFile(t, path))
}

func TestBumpDirectoryIsolatesBadFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "A", "A.csproj")
	b := filepath.Join(dir, "B", "B.csproj")
	c := filepath.Join(dir, "C", "C.csproj")
	writeFile(t, a, project("1.2.3"))
	writeFile(t, b, project("1.2"))
	writeFile(t, c, project("4.5.6"))

	stdout, stderr, code := runInProcess(t, dir, "bump-version-major")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, a+" updated and saved.")
	assert.Contains(t, stdout, b+`: Version not formatted as MAJOR.MINOR.PATCH: "1.2" has 2 parts ("1", "2")`)
	assert.Contains(t, stdout, c+" updated and saved.")
	assert.Contains(t, stdout, "3 files processed: 2 updated, 1 rejected, 0 failed")

	assert.Equal(t, project("2.2.3"), readFile(t, a))
	assert.Equal(t, project("1.2"), readFile(t, b))
	assert.Equal(t, project("5.5.6"), readFile(t, c))
}

func TestModifyProperty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "App.csproj")
	writeFile(t, path, project("1.2.3"))

	stdout, stderr, code := runInProcess(t, path, "modify-property", "--name", "TargetFramework", "--value", "net9.0")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `TargetFramework: "net8.0" -> "net9.0"`)
	assert.Contains(t, readFile(t, path), "<TargetFramework>net9.0</TargetFramework>")
}

func TestModifyMissingPropertyListsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "App.csproj")
	writeFile(t, path, project("1.2.3"))

	stdout, stderr, code := runInProcess(t, path, "modify-property", "--name", "Nullable", "--value", "enable")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, path+": Property Nullable not found.\n"+
		"Property 1:\t\"TargetFramework\" = \"net8.0\"\n"+
		"Property 2:\t\"Version\" = \"1.2.3\"\n"+
		"1 file processed: 0 updated, 1 rejected, 0 failed\n", stdout)
	assert.Equal(t, project("1.2.3"), readFile(t, path))
}

func TestInvocationErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "App.csproj")
	writeFile(t, path, project("1.2.3"))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown action", []string{path, "explode"}, `unknown action: "explode"`},
		{"modify without name", []string{path, "modify-property", "--value", "x"}, "a property name is required"},
		{"bump with conflicting name", []string{path, "bump-version-minor", "--name", "FileVersion"}, "bump actions always edit the Version property"},
		{"too many args", []string{path, "bump-version-minor", "extra"}, "positional arguments are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runInProcess(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error: ")
			assert.Contains(t, stderr, tt.want)
			assert.Equal(t, project("1.2.3"), readFile(t, path))
		})
	}
}

func TestDryRunFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "App.csproj")
	writeFile(t, path, project("1.2.3"))

	stdout, _, code := runInProcess(t, "--dry", path, "bump-version-minor")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, `Version: "1.2.3" -> "1.3.3"`)
	assert.Contains(t, stdout, path+" would be updated (dry run).")
	assert.Equal(t, project("1.2.3"), readFile(t, path))
}

func TestIOErrorSetsExitCode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A.csproj"), "<Project")
	good := filepath.Join(dir, "B.csproj")
	writeFile(t, good, project("0.0.1"))

	stdout, stderr, code := runInProcess(t, dir, "bump-version-patch")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "open failed")
	assert.Contains(t, stdout, "2 files processed: 1 updated, 0 rejected, 1 failed")
	assert.Contains(t, stderr, "Error: some project files could not be processed: 1 of 2 failed")
	assert.Equal(t, project("0.0.2"), readFile(t, good))
}

func TestNoProjectsFound(t *testing.T) {
	dir := t.TempDir()
	stdout, _, code := runInProcess(t, dir, "bump-version-patch")
	assert.Equal(t, 0, code)
	assert.Equal(t, "No .csproj files found at "+dir+".\n", stdout)
}

func TestExtensionFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	fs := filepath.Join(dir, "Lib.fsproj")
	cs := filepath.Join(dir, "App.csproj")
	writeFile(t, fs, project("1.0.0"))
	writeFile(t, cs, project("1.0.0"))
	t.Setenv("CSPROJ_EXT", ".fsproj")

	_, stderr, code := runInProcess(t, dir, "bump-version-minor")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, project("1.1.0"), readFile(t, fs))
	assert.Equal(t, project("1.0.0"), readFile(t, cs))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.csproj")
	writeFile(t, path, project("1.2.3"))
	cfg := filepath.Join(dir, "csproj.yaml")
	writeFile(t, cfg, "name: TargetFramework\nvalue: net10.0\n")

	stdout, stderr, code := runInProcess(t, "--config", cfg, path, "modify-property")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `TargetFramework: "net8.0" -> "net10.0"`)

	// Flags win over the config file.
	stdout, stderr, code = runInProcess(t, "--config", cfg, "--value", "net11.0", path, "modify-property")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `TargetFramework: "net10.0" -> "net11.0"`)

	_, stderr, code = runInProcess(t, "--config", filepath.Join(dir, "missing.yaml"), path, "modify-property")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "reading config file")
}

func TestConfigFileFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.csproj")
	writeFile(t, path, project("1.2.3"))
	cfg := filepath.Join(dir, "csproj.yaml")
	writeFile(t, cfg, "name: TargetFramework\nvalue: net10.0\n")
	t.Setenv("CSPROJ_CONFIG", cfg)

	stdout, stderr, code := runInProcess(t, path, "modify-property")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `TargetFramework: "net8.0" -> "net10.0"`)
}
