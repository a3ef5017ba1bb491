package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"version": "1.0.0"}`)
	writeFile(t, filepath.Join(root, "frontend", "package.json"), `{"version": "2.0.0"}`)
	writeFile(t, filepath.Join(root, "frontend", "README.md"), "docs")
	writeFile(t, filepath.Join(root, "node_modules", "dep", "package.json"), `{"version": "9.9.9"}`)
	writeFile(t, filepath.Join(root, ".git", "package.json"), `{}`)

	candidates, err := Discover(root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "package.json"),
		filepath.Join(root, "frontend", "package.json"),
	}, candidates)
}

func TestDiscover_NothingFound(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.go"), "package main")

	candidates, err := Discover(root)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestReadVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	writeFile(t, path, `{"name": "demo", "version": "1.2.0"}`)

	version, err := ReadVersion(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", version)
}

func TestReadVersion_MissingField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	writeFile(t, path, `{"name": "demo"}`)

	_, err := ReadVersion(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestReadVersion_NonStringVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	writeFile(t, path, `{"version": 3}`)

	_, err := ReadVersion(path)
	require.Error(t, err)
}

func TestReadVersion_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	writeFile(t, path, `{"version": `)

	_, err := ReadVersion(path)
	require.Error(t, err)
}

func TestWriteVersion_PreservesOtherFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	writeFile(t, path, `{
  "name": "demo",
  "version": "1.2.0",
  "scripts": {"build": "tsc"},
  "dependencies": {"left-pad": "^1.3.0"}
}`)

	require.NoError(t, WriteVersion(path, "1.3.0"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Equal(t, "1.3.0", fields["version"])
	assert.Equal(t, "demo", fields["name"])
	assert.Equal(t, map[string]any{"build": "tsc"}, fields["scripts"])
	assert.Equal(t, map[string]any{"left-pad": "^1.3.0"}, fields["dependencies"])

	version, err := ReadVersion(path)
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", version)
}

func TestWriteVersion_TrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	writeFile(t, path, `{"version": "0.1.0"}`)

	require.NoError(t, WriteVersion(path, "0.2.0"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestPick_SingleCandidate(t *testing.T) {
	path, err := Pick([]string{"/project/package.json"})
	require.NoError(t, err)
	assert.Equal(t, "/project/package.json", path)
}

func TestPick_NoCandidates(t *testing.T) {
	_, err := Pick(nil)
	require.Error(t, err)
}
