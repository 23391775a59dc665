package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codedigest/pkg/digest"
	"codedigest/pkg/version"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_DigestsWorkingDirectory(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/app.ts":        "export const app = 1;\n",
		"node_modules/x.ts": "export {};\n",
		"package-lock.json": "{}\n",
		"notes.txt":         "todo\n",
	})
	chdir(t, root)

	out, err := execute(t)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, digest.OutputFile))
	require.NoError(t, err)
	appPath := filepath.Join("src", "app.ts")
	assert.Equal(t, digest.Header+
		"--- START FILE: "+appPath+" ---\nexport const app = 1;\n\n--- END FILE: "+appPath+" ---\n\n",
		string(content))

	assert.Contains(t, out, "Processed: "+appPath)
	assert.Contains(t, out, "Scanned 1 files.")
	assert.NotContains(t, out, "└──")
}

func TestRootCmd_Tree(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/app.ts": "1",
		"index.js":   "2",
	})
	chdir(t, root)

	out, err := execute(t, "--tree")
	require.NoError(t, err)

	summary := strings.Index(out, "Ready to load")
	tree := strings.Index(out, "└── src/")
	require.NotEqual(t, -1, tree, out)
	assert.Greater(t, tree, summary)
	assert.Contains(t, out, "app.ts")
}

func TestRootCmd_UnwritableOutputFails(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.ts": "a"})
	require.NoError(t, os.Mkdir(filepath.Join(root, digest.OutputFile), 0o755))
	chdir(t, root)

	out, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
	assert.NotContains(t, out, "Digest Complete")
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "somewhere")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", out)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Get().String()+"\n", out)
}
