package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestReadSnippetFromStdin(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("selected text\n"))

	got, err := readSnippet(cmd, []string{"@Alice"})
	require.NoError(t, err)
	require.Equal(t, "selected text\n", got)
}

func TestReadSnippetDashMeansStdin(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("piped"))

	got, err := readSnippet(cmd, []string{"C123", "-"})
	require.NoError(t, err)
	require.Equal(t, "piped", got)
}

func TestReadSnippetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippet.txt")
	require.NoError(t, os.WriteFile(path, []byte("func main() {}\n"), 0644))

	got, err := readSnippet(&cobra.Command{}, []string{"C123", path})
	require.NoError(t, err)
	require.Equal(t, "func main() {}\n", got)
}

func TestReadSnippetMissingFile(t *testing.T) {
	_, err := readSnippet(&cobra.Command{}, []string{"C123", filepath.Join(t.TempDir(), "absent.txt")})
	require.Error(t, err)
}
