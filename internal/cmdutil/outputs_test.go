package cmdutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestSetupOutputsCreatesMarkdownAndJSONDirs(t *testing.T) {
	t.Cleanup(viper.Reset)

	tempDir := t.TempDir()
	out := &Outputs{
		MarkdownDir: filepath.Join(tempDir, "notes") + "/",
		JSONPath:    filepath.Join(tempDir, "json", "shooter.json"),
	}

	require.NoError(t, SetupOutputs(out))

	require.Equal(t, filepath.Join(tempDir, "notes"), out.MarkdownDir)
	require.DirExists(t, out.MarkdownDir)
	require.DirExists(t, filepath.Join(tempDir, "json"))
	require.True(t, out.Enabled())
}

func TestSetupOutputsPosterFallsBackToConfiguredDir(t *testing.T) {
	t.Cleanup(viper.Reset)

	tempDir := t.TempDir()
	viper.Set("markdown.output_dir", filepath.Join(tempDir, "markdown"))

	out := &Outputs{Poster: true}
	require.NoError(t, SetupOutputs(out))

	require.Equal(t, filepath.Join(tempDir, "markdown"), out.MarkdownDir)
	require.DirExists(t, out.MarkdownDir)
}

func TestSetupOutputsNothingRequested(t *testing.T) {
	t.Cleanup(viper.Reset)

	out := &Outputs{}
	require.NoError(t, SetupOutputs(out))
	require.Empty(t, out.MarkdownDir)
	require.False(t, out.Enabled())
}
