// Package cmdutil holds helpers shared by the CLI commands.
package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Outputs describes where a command writes its optional artifacts. Empty
// paths disable the corresponding output.
type Outputs struct {
	// MarkdownDir is the note directory
	MarkdownDir string
	// JSONPath is the decoded movie JSON file
	JSONPath string
	// Poster downloads the poster into MarkdownDir/attachments
	Poster bool
}

// SetupOutputs creates the directories outputs will be written to. A poster
// without a note directory falls back to markdown.output_dir, since posters
// live next to the notes embedding them.
func SetupOutputs(out *Outputs) error {
	if out.Poster && out.MarkdownDir == "" {
		out.MarkdownDir = viper.GetString("markdown.output_dir")
		if out.MarkdownDir == "" {
			out.MarkdownDir = "markdown"
		}
	}

	if out.MarkdownDir != "" {
		out.MarkdownDir = filepath.Clean(out.MarkdownDir)
		if err := os.MkdirAll(out.MarkdownDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if out.JSONPath != "" {
		out.JSONPath = filepath.Clean(out.JSONPath)
		if err := os.MkdirAll(filepath.Dir(out.JSONPath), 0755); err != nil {
			return fmt.Errorf("failed to create JSON output directory: %w", err)
		}
	}

	return nil
}

// Enabled reports whether any file output was requested.
func (o Outputs) Enabled() bool {
	return o.MarkdownDir != "" || o.JSONPath != "" || o.Poster
}
