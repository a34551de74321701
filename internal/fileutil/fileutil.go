package fileutil

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var filenameReplacer = strings.NewReplacer(
	":", " -",
	"/", "-",
	"\\", "-",
	"?", "",
	"*", "",
	"\"", "'",
	"<", "",
	">", "",
	"|", "-",
)

// NotePath returns the markdown file path for a note named name in directory.
func NotePath(directory, name string) string {
	return filepath.Join(directory, SanitizeFilename(name)+".md")
}

// SanitizeFilename replaces characters that are invalid in file names on
// common filesystems. "Alien: Covenant" becomes "Alien - Covenant".
func SanitizeFilename(name string) string {
	return strings.TrimSpace(filenameReplacer.Replace(name))
}

// FileExists reports whether a regular file (not a directory) exists at filePath.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteFileWithOverwrite writes data to filePath unless it exists and
// overwrite is false. It reports whether the file was written.
func WriteFileWithOverwrite(filePath string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		slog.Info("File already exists, skipping", "filename", filePath)
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	return true, nil
}

// WriteJSONFile writes data as indented JSON, respecting overwrite.
func WriteJSONFile(data any, filePath string, overwrite bool) (bool, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	written, err := WriteFileWithOverwrite(filePath, append(jsonData, '\n'), 0o644, overwrite)
	if written {
		slog.Info("Wrote JSON file", "filename", filePath, "overwrite", overwrite)
	}
	return written, err
}
