package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirPreview holds a listing of a PATH directory's contents for the
// detail views (TUI right panel, web API).
type DirPreview struct {
	Names     []string // Entry names; subdirectories carry a trailing "/"
	Total     int      // Total number of entries in the directory
	Truncated bool     // Whether Names was cut off at the limit
	ErrorMsg  string   // Error message if the directory couldn't be read
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}

// GetDirPreview reads a directory and returns up to limit entry names.
// Read failures are reported through ErrorMsg rather than an error
// return so callers can render them inline.
func GetDirPreview(dirPath string, limit int) DirPreview {
	result := DirPreview{}

	entries, err := os.ReadDir(ExpandTilde(dirPath))
	if err != nil {
		result.ErrorMsg = fmt.Sprintf("Could not read directory: %v", err)
		return result
	}

	result.Total = len(entries)
	for _, e := range entries {
		if limit > 0 && len(result.Names) >= limit {
			result.Truncated = true
			break
		}
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		result.Names = append(result.Names, name)
	}

	return result
}
