// Package pathutil provides utilities for safe path handling.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Stdin is the conventional path meaning standard input.
const Stdin = "-"

// IsStdin returns true if path selects standard input.
func IsStdin(path string) bool {
	return path == Stdin
}

// ValidatePath cleans path and rejects empty paths and paths with null bytes.
// Symlinks are resolved when the path exists.
func ValidatePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	if strings.Contains(path, "\x00") {
		return "", ErrNullBytes
	}

	cleaned := filepath.Clean(path)

	realPath, err := filepath.EvalSymlinks(cleaned)
	if err != nil {
		// not existing yet; callers that write files accept this
		return cleaned, nil
	}
	return realPath, nil
}

// ValidateFile validates path and checks that it names an existing regular file.
func ValidateFile(path string) (string, error) {
	cleaned, err := ValidatePath(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(cleaned)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return cleaned, nil
}

// ValidatePathInDir resolves path against baseDir and rejects it unless the
// result, after following symlinks, lies inside baseDir. Relative paths are
// taken relative to the process working directory, like os.Open does.
func ValidatePathInDir(path, baseDir string) (string, error) {
	cleaned, err := ValidatePath(path)
	if err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve base directory: %w", err)
	}
	realBase, err := filepath.EvalSymlinks(absBase)
	if err != nil {
		return "", fmt.Errorf("resolve base directory: %w", err)
	}

	realPath := resolveExisting(absPath)
	if realPath != realBase && !strings.HasPrefix(realPath, realBase+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesBase, path)
	}
	return realPath, nil
}

// resolveExisting follows symlinks in the longest existing prefix of an
// absolute path and re-appends the missing tail.
func resolveExisting(absPath string) string {
	var tail []string
	dir := absPath
	for {
		if real, err := filepath.EvalSymlinks(dir); err == nil {
			for i := len(tail) - 1; i >= 0; i-- {
				real = filepath.Join(real, tail[i])
			}
			return real
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return absPath
		}
		tail = append(tail, filepath.Base(dir))
		dir = parent
	}
}
