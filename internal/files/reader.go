package files

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ReadTextFile reads a file as UTF-8 text. It rejects directories and files
// that do not decode as text, so binary blobs never end up in a prompt.
func ReadTextFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("file not found or stat error: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("path '%s' is a directory, not a file", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}

	sniff := content
	if len(sniff) > 1024 {
		sniff = sniff[:1024]
	}
	for _, b := range sniff {
		if b == 0 {
			return "", fmt.Errorf("file '%s' appears to be binary", filepath.Base(path))
		}
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("file '%s' is not valid UTF-8 text", filepath.Base(path))
	}

	return string(content), nil
}
