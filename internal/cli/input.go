package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/domainhunter/internal/content"
)

// readText loads page text from path. HTML files are reduced to visible
// text. An empty path yields empty text.
func readText(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := content.ExtractText(string(data))
		if err != nil {
			return "", fmt.Errorf("extract text from %s: %w", path, err)
		}
		return text, nil
	default:
		return string(data), nil
	}
}
