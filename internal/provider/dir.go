package provider

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/domainhunter/internal/content"
)

// DirContent reads archived page text from a directory laid out as
//
//	<root>/<domain>/historical.txt  (or historical.html)
//	<root>/<domain>/current.txt     (or current.html)
//
// HTML files are reduced to their visible text. Missing files mean no text.
type DirContent struct {
	root string
}

// NewDirContent creates a directory-backed content provider.
func NewDirContent(root string) *DirContent {
	return &DirContent{root: root}
}

// Content returns the archived texts for domain.
func (d *DirContent) Content(ctx context.Context, domain string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	if domain == "" || strings.HasPrefix(domain, ".") || strings.ContainsAny(domain, `/\`) {
		return "", "", fmt.Errorf("invalid domain for content lookup: %q", domain)
	}

	historical, err := d.read(domain, "historical")
	if err != nil {
		return "", "", err
	}
	current, err := d.read(domain, "current")
	if err != nil {
		return "", "", err
	}
	return historical, current, nil
}

func (d *DirContent) read(domain, name string) (string, error) {
	dir := filepath.Join(d.root, domain)

	data, err := os.ReadFile(filepath.Join(dir, name+".txt"))
	if err == nil {
		return string(data), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read %s text: %w", name, err)
	}

	data, err = os.ReadFile(filepath.Join(dir, name+".html"))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s html: %w", name, err)
	}

	text, err := content.ExtractText(string(data))
	if err != nil {
		return "", fmt.Errorf("extract %s html: %w", name, err)
	}
	return text, nil
}
