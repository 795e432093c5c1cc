// Package promptio reads prompt text from files and streams for the CLI.
package promptio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxPromptBytes caps how much text is read from a stream or text file.
const MaxPromptBytes = 1 << 20

// ErrNoInput is returned when no prompt source yields any text.
var ErrNoInput = errors.New("no prompt given")

// ReadFile returns the prompt stored at path. Text and markdown files are read as is,
// PDFs have their plain text extracted page by page.
func ReadFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return readPDF(path)
	case "", ".txt", ".md", ".markdown", ".prompt":
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		defer f.Close()
		return ReadAll(f)
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}

// ReadAll reads up to MaxPromptBytes from r and trims surrounding whitespace.
func ReadAll(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxPromptBytes+1))
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	if len(raw) > MaxPromptBytes {
		return "", fmt.Errorf("prompt exceeds %d bytes", MaxPromptBytes)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Resolve picks the prompt from, in order: the inline text, the file, then stdin (when non-nil).
func Resolve(inline, file string, stdin io.Reader) (string, error) {
	if strings.TrimSpace(inline) != "" {
		return inline, nil
	}
	if file != "" {
		text, err := ReadFile(file)
		if err != nil {
			return "", err
		}
		if text == "" {
			return "", fmt.Errorf("%w: %s is empty", ErrNoInput, file)
		}
		return text, nil
	}
	if stdin != nil {
		text, err := ReadAll(stdin)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
	}
	return "", ErrNoInput
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		if content = strings.TrimSpace(content); content != "" {
			pages = append(pages, content)
		}
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}
	return strings.Join(pages, "\n\n"), nil
}
