// Package extract converts uploaded documents (PDF, HTML, plain text)
// into plain UTF-8 text for skill extraction.
package extract

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

const (
	// PDFTimeout is the maximum time to wait for pdftotext.
	PDFTimeout = 30 * time.Second

	// defaultPDFCommand is the poppler-utils converter used for PDFs.
	defaultPDFCommand = "pdftotext"
)

// Extractor converts document bytes into plain text based on the file
// extension. The zero field values are not usable; construct with New.
type Extractor struct {
	pdfCommand string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPDFCommand overrides the pdftotext binary name. Used by tests.
func WithPDFCommand(command string) Option {
	return func(x *Extractor) {
		x.pdfCommand = command
	}
}

// New creates an Extractor with default tool settings.
func New(opts ...Option) *Extractor {
	x := &Extractor{pdfCommand: defaultPDFCommand}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Extract returns the plain text content of the named document. PDFs go
// through pdftotext, HTML is reduced to its main body text, and anything
// else is treated as UTF-8 text.
func (x *Extractor) Extract(ctx context.Context, filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return x.extractPDF(ctx, filename, data)
	case ".html", ".htm":
		text, err := fetch.ExtractMainText(string(data), fetch.DefaultTextSelectors())
		if err != nil {
			return "", &Error{Filename: filename, Message: "failed to parse HTML", Cause: err}
		}
		return text, nil
	default:
		return strings.ToValidUTF8(string(data), "�"), nil
	}
}

// extractPDF shells out to pdftotext, writing the upload to a temp file
// and reading the converted text from stdout.
func (x *Extractor) extractPDF(ctx context.Context, filename string, data []byte) (string, error) {
	if _, err := exec.LookPath(x.pdfCommand); err != nil {
		return "", &Error{
			Filename: filename,
			Message:  x.pdfCommand + " not found in PATH (install poppler-utils)",
			Cause:    err,
		}
	}

	tmpFile, err := os.CreateTemp("", "resume-matcher-*.pdf")
	if err != nil {
		return "", &Error{Filename: filename, Message: "failed to create temp file", Cause: err}
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return "", &Error{Filename: filename, Message: "failed to write temp file", Cause: err}
	}
	if err := tmpFile.Close(); err != nil {
		return "", &Error{Filename: filename, Message: "failed to close temp file", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, PDFTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, x.pdfCommand, tmpPath, "-")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		message := "conversion failed"
		if s := strings.TrimSpace(stderr.String()); s != "" {
			message = "conversion failed: " + s
		}
		return "", &Error{Filename: filename, Message: message, Cause: err}
	}

	return stdout.String(), nil
}
