// Package spill enforces the response-size budget for collection results.
// Results are either returned inline or persisted to a JSON file with a
// compact acknowledgement, depending on an explicit flag and the measured
// serialized size. Spill files are write-only artifacts: never read back,
// never deleted.
package spill

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
)

// CharacterLimit is the inline response budget in serialized characters.
const CharacterLimit = 25000

// Document is the persisted artifact shape for transaction collections.
// Query is only set for search results.
type Document struct {
	Query           string                   `json:"query,omitempty"`
	Count           int                      `json:"count"`
	TotalMilliunits int64                    `json:"total_milliunits"`
	Total           string                   `json:"total"`
	Transactions    []domain.TransactionView `json:"transactions"`
}

// Ack is the compact acknowledgement returned when a result is spilled.
type Ack struct {
	Query           string `json:"query,omitempty"`
	Count           int    `json:"count"`
	TotalMilliunits int64  `json:"total_milliunits"`
	Total           string `json:"total"`
	OutputFile      string `json:"output_file"`
	Message         string `json:"message"`
}

// Writer persists oversized or explicitly flagged results under a root
// directory. The root is fixed at construction; a per-call explicit path
// bypasses it entirely.
type Writer struct {
	root string
	now  func() time.Time

	// OnSpill, when set, observes every persisted document with the
	// reason ("explicit" or "oversize") and the serialized size.
	OnSpill func(reason string, size int)
}

// NewWriter creates a spill writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{root: dir, now: time.Now}
}

// MaybeSpill returns either the full inline JSON document or, when the
// caller asked for a file or the document exceeds the character budget,
// writes the document and returns the acknowledgement JSON instead.
func (w *Writer) MaybeSpill(doc *Document, prefix string, toFile bool, path string) (string, error) {
	full, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode spill document: %w", err)
	}

	if toFile {
		filePath, err := w.write(full, prefix, path)
		if err != nil {
			return "", err
		}
		w.notify("explicit", len(full))
		msg := fmt.Sprintf("Wrote %d transactions to %s", doc.Count, filePath)
		if doc.Query != "" {
			msg = fmt.Sprintf("Found %d matching transactions. Wrote to %s", doc.Count, filePath)
		}
		return w.ack(doc, filePath, msg)
	}

	if len(full) > CharacterLimit {
		filePath, err := w.write(full, prefix, path)
		if err != nil {
			return "", err
		}
		w.notify("oversize", len(full))
		msg := fmt.Sprintf("Response too large (%d chars). Wrote to %s", len(full), filePath)
		return w.ack(doc, filePath, msg)
	}

	return string(full), nil
}

func (w *Writer) notify(reason string, size int) {
	if w.OnSpill != nil {
		w.OnSpill(reason, size)
	}
}

func (w *Writer) ack(doc *Document, filePath, message string) (string, error) {
	out, err := json.MarshalIndent(Ack{
		Query:           doc.Query,
		Count:           doc.Count,
		TotalMilliunits: doc.TotalMilliunits,
		Total:           doc.Total,
		OutputFile:      filePath,
		Message:         message,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode spill ack: %w", err)
	}
	return string(out), nil
}

// write persists data to the explicit path when given, otherwise to a
// generated <root>/<prefix>_<timestamp>.json. Timestamps have second
// resolution; two calls in the same second can overwrite each other.
func (w *Writer) write(data []byte, prefix, path string) (string, error) {
	filePath := path
	if filePath == "" {
		filePath = filepath.Join(w.root, fmt.Sprintf("%s_%s.json", prefix, w.now().Format("20060102_150405")))
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return "", &domain.ErrPersistence{Path: filePath, Err: err}
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", &domain.ErrPersistence{Path: filePath, Err: err}
	}
	return filePath, nil
}
