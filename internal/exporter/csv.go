package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/ethandillon/DreamJobRealityCheck/internal/files"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	files  *files.Manager
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(manager *files.Manager, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{
		files:  manager,
		logger: logger.With(slog.String("component", "csv_writer")),
	}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV replaces the file at filePath with the given header and records
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	w.logger.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.String("full_path", w.files.Resolve(filePath)),
		slog.Int("record_count", len(options.Records)))

	return w.WriteStream(filePath, options.Headers, options.BOMPrefix, func(sw *StreamWriter) error {
		for i, record := range options.Records {
			if err := sw.WriteRecord(record); err != nil {
				return fmt.Errorf("failed to write record %d: %w", i, err)
			}
		}
		return nil
	})
}

// StreamWriter writes records one at a time inside WriteStream
type StreamWriter struct {
	writer *csv.Writer
	count  int
}

// WriteRecord writes a single record to the stream
func (s *StreamWriter) WriteRecord(record []string) error {
	if err := s.writer.Write(record); err != nil {
		return err
	}
	s.count++
	return nil
}

// Count returns the number of records written so far
func (s *StreamWriter) Count() int {
	return s.count
}

// WriteStream writes headers and then lets fill emit records. The target
// is replaced only if fill returns nil.
func (w *CSVWriter) WriteStream(filePath string, headers []string, bom bool, fill func(*StreamWriter) error) error {
	return w.files.WriteAtomic(filePath, func(out io.Writer) error {
		if bom {
			if _, err := out.Write(utf8BOM); err != nil {
				return fmt.Errorf("failed to write BOM: %w", err)
			}
		}

		sw := &StreamWriter{writer: csv.NewWriter(out)}

		if len(headers) > 0 {
			if err := sw.writer.Write(headers); err != nil {
				return fmt.Errorf("failed to write headers: %w", err)
			}
		}

		if err := fill(sw); err != nil {
			return err
		}

		sw.writer.Flush()
		return sw.writer.Error()
	})
}
