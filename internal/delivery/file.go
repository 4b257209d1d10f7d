package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/questionnaire/internal/errors"
)

// Format is the encoding a file sink writes
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported response format %q (use yaml or json)", s)
	}
}

// Encode renders r in format
func Encode(r Response, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return yaml.Marshal(r)
	}
}

// WriterSink encodes each response to a writer
type WriterSink struct {
	w      io.Writer
	format Format
}

// NewWriterSink creates a sink writing to w, e.g. stdout
func NewWriterSink(w io.Writer, format Format) *WriterSink {
	return &WriterSink{w: w, format: format}
}

// Deliver writes r
func (s *WriterSink) Deliver(_ context.Context, r Response) error {
	data, err := Encode(r, s.format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "encode response", err)
	}
	if _, err := s.w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "write response", err)
	}
	return nil
}

// FileSink writes each response to a file, replacing previous content
type FileSink struct {
	path   string
	format Format
}

// NewFileSink creates a sink for path
func NewFileSink(path string, format Format) *FileSink {
	return &FileSink{path: path, format: format}
}

// Deliver writes r to the file, creating its directory
func (s *FileSink) Deliver(_ context.Context, r Response) error {
	data, err := Encode(r, s.format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "encode response", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed, "create response directory", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("write response %s", s.path), err).
			WithSuggestion("Check that the output directory is writable")
	}
	return nil
}
