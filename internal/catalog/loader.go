package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/questionnaire/internal/errors"
)

// Format is a catalog file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeFileUnmarshal, fmt.Sprintf("unsupported catalog extension: %s", path)).
			WithSuggestion("Use a .yaml, .yml, .json or .toml file")
	}
}

// Repository loads and saves catalog documents
type Repository interface {
	// Load reads a catalog document from a file
	Load(path string) (Document, error)

	// Save writes a catalog document to a file
	Save(doc Document, path string) error
}

// FileRepository implements Repository on the local filesystem
type FileRepository struct{}

// NewFileRepository creates a new file-based catalog repository
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Load reads a catalog document, decoding by extension
func (r *FileRepository) Load(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.NewFileNotFoundError(path)
		}
		return Document{}, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("read catalog %s", path), err)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return Document{}, errors.NewFileUnmarshalError(path, strings.ToUpper(string(format)), err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Save writes doc to path, encoding by extension
func (r *FileRepository) Save(doc Document, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Encode(doc, format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "encode catalog", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed, "create catalog directory", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("write catalog %s", path), err)
	}
	return nil
}

// Decode parses a catalog document
func Decode(data []byte, format Format) (Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatTOML:
		_, err = toml.Decode(string(data), &doc)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	return doc, err
}

// Encode renders a catalog document
func Encode(doc Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Default instance for package-level functions
var defaultRepository = NewFileRepository()

// LoadDocument reads a catalog document using the default repository
func LoadDocument(path string) (Document, error) {
	return defaultRepository.Load(path)
}

// SaveDocument writes a catalog document using the default repository
func SaveDocument(doc Document, path string) error {
	return defaultRepository.Save(doc, path)
}

// Compile-time verification that FileRepository implements Repository
var _ Repository = (*FileRepository)(nil)
