package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the catalog encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the catalog encoding from a file extension.
func FormatForPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// LoadCatalog reads, parses, and validates a question catalog file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read question catalog: %w", err)
	}
	return ParseCatalog(data, FormatForPath(path))
}

// ParseCatalog decodes and validates catalog bytes in the given format.
func ParseCatalog(data []byte, format Format) (Catalog, error) {
	var (
		catalog Catalog
		err     error
	)
	if format == FormatJSON {
		catalog, err = parseJSONCatalog(data)
	} else {
		catalog, err = parseYAMLCatalog(data)
	}
	if err != nil {
		return Catalog{}, err
	}
	return NormalizeCatalog(catalog)
}

func parseJSONCatalog(data []byte) (Catalog, error) {
	var catalog Catalog
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&catalog); err != nil {
		return Catalog{}, fmt.Errorf("parse json: %w", err)
	}
	var trailing json.RawMessage
	if err := decoder.Decode(&trailing); err != io.EOF {
		if err == nil {
			return Catalog{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Catalog{}, fmt.Errorf("parse json: %w", err)
	}
	return catalog, nil
}

func parseYAMLCatalog(data []byte) (Catalog, error) {
	var catalog Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		return Catalog{}, fmt.Errorf("parse yaml: %w", err)
	}
	var trailing yaml.Node
	if err := decoder.Decode(&trailing); err != io.EOF {
		if err == nil {
			return Catalog{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Catalog{}, fmt.Errorf("parse yaml: %w", err)
	}
	return catalog, nil
}
