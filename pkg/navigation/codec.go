// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a document format the navigation can be stored in
type Format string

const (
	// FormatYAML is a YAML sequence of entries
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON array of entries
	FormatJSON Format = "json"
	// FormatTS is a TypeScript module default-exporting the entries, as
	// read by VitePress and docsify based sites
	FormatTS Format = "ts"
)

// Formats lists the supported document formats
var Formats = []Format{FormatYAML, FormatJSON, FormatTS}

// ErrUnknownFormat is returned for unsupported formats and file extensions
var ErrUnknownFormat = errors.New("unknown navigation format")

// ParseFormat converts a format name into a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "ts", "typescript", "js", "javascript":
		return FormatTS, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

// FormatFromPath determines the format from a file extension
func FormatFromPath(filePath string) (Format, error) {
	switch ext := strings.ToLower(path.Ext(filePath)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".ts", ".mts", ".js", ".mjs":
		return FormatTS, nil
	default:
		return "", fmt.Errorf("%w: can't determine format of %s", ErrUnknownFormat, filePath)
	}
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// Encode writes the tree to w in the given format
func Encode(w io.Writer, tree Tree, format Format) error {
	if tree == nil {
		tree = Tree{}
	}
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(tree); err != nil {
			return fmt.Errorf("can't encode navigation as yaml: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(tree); err != nil {
			return fmt.Errorf("can't encode navigation as json: %w", err)
		}
		return nil
	case FormatTS:
		return encodeScript(w, tree)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// Marshal returns the tree encoded in the given format
func Marshal(tree Tree, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, tree, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a navigation document. Fields other than text, link,
// collapsed and items are rejected
func Decode(data []byte, format Format) (Tree, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON:
		var tree Tree
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&tree); err != nil {
			if errors.Is(err, io.EOF) {
				return Tree{}, nil
			}
			return nil, fmt.Errorf("can't parse navigation json content: %w", err)
		}
		return tree, nil
	case FormatTS:
		tree, err := decodeScript(data)
		if err != nil {
			return nil, fmt.Errorf("can't parse navigation script content: %w", err)
		}
		return tree, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// Unmarshal is an alias of Decode
func Unmarshal(data []byte, format Format) (Tree, error) {
	return Decode(data, format)
}

func decodeYAML(data []byte) (Tree, error) {
	var tree Tree
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return Tree{}, nil
		}
		return nil, fmt.Errorf("can't parse navigation yaml content: %w", err)
	}
	return tree, nil
}
