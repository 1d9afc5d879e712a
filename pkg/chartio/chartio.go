// Package chartio loads chart series from JSON, TOML, and YAML files.
//
// A series is an ordered list of labeled ratios:
//
//	title = "patient ages"
//
//	[[items]]
//	label = "58"
//	ratio = 0.25
//
//	[[items]]
//	label = "60"
//	ratio = 0.75
//
// The equivalent JSON and YAML shapes are accepted; the format is inferred
// from the file extension. Items without labels get their ratio formatted to
// two decimals as a display label, matching what the renderer would show for
// unlabeled data.
package chartio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tessella/tessella/pkg/errors"
)

// Format identifies a series file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Item is one entry of a series: a display label and its area share.
type Item struct {
	Label string  `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	Ratio float64 `json:"ratio" toml:"ratio" yaml:"ratio"`
}

// Series is an ordered collection of labeled ratios.
type Series struct {
	Title string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Items []Item `json:"items" toml:"items" yaml:"items"`
}

// Ratios returns the ratio column in input order.
func (s *Series) Ratios() []float64 {
	out := make([]float64, len(s.Items))
	for i, it := range s.Items {
		out[i] = it.Ratio
	}
	return out
}

// Labels returns the label column in input order, substituting the formatted
// ratio for items without a label.
func (s *Series) Labels() []string {
	out := make([]string, len(s.Items))
	for i, it := range s.Items {
		if it.Label != "" {
			out[i] = it.Label
		} else {
			out[i] = fmt.Sprintf("%.2f", it.Ratio)
		}
	}
	return out
}

// Validate rejects series that can never produce a layout: empty item lists
// and non-positive ratios. The sum-to-one check belongs to the layout itself.
func (s *Series) Validate() error {
	if len(s.Items) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "series has no items")
	}
	for i, it := range s.Items {
		if it.Ratio <= 0 {
			return errors.New(errors.ErrCodeDegenerateRatio, "item %d (%q) has ratio %v; ratios must be positive", i, it.Label, it.Ratio)
		}
	}
	return nil
}

// FormatForPath infers the series format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported series format %q (want .json, .toml, or .yaml)", filepath.Ext(path))
	}
}

// ReadSeries decodes a series from r in the given format.
func ReadSeries(r io.Reader, format Format) (*Series, error) {
	var s Series
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON series")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML series")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode YAML series")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown series format %q", format)
	}
	return &s, nil
}

// LoadSeries reads a series file, inferring the format from its extension.
func LoadSeries(path string) (*Series, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "series file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	s, err := ReadSeries(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
