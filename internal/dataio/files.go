// Package dataio reads and writes dataset tables and renders them as plots.
package dataio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"drawdata/internal/dataset"
)

// Format is an on-disk table encoding.
type Format int

const (
	CSV Format = iota
	GeoJSON
)

// FormatFor picks the table format from a file extension. Unknown or missing
// extensions are CSV.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return GeoJSON
	default:
		return CSV
	}
}

// Supported reports whether path looks like a file Load understands. It is
// used to filter directory listings.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".geojson", ".json", ".txt":
		return true
	}
	return false
}

// IsPlot reports whether path names an image format SavePlot writes.
func IsPlot(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
		return true
	}
	return false
}

// Encode writes t in format f.
func Encode(w io.Writer, f Format, t dataset.Table) error {
	switch f {
	case GeoJSON:
		return WriteGeoJSON(w, t)
	default:
		return WriteCSV(w, t)
	}
}

// Decode reads a table in format f.
func Decode(r io.Reader, f Format) (dataset.Table, error) {
	switch f {
	case GeoJSON:
		return ReadGeoJSON(r)
	default:
		return ReadCSV(r)
	}
}

// Save writes t to path. The data goes to a temporary file in the same
// directory which is renamed over path once complete, so a failed save never
// leaves a truncated file behind.
func Save(path string, t dataset.Table) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = Encode(tmp, FormatFor(path), t); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Load reads the table stored at path. Format problems are returned as
// *dataset.InvalidFileError with Path set.
func Load(path string) (dataset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Decode(f, FormatFor(path))
	if err != nil {
		var ife *dataset.InvalidFileError
		if errors.As(err, &ife) {
			ife.Path = path
			return nil, ife
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}
