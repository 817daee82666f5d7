package dataio

import (
	"encoding/json"
	"fmt"
	"io"

	"drawdata/internal/dataset"
)

type geoFeature struct {
	Type       string         `json:"type"`
	Geometry   geoGeometry    `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geoGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type geoCollection struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

// WriteGeoJSON writes t as a FeatureCollection of Point features. The label
// code is stored in the "color" property.
func WriteGeoJSON(w io.Writer, t dataset.Table) error {
	fc := geoCollection{Type: "FeatureCollection", Features: make([]geoFeature, len(t))}
	for i, r := range t {
		fc.Features[i] = geoFeature{
			Type:       "Feature",
			Geometry:   geoGeometry{Type: "Point", Coordinates: [2]float64{r.X, r.Y}},
			Properties: map[string]any{dataset.ColumnColor: r.Code},
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fc)
}

// ReadGeoJSON reads Point and MultiPoint features carrying a "color"
// property. A bare Feature is accepted as well as a FeatureCollection.
func ReadGeoJSON(r io.Reader) (dataset.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &dataset.InvalidFileError{Reason: "malformed json", Err: err}
	}

	parsePoint := func(v any) (pt [2]float64, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return [2]float64{x, y}, true
			}
		}
		return [2]float64{}, false
	}

	var t dataset.Table
	walkFeature := func(n int, fm map[string]any) error {
		props, _ := fm["properties"].(map[string]any)
		cv, ok := props[dataset.ColumnColor].(float64)
		if !ok {
			return &dataset.InvalidFileError{Column: dataset.ColumnColor, Reason: fmt.Sprintf("feature %d: missing color property", n)}
		}
		code, err := parseCode(fmt.Sprint(cv))
		if err != nil {
			return &dataset.InvalidFileError{Column: dataset.ColumnColor, Reason: fmt.Sprintf("feature %d: not a color code", n), Err: err}
		}
		if _, ok := dataset.LabelFromCode(code); !ok {
			return &dataset.InvalidFileError{Column: dataset.ColumnColor, Reason: fmt.Sprintf("feature %d: unknown color code %d", n, code)}
		}
		g, _ := fm["geometry"].(map[string]any)
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			pt, ok := parsePoint(g["coordinates"])
			if !ok {
				return &dataset.InvalidFileError{Reason: fmt.Sprintf("feature %d: bad coordinates", n)}
			}
			t = append(t, dataset.Row{X: pt[0], Y: pt[1], Code: code})
		case "MultiPoint":
			arr, _ := g["coordinates"].([]any)
			for _, el := range arr {
				pt, ok := parsePoint(el)
				if !ok {
					return &dataset.InvalidFileError{Reason: fmt.Sprintf("feature %d: bad coordinates", n)}
				}
				t = append(t, dataset.Row{X: pt[0], Y: pt[1], Code: code})
			}
		default:
			return &dataset.InvalidFileError{Reason: fmt.Sprintf("feature %d: unsupported geometry %q", n, gt)}
		}
		return nil
	}

	typ, _ := raw["type"].(string)
	switch typ {
	case "Feature":
		if err := walkFeature(0, raw); err != nil {
			return nil, err
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for i, f := range fs {
			fm, ok := f.(map[string]any)
			if !ok {
				return nil, &dataset.InvalidFileError{Reason: fmt.Sprintf("feature %d: not an object", i)}
			}
			if err := walkFeature(i, fm); err != nil {
				return nil, err
			}
		}
	default:
		return nil, &dataset.InvalidFileError{Reason: fmt.Sprintf("unsupported geojson type %q", typ)}
	}
	return t, nil
}
