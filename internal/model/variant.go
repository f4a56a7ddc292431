package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Variant is one trim of a model. The catalog exposes dozens of optional
// spec fields with no fixed schema; anything this package does not model
// explicitly lands in Specs, keyed by the upstream field name. Absence of
// a field is the only signal that it does not apply to this variant.
type Variant struct {
	ID           string
	ModelID      string
	Name         string
	Price        *int64 // smallest currency unit
	Fuel         string
	Transmission string
	MaxPower     string

	// Company-claimed and real-world mileage, km per litre.
	MileageClaimed     *float64
	MileageCityReal    *float64
	MileageHighwayReal *float64

	// Newline-delimited text blobs; the upstream sends either a single
	// string or a list of lines per field.
	Description     string
	EngineSummary   string
	ExteriorSummary string
	ComfortSummary  string

	HighlightImages []Image
	Specs           map[string]string
}

// UnmarshalJSON pulls the typed fields out of the record and keeps every
// remaining scalar field in Specs.
func (v *Variant) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	take := func(key string, out any) error {
		m, ok := raw[key]
		if !ok {
			return nil
		}
		delete(raw, key)
		return json.Unmarshal(m, out)
	}

	for key, out := range map[string]any{
		"id":                      &v.ID,
		"modelId":                 &v.ModelID,
		"name":                    &v.Name,
		"price":                   &v.Price,
		"fuel":                    &v.Fuel,
		"transmission":            &v.Transmission,
		"maxPower":                &v.MaxPower,
		"mileage":                 &v.MileageClaimed,
		"mileageCityRealWorld":    &v.MileageCityReal,
		"mileageHighwayRealWorld": &v.MileageHighwayReal,
		"highlightImages":         &v.HighlightImages,
	} {
		if err := take(key, out); err != nil {
			return err
		}
	}

	for key, out := range map[string]*string{
		"description":     &v.Description,
		"engineSummary":   &v.EngineSummary,
		"exteriorSummary": &v.ExteriorSummary,
		"comfortSummary":  &v.ComfortSummary,
	} {
		if m, ok := raw[key]; ok {
			delete(raw, key)
			*out = flexibleText(m)
		}
	}

	for key, m := range raw {
		s, ok := scalarString(m)
		if !ok {
			continue
		}
		if v.Specs == nil {
			v.Specs = make(map[string]string)
		}
		v.Specs[key] = s
	}
	return nil
}

// flexibleText accepts either a plain string or a list of lines.
func flexibleText(m json.RawMessage) string {
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return s
	}
	var lines []string
	if err := json.Unmarshal(m, &lines); err == nil {
		return strings.Join(lines, "\n")
	}
	return ""
}

// scalarString renders a JSON scalar as its display string. Nested objects,
// arrays, nulls and empty strings read as "field absent".
func scalarString(m json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return s, s != ""
	}
	var num json.Number
	if err := json.Unmarshal(m, &num); err == nil {
		return num.String(), true
	}
	var b bool
	if err := json.Unmarshal(m, &b); err == nil {
		return strconv.FormatBool(b), true
	}
	return "", false
}
