// Package view flattens lookup payloads into labelled rows for display.
package view

import (
	"encoding/json"
	"strconv"
	"strings"

	"lookupdesk/internal/card"
	"lookupdesk/internal/lookup/models"
)

// Row is one labelled value.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type field struct {
	key   string
	label string
}

var fields = map[models.Domain][]field{
	models.DomainPhone: {
		{"phone", "Phone"},
		{"name", "Name"},
		{"operator", "Operator"},
		{"country", "Country"},
		{"circle", "Circle"},
		{"type", "Type"},
		{"status", "Status"},
		{"city", "City"},
	},
	models.DomainVehicle: {
		{"rc_number", "RC Number"},
		{"owner_name", "Owner"},
		{"vehicle_type", "Vehicle Type"},
		{"registration_number", "Registration"},
		{"maker_model", "Model"},
		{"chasis_number", "Chassis"},
		{"engine_number", "Engine"},
		{"registration_date", "Registration Date"},
		{"fuel_type", "Fuel Type"},
		{"color", "Color"},
		{"phone_number", "Phone"},
		{"address", "Address"},
	},
	models.DomainNationalID: {
		{"name", "Name"},
		{"gender", "Gender"},
		{"dob", "DOB"},
		{"aadhaar", "National ID"},
		{"address", "Address"},
		{"state", "State"},
		{"district", "District"},
		{"phone", "Phone"},
		{"email", "Email"},
		{"family_members", "Family Members"},
	},
}

// Rows extracts the known fields of payload in display order. Remote payloads
// are read from their "data" member when present. Missing or empty fields are
// skipped; an undecodable payload yields no rows.
func Rows(domain models.Domain, payload json.RawMessage) []Row {
	if domain == models.DomainCard {
		return cardRows(payload)
	}

	var top map[string]any
	if err := json.Unmarshal(payload, &top); err != nil {
		return []Row{}
	}
	record := top
	if inner, ok := top["data"].(map[string]any); ok {
		record = inner
	}

	rows := []Row{}
	for _, f := range fields[domain] {
		if v := format(record[f.key]); v != "" {
			rows = append(rows, Row{Label: f.label, Value: v})
		}
	}
	return rows
}

func cardRows(payload json.RawMessage) []Row {
	var p card.Profile
	if err := json.Unmarshal(payload, &p); err != nil || p.Number == "" {
		return []Row{}
	}
	valid := "No"
	if p.Valid {
		valid = "Yes"
	}
	return []Row{
		{Label: "Card Number", Value: p.Masked()},
		{Label: "BIN", Value: p.BIN},
		{Label: "Brand", Value: string(p.Brand)},
		{Label: "Card Type", Value: p.Type},
		{Label: "Issuing Bank", Value: p.Bank},
		{Label: "Card Length", Value: strconv.Itoa(p.Length) + " digits"},
		{Label: "Valid", Value: valid},
	}
}

// format renders a decoded JSON value; falsy values render empty.
func format(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return ""
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, format(item))
		}
		return strings.Join(parts, ", ")
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
