package catalog

import (
	"strings"

	"github.com/corey/acro/internal/ports"
)

// NoValue is shown in place of an absent or empty field.
const NoValue = "None"

// DisplayField is one labelled line of an entry's display.
type DisplayField struct {
	Field ports.Field
	Label string
	Value string
	Empty bool // true when Value is the NoValue marker
}

var labels = map[ports.Field]string{
	ports.FieldAcronym:         "Acronym",
	ports.FieldDefinition:      "Definition",
	ports.FieldCategory:        "Category",
	ports.FieldDescription:     "Description",
	ports.FieldAliases:         "Aliases",
	ports.FieldOrigin:          "Origin",
	ports.FieldRelatedAcronyms: "Related Acronyms",
	ports.FieldNotes:           "Notes",
}

// Label returns the display label for a field.
func Label(f ports.Field) string {
	return labels[f]
}

// DisplayFields returns every field of e in canonical order. Absent fields,
// empty strings and empty lists all render as NoValue; no field is omitted.
func DisplayFields(e *ports.Entry) []DisplayField {
	out := make([]DisplayField, 0, len(ports.Fields))
	for _, f := range ports.Fields {
		v, _ := ports.FieldText(e, f)
		df := DisplayField{Field: f, Label: labels[f], Value: v}
		if strings.TrimSpace(v) == "" {
			df.Value = NoValue
			df.Empty = true
		}
		out = append(out, df)
	}
	return out
}
