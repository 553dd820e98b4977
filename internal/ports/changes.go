package ports

import (
	"fmt"
	"strings"
)

// Field names an Entry field by its catalog-file key.
type Field string

const (
	FieldAcronym         Field = "acronym"
	FieldDefinition      Field = "definition"
	FieldCategory        Field = "category"
	FieldDescription     Field = "description"
	FieldAliases         Field = "aliases"
	FieldOrigin          Field = "origin"
	FieldRelatedAcronyms Field = "related_acronyms"
	FieldNotes           Field = "notes"
)

// Fields lists every Entry field in canonical (file and display) order.
var Fields = []Field{
	FieldAcronym,
	FieldDefinition,
	FieldCategory,
	FieldDescription,
	FieldAliases,
	FieldOrigin,
	FieldRelatedAcronyms,
	FieldNotes,
}

// ParseField validates a field name.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

// IsList reports whether the field holds a list of strings.
func (f Field) IsList() bool {
	return f == FieldAliases || f == FieldRelatedAcronyms
}

// Changes describes an update to an Entry. Every non-nil field overwrites the
// entry's value (lists are replaced, never merged). Fields named in Clear are
// reset to "no value". Clear is applied after the overwrites.
type Changes struct {
	Acronym         *string
	Definition      *string
	Category        *string
	Description     *string
	Aliases         []string
	Origin          *string
	RelatedAcronyms []string
	Notes           *string

	Clear []Field
}

// IsEmpty reports whether applying c would change nothing.
func (c Changes) IsEmpty() bool {
	return c.Acronym == nil && c.Definition == nil && c.Category == nil &&
		c.Description == nil && c.Aliases == nil && c.Origin == nil &&
		c.RelatedAcronyms == nil && c.Notes == nil && len(c.Clear) == 0
}

// Apply overwrites e's fields with the values set in c.
func (c Changes) Apply(e *Entry) {
	if c.Acronym != nil {
		e.Acronym = *c.Acronym
	}
	if c.Definition != nil {
		e.Definition = cloneText(c.Definition)
	}
	if c.Category != nil {
		e.Category = cloneText(c.Category)
	}
	if c.Description != nil {
		e.Description = cloneText(c.Description)
	}
	if c.Aliases != nil {
		e.Aliases = cloneList(c.Aliases)
	}
	if c.Origin != nil {
		e.Origin = cloneText(c.Origin)
	}
	if c.RelatedAcronyms != nil {
		e.RelatedAcronyms = cloneList(c.RelatedAcronyms)
	}
	if c.Notes != nil {
		e.Notes = cloneText(c.Notes)
	}
	for _, f := range c.Clear {
		clearField(e, f)
	}
}

func clearField(e *Entry, f Field) {
	switch f {
	case FieldAcronym:
		e.Acronym = ""
	case FieldDefinition:
		e.Definition = nil
	case FieldCategory:
		e.Category = nil
	case FieldDescription:
		e.Description = nil
	case FieldAliases:
		e.Aliases = nil
	case FieldOrigin:
		e.Origin = nil
	case FieldRelatedAcronyms:
		e.RelatedAcronyms = nil
	case FieldNotes:
		e.Notes = nil
	}
}

// Set assigns a textual value to the named field of c. List fields take
// comma-separated values; surrounding whitespace of each item is dropped.
func (c *Changes) Set(f Field, value string) {
	switch f {
	case FieldAcronym:
		c.Acronym = Text(value)
	case FieldDefinition:
		c.Definition = Text(value)
	case FieldCategory:
		c.Category = Text(value)
	case FieldDescription:
		c.Description = Text(value)
	case FieldAliases:
		c.Aliases = SplitList(value)
	case FieldOrigin:
		c.Origin = Text(value)
	case FieldRelatedAcronyms:
		c.RelatedAcronyms = SplitList(value)
	case FieldNotes:
		c.Notes = Text(value)
	}
}

// SplitList splits a comma-separated list, trimming items and dropping blanks.
// The result is never nil, so an empty input yields an explicit empty list.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FieldText returns the textual form of a field and whether it has a value.
// Lists are joined with ", ".
func FieldText(e *Entry, f Field) (string, bool) {
	switch f {
	case FieldAcronym:
		return e.Acronym, e.Acronym != ""
	case FieldDefinition:
		return Value(e.Definition), e.Definition != nil
	case FieldCategory:
		return Value(e.Category), e.Category != nil
	case FieldDescription:
		return Value(e.Description), e.Description != nil
	case FieldAliases:
		return strings.Join(e.Aliases, ", "), e.Aliases != nil
	case FieldOrigin:
		return Value(e.Origin), e.Origin != nil
	case FieldRelatedAcronyms:
		return strings.Join(e.RelatedAcronyms, ", "), e.RelatedAcronyms != nil
	case FieldNotes:
		return Value(e.Notes), e.Notes != nil
	}
	return "", false
}
