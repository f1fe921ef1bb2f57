package models

import (
	"fmt"
	"strings"
	"time"
)

// FieldKind tells the request decoder how to convert a raw value.
type FieldKind int

const (
	KindString FieldKind = iota
	KindBool
	KindInt
	KindList
	KindDate
	KindDocument
)

// FieldSpec maps one client-facing key of a partial update onto a column.
type FieldSpec struct {
	Key      string
	Column   string
	Kind     FieldKind
	Required bool
	Enum     func(string) bool
}

var ProjectFields = []FieldSpec{
	{Key: "title", Column: "title", Required: true},
	{Key: "city", Column: "city", Required: true},
	{Key: "location", Column: "location", Required: true},
	{Key: "type", Column: "type", Required: true, Enum: func(v string) bool { return ProjectType(v).Valid() }},
	{Key: "configuration", Column: "configuration", Required: true},
	{Key: "shortDescription", Column: "short_description", Required: true},
	{Key: "longDescription", Column: "long_description"},
	{Key: "price", Column: "price", Required: true},
	{Key: "startingPrice", Column: "starting_price"},
	{Key: "area", Column: "area"},
	{Key: "possession", Column: "possession"},
	{Key: "status", Column: "status", Required: true, Enum: func(v string) bool { return ProjectStatus(v).Valid() }},
	{Key: "amenities", Column: "amenities", Kind: KindList},
	{Key: "highlights", Column: "highlights", Kind: KindList},
	{Key: "galleryImages", Column: "gallery_images", Kind: KindList},
	{Key: "mainImage", Column: "main_image"},
	{Key: "bannerImage", Column: "banner_image"},
	{Key: "reraNumber", Column: "rera_number"},
	{Key: "featured", Column: "featured", Kind: KindBool},
}

var BlogFields = []FieldSpec{
	{Key: "title", Column: "title", Required: true},
	{Key: "shortDescription", Column: "short_description", Required: true},
	{Key: "fullContent", Column: "full_content", Required: true},
	{Key: "coverImage", Column: "cover_image"},
	{Key: "date", Column: "date", Kind: KindDate},
}

// ValidatePatch rejects emptied required columns and out-of-set enum values
// in a decoded partial update keyed by column.
func ValidatePatch(specs []FieldSpec, fields map[string]any) error {
	for _, spec := range specs {
		value, ok := fields[spec.Column]
		if !ok {
			continue
		}
		s, isString := value.(string)
		if !isString {
			continue
		}
		if spec.Required && strings.TrimSpace(s) == "" {
			return NewValidationError("%s cannot be empty", spec.Key)
		}
		if spec.Enum != nil && !spec.Enum(s) {
			return NewValidationError("%s: %q is not an allowed value", spec.Key, s)
		}
	}
	return nil
}

// dateLayouts are tried in order when parsing a date field.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// ParseDate accepts RFC 3339 timestamps, HTML datetime-local values and
// plain dates.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

// SplitList turns form input into a list. Each value may itself hold several
// comma or newline separated items; blanks are dropped.
func SplitList(values []string) []string {
	items := []string{}
	for _, v := range values {
		for _, part := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == '\n' }) {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
	}
	return items
}

// ParseBool reads checkbox style input: "on", "true", "1" and "yes" are true,
// anything else is false.
func ParseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
