package store

import (
	"encoding/json"
	"fmt"
)

// SkillRecord is one skill as written to the data file. Type carries the
// variant tag used to pick the reconstruction path on load.
type SkillRecord struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// CategoryRecord is one category as written to the data file. Skills keep
// their display order.
type CategoryRecord struct {
	Name   string        `json:"name"`
	Skills []SkillRecord `json:"skills"`
}

// Document is the full persisted state, keyed by category name. Each key
// must equal its record's Name field on write.
type Document map[string]CategoryRecord

// Encode marshals a document to indented JSON.
func Encode(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshaling skill data: %w", err)
	}
	return data, nil
}

// Decode parses a data file. Unknown fields in records are ignored so that
// files written by newer versions still load.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing skill data: %w", err)
	}
	return doc, nil
}
