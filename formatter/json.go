package formatter

import (
	"encoding/json"

	"github.com/opennorth/geotrafic-to-open511/open511"
)

type documentBuilder struct{}

// NewDocumentBuilder creates a builder for serializing Open511 documents
func NewDocumentBuilder() *documentBuilder {
	return &documentBuilder{}
}

// BuildJSON serializes an Open511 document to indented JSON
func (b *documentBuilder) BuildJSON(doc *open511.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "    ")
}
