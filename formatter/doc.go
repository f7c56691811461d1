// Package formatter serializes Open511 documents.
//
// This package is organized into:
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
// - gml.go: GeoJSON-to-GML geometry conversion for the XML form
//
// XML serialization is done manually for precise control over output format.
package formatter
