package geotrafic

import "encoding/xml"

// Document is one Geo-Trafic feed download: an <Events> root holding
// zero or more <Event> records.
type Document struct {
	XMLName xml.Name `xml:"Events"`
	Events  []Event  `xml:"Event"`
}

// Event is a single TMDD-derived road event as published by the feed.
// Fields are decoded verbatim; use the accessor methods in wrapper.go
// rather than reading these directly.
type Event struct {
	SID            string `xml:"event-sid"`
	Name           string `xml:"event-name"`
	Description    string `xml:"project_references>project-description"`
	StatusID       string `xml:"event-status-tmdd-id"`
	SeverityID     string `xml:"event-severity-tmdd-id"`
	ClassID        string `xml:"event-planned-event-class-id"`
	FlagID         string `xml:"event-flag-tmdd-id"`
	LastUpdateTime string `xml:"last-update-time"`
	ExpectedStart  string `xml:"expected-start-time"`
	ExpectedEnd    string `xml:"expected-end-time"`

	Causes        []EventCause     `xml:"event-descriptions>event-cause"`
	Locations     []LocationOnLink `xml:"event-locations>event-location>location-on-link"`
	ScheduleTimes []string         `xml:"recurent-times>recurent-time>schedule-times"`
}

// EventCause classifies the reason for an event with an ITIS category code.
type EventCause struct {
	CategoryID string `xml:"ITIS-event-category-id"`
}

// LocationOnLink places an event on one road link, bounded by cross
// streets, with the link geometry in the source projection.
type LocationOnLink struct {
	LinkName          string      `xml:"link-name"`
	CrossStreetFrom   string      `xml:"cross-street-name-from"`
	CrossStreetTo     string      `xml:"cross-street-name-to"`
	Geometry          RawGeometry `xml:"link-geometry"`
	LeftJurisdiction  string      `xml:"link-left-jurisdiction-name"`
	RightJurisdiction string      `xml:"link-right-jurisdiction-name"`
}

// RawGeometry keeps the GML payload of a <link-geometry> element unparsed.
// Reprojection hands it to PostGIS as-is.
type RawGeometry struct {
	GML string `xml:",innerxml"`
}
