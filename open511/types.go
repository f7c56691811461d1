package open511

import "encoding/json"

// Open511 enumeration values produced by the converter.
const (
	StatusActive   = "ACTIVE"
	StatusArchived = "ARCHIVED"

	CertaintyPossible = "POSSIBLE"
	CertaintyObserved = "OBSERVED"

	SeverityMinor   = "MINOR"
	SeverityMajor   = "MAJOR"
	SeverityUnknown = "UNKNOWN"

	TypeConstruction = "CONSTRUCTION"
	TypeSpecialEvent = "SPECIAL_EVENT"
	TypeIncident     = "INCIDENT"
)

// Document is the top-level Open511 container.
type Document struct {
	Events []*Event `json:"events"`
	Meta   Meta     `json:"meta"`

	// Language is carried on the XML root element (xml:lang) and is not
	// part of the JSON body.
	Language string `json:"-"`
}

// Meta identifies the Open511 specification version of a document.
type Meta struct {
	Version string `json:"version"`
}

// Event is one Open511 road event.
type Event struct {
	ID            string    `json:"id" validate:"required"`
	Headline      string    `json:"headline,omitempty"`
	Status        string    `json:"status" validate:"required,oneof=ACTIVE ARCHIVED"`
	Created       string    `json:"created" validate:"required"`
	Updated       string    `json:"updated" validate:"required"`
	Description   string    `json:"description,omitempty"`
	EventType     string    `json:"event_type" validate:"required,oneof=CONSTRUCTION SPECIAL_EVENT INCIDENT"`
	EventSubtypes []string  `json:"event_subtypes,omitempty"`
	Certainty     string    `json:"certainty,omitempty" validate:"omitempty,oneof=POSSIBLE OBSERVED"`
	Severity      string    `json:"severity" validate:"required,oneof=MINOR MAJOR UNKNOWN"`
	Geography     *Geometry `json:"geography" validate:"required"`
	Schedule      *Schedule `json:"schedule" validate:"required"`
	Roads         []Road    `json:"roads,omitempty"`
	Areas         []Area    `json:"areas,omitempty"`
}

// Geometry is a GeoJSON geometry. Coordinates are kept as raw JSON so
// reprojection output round-trips byte for byte.
type Geometry struct {
	Type        string          `json:"type" validate:"required,oneof=Point LineString Polygon MultiPoint MultiLineString MultiPolygon"`
	Coordinates json.RawMessage `json:"coordinates" validate:"required"`
}

// Road names one affected road, optionally bounded by cross streets.
type Road struct {
	Name string `json:"name" validate:"required"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Area is an administrative area resolved against the gazetteer.
type Area struct {
	Name string `json:"name" validate:"required"`
	ID   string `json:"id" validate:"required"`
}

// Schedule holds either an intervals schedule or a recurring schedule
// with optional date-specific exceptions, never both.
type Schedule struct {
	Intervals          []string            `json:"intervals,omitempty"`
	RecurringSchedules []RecurringSchedule `json:"recurring_schedules,omitempty"`
	Exceptions         []string            `json:"exceptions,omitempty"`
}

// RecurringSchedule is one daily-recurring active window over a date range.
type RecurringSchedule struct {
	StartDate      string `json:"start_date" validate:"required"`
	EndDate        string `json:"end_date,omitempty"`
	DailyStartTime string `json:"daily_start_time,omitempty"`
	DailyEndTime   string `json:"daily_end_time,omitempty"`
}
