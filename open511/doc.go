// Package open511 defines Open511 road event data types.
//
// Open511 is an open specification for publishing road events
// (construction, incidents, special events) as JSON or XML. This
// package contains the event, schedule, geometry, and container types
// the converter produces, plus shape validation.
package open511
