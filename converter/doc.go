// Package converter is the main entry point for Geo-Trafic to Open511
// conversion.
//
// # Overview
//
// One source record flows through a fixed, ordered list of extraction
// tasks, each reading named fields off the source event and writing
// into the accumulating Open511 event:
//
//   - identity, headline, description: direct copies
//   - status/certainty, severity, event type: TMDD code mapping
//   - event subtypes: ITIS category codes resolved against the embedded
//     reference table
//   - roads: location groups with adjacent same-road segments merged
//   - geography: link geometries reprojected to WGS84 through a
//     Reprojector (PostGIS in production) and combined into one
//     (Multi-)geometry
//   - schedule: start/end instants plus daily recurring windows resolved
//     into an intervals schedule or a recurring schedule with
//     date-specific exceptions
//   - areas: jurisdiction names resolved against the borough gazetteer
//
// # Usage
//
//	cfg, _ := config.LoadAppConfig("")
//	reproj, _ := postgis.NewReprojector(ctx, cfg.Postgres.DSN)
//	conv := converter.NewConverter(cfg, reproj, logger)
//	doc := conv.ConvertDocument(ctx, feedDoc)
//
// # Error handling
//
// ConvertEvent returns a *DataError for records that are too malformed
// to convert (missing geometry, inconsistent geometry types, inverted
// schedule interval). ConvertDocument logs such records and skips them;
// a feed with one bad record still converts the rest. Unrecognized ITIS
// codes and area names are warnings only: the datum is omitted and
// conversion continues.
//
// # Thread safety
//
// A Converter is safe for converting records concurrently: the category
// table and gazetteer are read-only after one-time initialization, the
// warning aggregator is mutex-guarded, and each ConvertEvent call works
// on its own output event.
package converter
