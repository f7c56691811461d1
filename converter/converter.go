package converter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/opennorth/geotrafic-to-open511/config"
	"github.com/opennorth/geotrafic-to-open511/geotrafic"
	"github.com/opennorth/geotrafic-to-open511/open511"
)

// Reprojector transforms one raw link geometry from the source spatial
// reference into a WGS84 GeoJSON geometry. The PostGIS implementation
// lives in the postgis package; tests substitute a fake.
type Reprojector interface {
	Reproject(ctx context.Context, gml string, srid int) (*open511.Geometry, error)
}

// Converter transcodes Geo-Trafic events into Open511 events.
type Converter struct {
	cfg      config.AppConfig
	reproj   Reprojector
	log      *zap.SugaredLogger
	warnings *WarningAggregator
}

// NewConverter creates a new converter instance
func NewConverter(cfg config.AppConfig, reproj Reprojector, log *zap.SugaredLogger) *Converter {
	return &Converter{
		cfg:      cfg,
		reproj:   reproj,
		log:      log,
		warnings: NewWarningAggregator(),
	}
}

// warn records a non-fatal anomaly: logged immediately, counted in the
// metrics, and aggregated for the per-document summary.
func (c *Converter) warn(kind, example string) {
	c.log.Warnw("conversion warning", "kind", kind, "value", example)
	conversionWarnings.WithLabelValues(kind).Inc()
	c.warnings.Add(kind, example)
}

// ConvertEvent transcodes a single source event. It runs every
// extraction task in order over a fresh Open511 event, then validates
// the result's shape. The returned error is a *DataError for malformed
// records, or a wrapped collaborator error (e.g. reprojection failure).
func (c *Converter) ConvertEvent(ctx context.Context, src *geotrafic.Event) (*open511.Event, error) {
	ev := &open511.Event{}
	for _, t := range tasks {
		if err := t(ctx, c, src, ev); err != nil {
			return nil, err
		}
	}
	if err := ev.Validate(); err != nil {
		return nil, fmt.Errorf("event failed shape validation: %w", err)
	}
	return ev, nil
}

// ConvertDocument transcodes a whole feed document. Records that cannot
// be converted are logged with their source id and skipped; one bad
// record never fails the batch.
func (c *Converter) ConvertDocument(ctx context.Context, doc *geotrafic.Document) *open511.Document {
	out := &open511.Document{
		Meta:     open511.Meta{Version: "v1"},
		Language: c.cfg.Language,
		Events:   []*open511.Event{},
	}
	for i := range doc.Events {
		src := &doc.Events[i]
		ev, err := c.ConvertEvent(ctx, src)
		if err != nil {
			c.log.Errorw("skipping event", "event_sid", src.SourceID(), "error", err)
			eventsSkipped.Inc()
			continue
		}
		eventsConverted.Inc()
		out.Events = append(out.Events, ev)
	}
	c.warnings.LogAll(c.log, c.cfg.Jurisdiction)
	return out
}
