package formatter

import (
	"fmt"
	"strings"

	"github.com/opennorth/geotrafic-to-open511/open511"
)

// BuildXML serializes an Open511 document to XML, converting GeoJSON
// geographies into GML along the way.
func (b *documentBuilder) BuildXML(doc *open511.Document) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`<open511 xmlns:gml="http://www.opengis.net/gml" version="`)
	sb.WriteString(xmlEscape(doc.Meta.Version))
	sb.WriteString(`"`)
	if doc.Language != "" {
		sb.WriteString(` xml:lang="`)
		sb.WriteString(xmlEscape(doc.Language))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString("<events>")
	for _, ev := range doc.Events {
		if err := writeEventXML(&sb, ev); err != nil {
			return nil, fmt.Errorf("serializing event %s: %w", ev.ID, err)
		}
	}
	sb.WriteString("</events>")
	sb.WriteString("</open511>")
	return []byte(sb.String()), nil
}

func writeEventXML(b *strings.Builder, ev *open511.Event) error {
	b.WriteString("<event>")
	writeElement(b, "id", ev.ID)
	writeElement(b, "headline", ev.Headline)
	writeElement(b, "status", ev.Status)
	writeElement(b, "created", ev.Created)
	writeElement(b, "updated", ev.Updated)
	writeElement(b, "description", ev.Description)
	writeElement(b, "event_type", ev.EventType)
	if len(ev.EventSubtypes) > 0 {
		b.WriteString("<event_subtypes>")
		for _, subtype := range ev.EventSubtypes {
			writeElement(b, "event_subtype", subtype)
		}
		b.WriteString("</event_subtypes>")
	}
	writeElement(b, "certainty", ev.Certainty)
	writeElement(b, "severity", ev.Severity)
	if ev.Geography != nil {
		b.WriteString("<geography>")
		if err := writeGML(b, ev.Geography); err != nil {
			return err
		}
		b.WriteString("</geography>")
	}
	if ev.Schedule != nil {
		writeScheduleXML(b, ev.Schedule)
	}
	if len(ev.Roads) > 0 {
		b.WriteString("<roads>")
		for _, road := range ev.Roads {
			b.WriteString("<road>")
			writeElement(b, "name", road.Name)
			writeElement(b, "from", road.From)
			writeElement(b, "to", road.To)
			b.WriteString("</road>")
		}
		b.WriteString("</roads>")
	}
	if len(ev.Areas) > 0 {
		b.WriteString("<areas>")
		for _, area := range ev.Areas {
			b.WriteString("<area>")
			writeElement(b, "name", area.Name)
			writeElement(b, "id", area.ID)
			b.WriteString("</area>")
		}
		b.WriteString("</areas>")
	}
	b.WriteString("</event>")
	return nil
}

func writeScheduleXML(b *strings.Builder, s *open511.Schedule) {
	b.WriteString("<schedule>")
	if len(s.Intervals) > 0 {
		b.WriteString("<intervals>")
		for _, interval := range s.Intervals {
			writeElement(b, "interval", interval)
		}
		b.WriteString("</intervals>")
	}
	if len(s.RecurringSchedules) > 0 {
		b.WriteString("<recurring_schedules>")
		for _, rs := range s.RecurringSchedules {
			b.WriteString("<recurring_schedule>")
			writeElement(b, "start_date", rs.StartDate)
			writeElement(b, "end_date", rs.EndDate)
			writeElement(b, "daily_start_time", rs.DailyStartTime)
			writeElement(b, "daily_end_time", rs.DailyEndTime)
			b.WriteString("</recurring_schedule>")
		}
		b.WriteString("</recurring_schedules>")
	}
	if len(s.Exceptions) > 0 {
		b.WriteString("<exceptions>")
		for _, exc := range s.Exceptions {
			writeElement(b, "exception", exc)
		}
		b.WriteString("</exceptions>")
	}
	b.WriteString("</schedule>")
}

func writeElement(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
