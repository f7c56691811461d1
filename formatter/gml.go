package formatter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/opennorth/geotrafic-to-open511/open511"
)

const srsNameAttr = ` srsName="urn:ogc:def:crs:EPSG::4326"`

// writeGML converts a GeoJSON geometry into its GML representation.
// The srsName attribute goes on the outermost geometry element only.
func writeGML(b *strings.Builder, g *open511.Geometry) error {
	var coords any
	if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
		return fmt.Errorf("decoding %s coordinates: %w", g.Type, err)
	}
	return writeGMLGeometry(b, g.Type, coords, srsNameAttr)
}

func writeGMLGeometry(b *strings.Builder, geomType string, coords any, attrs string) error {
	switch geomType {
	case "Point":
		pos, err := posFromPoint(coords)
		if err != nil {
			return err
		}
		b.WriteString("<gml:Point" + attrs + "><gml:pos>" + pos + "</gml:pos></gml:Point>")
	case "LineString":
		posList, err := posListFromLine(coords)
		if err != nil {
			return err
		}
		b.WriteString("<gml:LineString" + attrs + "><gml:posList>" + posList + "</gml:posList></gml:LineString>")
	case "Polygon":
		return writeGMLPolygon(b, coords, attrs)
	case "MultiPoint", "MultiLineString", "MultiPolygon":
		return writeGMLMulti(b, geomType, coords, attrs)
	default:
		return fmt.Errorf("unsupported geometry type %s", geomType)
	}
	return nil
}

func writeGMLPolygon(b *strings.Builder, coords any, attrs string) error {
	rings, ok := coords.([]any)
	if !ok || len(rings) == 0 {
		return fmt.Errorf("polygon coordinates must be a non-empty array of rings")
	}
	b.WriteString("<gml:Polygon" + attrs + ">")
	for i, ring := range rings {
		posList, err := posListFromLine(ring)
		if err != nil {
			return err
		}
		boundary := "gml:interior"
		if i == 0 {
			boundary = "gml:exterior"
		}
		b.WriteString("<" + boundary + "><gml:LinearRing><gml:posList>" + posList + "</gml:posList></gml:LinearRing></" + boundary + ">")
	}
	b.WriteString("</gml:Polygon>")
	return nil
}

func writeGMLMulti(b *strings.Builder, geomType string, coords any, attrs string) error {
	parts, ok := coords.([]any)
	if !ok {
		return fmt.Errorf("%s coordinates must be an array", geomType)
	}
	memberType := strings.TrimPrefix(geomType, "Multi")
	member := map[string]string{
		"Point":      "gml:pointMember",
		"LineString": "gml:lineStringMember",
		"Polygon":    "gml:polygonMember",
	}[memberType]

	b.WriteString("<gml:" + geomType + attrs + ">")
	for _, part := range parts {
		b.WriteString("<" + member + ">")
		if err := writeGMLGeometry(b, memberType, part, ""); err != nil {
			return err
		}
		b.WriteString("</" + member + ">")
	}
	b.WriteString("</gml:" + geomType + ">")
	return nil
}

// posFromPoint renders a GeoJSON position as "x y".
func posFromPoint(v any) (string, error) {
	pair, ok := v.([]any)
	if !ok || len(pair) < 2 {
		return "", fmt.Errorf("position must be an array of at least two numbers")
	}
	x, xok := pair[0].(float64)
	y, yok := pair[1].(float64)
	if !xok || !yok {
		return "", fmt.Errorf("position values must be numbers")
	}
	return formatCoord(x) + " " + formatCoord(y), nil
}

// posListFromLine renders an array of positions as a flat posList.
func posListFromLine(v any) (string, error) {
	points, ok := v.([]any)
	if !ok || len(points) == 0 {
		return "", fmt.Errorf("position list must be a non-empty array")
	}
	positions := make([]string, 0, len(points))
	for _, p := range points {
		pos, err := posFromPoint(p)
		if err != nil {
			return "", err
		}
		positions = append(positions, pos)
	}
	return strings.Join(positions, " "), nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
