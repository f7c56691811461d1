package converter

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	_ "embed"

	"github.com/opennorth/geotrafic-to-open511/geotrafic"
	"github.com/opennorth/geotrafic-to-open511/open511"
)

// itisCategoriesCSV is the static ITIS category reference table,
// compiled into the binary. Columns: id, name, open511_subtype (comma-
// joined list of Open511 subtype strings, possibly empty).
//
//go:embed itis_categories.csv
var itisCategoriesCSV string

// itisCategory is one row of the reference table.
type itisCategory struct {
	name     string
	subtypes []string
}

var (
	itisOnce       sync.Once
	itisCategories map[string]itisCategory
	itisLoadErr    error
)

// loadITISCategories parses the embedded table once. The table is
// read-only after init, so concurrent records can share it.
func loadITISCategories() (map[string]itisCategory, error) {
	itisOnce.Do(func() {
		reader := csv.NewReader(strings.NewReader(itisCategoriesCSV))
		header, err := reader.Read()
		if err != nil {
			itisLoadErr = fmt.Errorf("reading ITIS category table header: %w", err)
			return
		}
		col := map[string]int{}
		for i, name := range header {
			col[name] = i
		}
		for _, required := range []string{"id", "name", "open511_subtype"} {
			if _, ok := col[required]; !ok {
				itisLoadErr = fmt.Errorf("ITIS category table is missing column %q", required)
				return
			}
		}

		table := map[string]itisCategory{}
		for {
			row, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				itisLoadErr = fmt.Errorf("reading ITIS category table: %w", err)
				return
			}
			cat := itisCategory{name: strings.TrimSpace(row[col["name"]])}
			for _, subtype := range strings.Split(row[col["open511_subtype"]], ",") {
				subtype = strings.TrimSpace(subtype)
				if subtype != "" {
					cat.subtypes = append(cat.subtypes, subtype)
				}
			}
			table[strings.TrimSpace(row[col["id"]])] = cat
		}
		itisCategories = table
	})
	return itisCategories, itisLoadErr
}

func taskEventSubtypes(_ context.Context, c *Converter, src *geotrafic.Event, ev *open511.Event) error {
	codes := src.CauseCategoryIDs()
	if len(codes) == 0 {
		return nil
	}
	table, err := loadITISCategories()
	if err != nil {
		return err
	}

	set := map[string]struct{}{}
	for _, code := range codes {
		cat, ok := table[code]
		if !ok {
			c.warn(WarningUnknownITISCategory, code)
			continue
		}
		for _, subtype := range cat.subtypes {
			set[subtype] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	subtypes := make([]string, 0, len(set))
	for subtype := range set {
		subtypes = append(subtypes, subtype)
	}
	sort.Strings(subtypes)
	ev.EventSubtypes = subtypes
	return nil
}
