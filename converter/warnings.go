package converter

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Warning kind constants
const (
	WarningUnknownITISCategory   = "unknown_itis_category"
	WarningUnknownArrondissement = "unknown_arrondissement"
)

// warningInfo holds aggregated information about a specific warning kind
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects non-fatal anomalies during conversion and
// outputs consolidated summaries. Safe for concurrent use so records in
// a batch can be converted in parallel.
type WarningAggregator struct {
	mu       sync.Mutex
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example value (the code or
// name that failed to resolve).
func (w *WarningAggregator) Add(kind, example string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.warnings[kind] == nil {
		w.warnings[kind] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[kind]
	info.count++

	// Keep up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, example)
	}
}

// LogAll outputs all collected warnings in consolidated form and resets
// the aggregator for the next document.
func (w *WarningAggregator) LogAll(log *zap.SugaredLogger, jurisdiction string) {
	w.mu.Lock()
	collected := w.warnings
	w.warnings = make(map[string]*warningInfo)
	w.mu.Unlock()

	for kind, info := range collected {
		var description string
		switch kind {
		case WarningUnknownITISCategory:
			description = "ITIS category codes missing from the reference table; event_subtypes omitted for them"
		case WarningUnknownArrondissement:
			description = "jurisdiction names not in the arrondissement gazetteer; areas omitted for them"
		default:
			description = "unknown anomaly"
		}
		log.Warnw("feed anomalies",
			"jurisdiction", jurisdiction,
			"kind", kind,
			"description", description,
			"occurrences", info.count,
			"examples", strings.Join(info.examples, ", "),
		)
	}
}
