// Package override supplies per-source field corrections applied before any
// standardization or extraction, with before/after change tracking.
//
// Scrape sources mislabel documents and reuse inconsistent names for the
// same event type; the override table is the curated cheat sheet that fixes
// known-bad fields at a specific source URL without touching the scraper.
package override

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/muni-cli/internal/model"
)

// Field names accepted in override entries.
const (
	FieldOSType     = "os_type"
	FieldOSFilePath = "os_file_path"
)

// Table maps a stable source identifier (the deal's canonical source URL)
// to field→replacement pairs. Read-only after construction.
type Table struct {
	entries map[string]map[string]string
}

// New builds a Table from an in-memory entry map.
func New(entries map[string]map[string]string) *Table {
	if entries == nil {
		entries = map[string]map[string]string{}
	}
	return &Table{entries: entries}
}

// Load reads a YAML override table: a mapping of source URL to
// field→value pairs.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "override: read table")
	}

	var entries map[string]map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, eris.Wrap(err, "override: unmarshal table")
	}
	for source, fields := range entries {
		for f := range fields {
			if f != FieldOSType && f != FieldOSFilePath {
				return nil, eris.Errorf("override: %s: unknown field %q", source, f)
			}
		}
	}
	return New(entries), nil
}

// Len reports the number of source URLs with overrides.
func (t *Table) Len() int { return len(t.entries) }

// Apply patches the record's overridable fields for the given source. A
// source with no entry returns the record unchanged and a nil change log.
// Every applied field produces a FieldChange recording the prior value (or
// the absent sentinel) and the value written, so the audit trail survives
// into the final output.
func (t *Table) Apply(sourceID string, raw model.RawFields) (model.RawFields, []model.FieldChange) {
	fields, ok := t.entries[sourceID]
	if !ok {
		return raw, nil
	}

	patched := raw.Clone()
	changes := make([]model.FieldChange, 0, len(fields))

	apply := func(name string, slot *string) {
		value, ok := fields[name]
		if !ok {
			return
		}
		changes = append(changes, model.FieldChange{
			Field:    name,
			Previous: *slot,
			Absent:   *slot == "",
			Applied:  value,
		})
		*slot = value
	}
	apply(FieldOSType, &patched.OSType)
	apply(FieldOSFilePath, &patched.OSFilePath)

	return patched, changes
}
