// Package standardize converts raw scraped party slots into canonical-name
// records, preserving the raw input for audit.
package standardize

import (
	"github.com/sells-group/muni-cli/internal/entity"
	"github.com/sells-group/muni-cli/internal/model"
)

// Slot names used in unresolved-entry warnings.
const (
	SlotLeadManagers      = "lead_managers"
	SlotCoManagers        = "co_managers"
	SlotMunicipalAdvisors = "municipal_advisors"
	SlotCounsels          = "counsels"
)

// Resolver is the part of the entity registry standardization needs.
type Resolver interface {
	ResolveName(raw string) (string, bool)
}

// Standardizer resolves each slot entry of a raw record against the
// canonical registry.
type Standardizer struct {
	resolver Resolver
}

// New returns a Standardizer backed by the given resolver.
func New(resolver Resolver) *Standardizer {
	return &Standardizer{resolver: resolver}
}

// Standardize resolves every non-empty entry of every slot. The lead
// managers slot is mandatory: downstream dedup keys on it, so an absent or
// empty slot fails closed with ok=false and no partial output. Entries
// that do not resolve are kept verbatim in place, each paired with a
// Warning naming the slot and the raw value; nothing is dropped. The
// returned record always embeds the untouched raw input.
func (s *Standardizer) Standardize(raw model.RawFields) (*model.StandardizedDeal, bool) {
	if len(nonEmpty(raw.LeadManagers)) == 0 {
		return nil, false
	}

	out := &model.StandardizedDeal{
		OSFilePath: raw.OSFilePath,
		Raw:        raw.Clone(),
	}
	out.LeadManagers = s.resolveSlot(SlotLeadManagers, raw.LeadManagers, &out.Warnings)
	out.CoManagers = s.resolveSlot(SlotCoManagers, raw.CoManagers, &out.Warnings)
	out.MunicipalAdvisors = s.resolveSlot(SlotMunicipalAdvisors, raw.MunicipalAdvisors, &out.Warnings)
	out.Counsels = s.resolveSlot(SlotCounsels, raw.Counsels, &out.Warnings)
	return out, true
}

func (s *Standardizer) resolveSlot(slot string, entries []string, warnings *[]model.Warning) []string {
	out := make([]string, 0, len(entries))
	for _, raw := range entries {
		if raw == "" {
			continue
		}
		canonical, ok := s.resolver.ResolveName(raw)
		if !ok {
			*warnings = append(*warnings, model.Warning{Slot: slot, Value: raw})
			out = append(out, raw)
			continue
		}
		out = append(out, canonical)
	}
	return out
}

func nonEmpty(entries []string) []string {
	out := entries[:0:0]
	for _, e := range entries {
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

// UnresolvedHint suggests a display name for an unresolved URL entry, for
// use in operator-facing logs. Empty when the value is not URL-shaped.
func UnresolvedHint(raw string) string {
	if !entity.IsURL(raw) {
		return ""
	}
	return entity.GuessNameFromDomain(raw)
}
