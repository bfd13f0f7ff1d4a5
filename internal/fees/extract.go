// Package fees locates underwriting/purchaser fee amounts in official
// statement text and reconciles competing matches into one reportable total.
package fees

import (
	"strconv"
	"strings"

	"github.com/sells-group/muni-cli/internal/model"
)

// Policy controls how candidates matched by more than one pattern are
// counted before reconciliation.
type Policy string

const (
	// PolicyHistorical keeps every match, so the same dollar mention
	// matched by two patterns counts twice in a summed total. This is the
	// long-standing behavior and the default.
	PolicyHistorical Policy = "historical"
	// PolicyDedupe collapses identical (page, amount) pairs before
	// reconciliation.
	PolicyDedupe Policy = "dedupe"
)

// Extractor runs the pattern cascade over per-page document text.
type Extractor struct {
	policy Policy
}

// NewExtractor returns an Extractor with the given dedupe policy; an empty
// policy means PolicyHistorical.
func NewExtractor(policy Policy) *Extractor {
	if policy == "" {
		policy = PolicyHistorical
	}
	return &Extractor{policy: policy}
}

// Extract runs all five patterns over every page and reconciles the
// candidate amounts. It returns ok=false when no candidate is found
// anywhere in the document; the caller records that as a failed scrape,
// distinct from "not attempted". Candidates whose digits fail to parse are
// dropped individually and extraction continues.
func (e *Extractor) Extract(pages []string) (*model.FeeResult, bool) {
	candidates := e.Candidates(pages)
	if len(candidates) == 0 {
		return nil, false
	}

	amounts := make([]float64, len(candidates))
	for i, c := range candidates {
		amounts[i] = c.Amount
	}

	identical := true
	for _, a := range amounts[1:] {
		if a != amounts[0] {
			identical = false
			break
		}
	}

	// Identical candidates collapse to the single value; only genuinely
	// differing candidates are summed, and that total needs a human look.
	total := amounts[0]
	if !identical {
		total = 0
		for _, a := range amounts {
			total += a
		}
	}

	return &model.FeeResult{
		Total: total,
		Breakdown: model.FeeBreakdown{
			Amounts:             amounts,
			AreAmountsIdentical: identical,
			NeedsReview:         !identical,
		},
	}, true
}

// Candidates returns every parsed match across all pages and patterns, in
// page-major, pattern order. Under PolicyDedupe, repeat (page, amount)
// pairs are dropped.
func (e *Extractor) Candidates(pages []string) []model.FeeCandidate {
	var out []model.FeeCandidate
	type pageAmount struct {
		page   int
		amount float64
	}
	seen := make(map[pageAmount]struct{})

	for pageNum, text := range pages {
		if text == "" {
			continue
		}
		for _, p := range patterns {
			for _, m := range p.re.FindAllStringSubmatch(text, -1) {
				amt, err := parseAmount(m[1])
				if err != nil {
					continue
				}
				if e.policy == PolicyDedupe {
					key := pageAmount{pageNum, amt}
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
				}
				out = append(out, model.FeeCandidate{Page: pageNum, Pattern: p.name, Amount: amt})
			}
		}
	}
	return out
}

func parseAmount(digits string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(digits, ",", ""), 64)
}
