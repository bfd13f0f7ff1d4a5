package model

import "time"

// DealStatus represents the processing state of a scraped deal.
type DealStatus string

const (
	DealStatusScraped      DealStatus = "scraped"       // raw fields present, nothing processed
	DealStatusStandardized DealStatus = "standardized"  // party names resolved
	DealStatusFeeExtracted DealStatus = "fee_extracted" // fee extraction attempted
	DealStatusFailed       DealStatus = "failed"
)

// OS document types eligible for fee extraction.
const (
	OSTypeOfficialStatement  = "OFFICIAL STATEMENT"
	OSTypeOfferingMemorandum = "OFFERING MEMORANDUM"
)

// RawFields is the as-scraped value set for one deal. Slots hold ordered
// sequences of strings that are either organization names or website URLs,
// depending on which page section produced them. RawFields is never mutated
// after scrape; it travels with the standardized output for audit.
type RawFields struct {
	LeadManagers      []string `json:"lead_managers"`
	CoManagers        []string `json:"co_managers"`
	MunicipalAdvisors []string `json:"municipal_advisors"`
	Counsels          []string `json:"counsels"`

	OSType     string `json:"os_type,omitempty"`
	OSFilePath string `json:"os_file_path,omitempty"`
}

// Clone returns a deep copy so override application never aliases the
// caller's slices.
func (r RawFields) Clone() RawFields {
	out := r
	out.LeadManagers = append([]string(nil), r.LeadManagers...)
	out.CoManagers = append([]string(nil), r.CoManagers...)
	out.MunicipalAdvisors = append([]string(nil), r.MunicipalAdvisors...)
	out.Counsels = append([]string(nil), r.Counsels...)
	return out
}

// Warning marks a slot entry that could not be resolved to a canonical name.
// The raw value is retained in the output slot; the warning is how the caller
// learns it is unresolved.
type Warning struct {
	Slot  string `json:"slot"`
	Value string `json:"value"`
}

// StandardizedDeal is the output of record standardization: each slot holds
// canonical names where resolution succeeded and the original raw string
// where it did not, in scrape order. Raw embeds the untouched input.
type StandardizedDeal struct {
	LeadManagers      []string `json:"lead_managers"`
	CoManagers        []string `json:"co_managers"`
	MunicipalAdvisors []string `json:"municipal_advisors"`
	Counsels          []string `json:"counsels"`

	OSFilePath string    `json:"os_file_path,omitempty"`
	Warnings   []Warning `json:"warnings,omitempty"`
	Raw        RawFields `json:"raw"`
}

// FieldChange is one before/after entry in an override change log.
// Absent is true when the field had no prior value.
type FieldChange struct {
	Field    string `json:"field"`
	Previous string `json:"previous"`
	Absent   bool   `json:"absent"`
	Applied  string `json:"applied"`
}

// FeeCandidate is one matched fee amount with its provenance: the page it
// was found on and the name of the pattern that matched it.
type FeeCandidate struct {
	Page    int     `json:"page"`
	Pattern string  `json:"pattern"`
	Amount  float64 `json:"amount"`
}

// FeeBreakdown carries every candidate amount matched in the source text.
type FeeBreakdown struct {
	Amounts             []float64 `json:"amounts"`
	AreAmountsIdentical bool      `json:"are_amounts_identical"`
	NeedsReview         bool      `json:"needs_review"`
}

// FeeResult is the reconciled output of fee extraction. Total equals the
// single amount when all candidates agree, otherwise the sum of all
// candidates with NeedsReview set on the breakdown.
type FeeResult struct {
	Total     float64      `json:"total"`
	Breakdown FeeBreakdown `json:"breakdown"`
}

// ProcessResult bundles everything one processing pass writes back to a
// deal. PreviousFee carries the prior extracted total when a deal is
// reprocessed, so history survives the overwrite.
type ProcessResult struct {
	Standardized *StandardizedDeal `json:"standardized,omitempty"`
	Fee          *FeeResult        `json:"fee,omitempty"`
	PreviousFee  *float64          `json:"previous_fee,omitempty"`
	FeeScraped   bool              `json:"fee_scraped"`
	Overrides    []FieldChange     `json:"overrides,omitempty"`
	Status       DealStatus        `json:"status"`
}

// Deal is the persisted record for one scraped listing, keyed by its source
// URL. PageText is the official-statement text segmented by page, supplied
// by the scraping layer.
type Deal struct {
	ID        string    `json:"id"`
	SourceURL string    `json:"source_url"`
	Obligor   string    `json:"obligor,omitempty"`
	Raw       RawFields `json:"raw"`
	PageText  []string  `json:"page_text,omitempty"`

	Standardized *StandardizedDeal `json:"standardized,omitempty"`
	Fee          *FeeResult        `json:"fee,omitempty"`
	PreviousFee  *float64          `json:"previous_fee,omitempty"`
	FeeScraped   bool              `json:"fee_scraped"` // extraction attempted and found candidates
	Overrides    []FieldChange     `json:"overrides,omitempty"`

	Status    DealStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
