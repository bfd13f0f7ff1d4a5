package standardize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/muni-cli/internal/entity"
	"github.com/sells-group/muni-cli/internal/model"
)

func testRegistry(t *testing.T) *entity.Registry {
	t.Helper()
	r := entity.NewRegistry()
	require.NoError(t, r.Register("Piper Sandler",
		[]string{"Piper Sandler", "PIPER SANDLER", "Piper Sandler & Co."},
		[]string{"pipersandler.com"},
	))
	require.NoError(t, r.Register("Kutak Rock",
		[]string{"Kutak Rock", "Kutak Rock LLP"},
		[]string{"kutakrock.com"},
	))
	require.NoError(t, r.Register("PFM Financial Advisors",
		[]string{"PFM", "PFM Financial Advisors LLC"},
		[]string{"pfm.com"},
	))
	return r
}

func TestStandardize_EmptyLeadManagersFailsClosed(t *testing.T) {
	s := New(testRegistry(t))

	out, ok := s.Standardize(model.RawFields{
		CoManagers: []string{"Piper Sandler"},
		Counsels:   []string{"Kutak Rock"},
	})
	assert.False(t, ok)
	assert.Nil(t, out)

	// All-empty entries count as absent too.
	out, ok = s.Standardize(model.RawFields{
		LeadManagers: []string{"", ""},
		CoManagers:   []string{"Piper Sandler"},
	})
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestStandardize_ResolvesAllSlots(t *testing.T) {
	s := New(testRegistry(t))

	out, ok := s.Standardize(model.RawFields{
		LeadManagers:      []string{"Piper Sandler & Co."},
		CoManagers:        []string{"PIPER SANDLER"},
		MunicipalAdvisors: []string{"https://www.pfm.com/services"},
		Counsels:          []string{"Kutak Rock LLP"},
	})
	require.True(t, ok)
	assert.Equal(t, []string{"Piper Sandler"}, out.LeadManagers)
	assert.Equal(t, []string{"Piper Sandler"}, out.CoManagers)
	assert.Equal(t, []string{"PFM Financial Advisors"}, out.MunicipalAdvisors)
	assert.Equal(t, []string{"Kutak Rock"}, out.Counsels)
	assert.Empty(t, out.Warnings)
}

func TestStandardize_UnknownEntryKeptVerbatimWithWarning(t *testing.T) {
	s := New(testRegistry(t))

	out, ok := s.Standardize(model.RawFields{
		LeadManagers: []string{"Piper Sandler"},
		CoManagers:   []string{"Piper Sandler & Co.", "Mystery Securities LLC"},
	})
	require.True(t, ok)
	assert.Equal(t, []string{"Piper Sandler", "Mystery Securities LLC"}, out.CoManagers)
	assert.Len(t, out.CoManagers, 2) // slot length unchanged
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, SlotCoManagers, out.Warnings[0].Slot)
	assert.Equal(t, "Mystery Securities LLC", out.Warnings[0].Value)
}

func TestStandardize_UnresolvedLeadManagerStillSucceeds(t *testing.T) {
	// The slot must be present and non-empty, not necessarily resolvable.
	s := New(testRegistry(t))

	out, ok := s.Standardize(model.RawFields{
		LeadManagers: []string{"Unknown Lead Partners"},
	})
	require.True(t, ok)
	assert.Equal(t, []string{"Unknown Lead Partners"}, out.LeadManagers)
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, SlotLeadManagers, out.Warnings[0].Slot)
}

func TestStandardize_EmptyEntriesSkipped(t *testing.T) {
	s := New(testRegistry(t))

	out, ok := s.Standardize(model.RawFields{
		LeadManagers: []string{"Piper Sandler", ""},
		Counsels:     []string{"", "Kutak Rock", ""},
	})
	require.True(t, ok)
	assert.Equal(t, []string{"Kutak Rock"}, out.Counsels)
	assert.Empty(t, out.Warnings)
}

func TestStandardize_RawRecordEmbeddedAndUntouched(t *testing.T) {
	s := New(testRegistry(t))

	raw := model.RawFields{
		LeadManagers: []string{"Piper Sandler & Co."},
		CoManagers:   []string{"Mystery Securities LLC"},
		OSType:       "OFFICIAL STATEMENT",
		OSFilePath:   "downloads/os-123.pdf",
	}
	out, ok := s.Standardize(raw)
	require.True(t, ok)

	assert.Equal(t, raw, out.Raw)
	assert.Equal(t, "downloads/os-123.pdf", out.OSFilePath)

	// Mutating the output copy must not reach the caller's slices.
	out.Raw.LeadManagers[0] = "mutated"
	assert.Equal(t, "Piper Sandler & Co.", raw.LeadManagers[0])
}

func TestUnresolvedHint(t *testing.T) {
	assert.Equal(t, "Mystery Sec", UnresolvedHint("https://www.mystery-sec.com/team"))
	assert.Equal(t, "", UnresolvedHint("Mystery Securities LLC"))
}
