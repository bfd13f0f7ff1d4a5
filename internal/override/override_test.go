package override

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/muni-cli/internal/model"
)

const sourceURL = "https://www.munios.com/munios-notice.aspx?e=602FW"

func testTable() *Table {
	return New(map[string]map[string]string{
		sourceURL: {
			FieldOSType: "COMMERCIAL PAPER OFFERING MEMORANDUM",
		},
	})
}

func TestApply_UnknownSourceReturnsRecordUnchanged(t *testing.T) {
	raw := model.RawFields{
		LeadManagers: []string{"Piper Sandler"},
		OSType:       "OFFICIAL STATEMENT",
	}

	patched, changes := testTable().Apply("https://www.munios.com/other", raw)
	assert.Equal(t, raw, patched)
	assert.Empty(t, changes)
}

func TestApply_ReplacesFieldAndLogsPriorValue(t *testing.T) {
	raw := model.RawFields{OSType: "NOTICE OF SALE"}

	patched, changes := testTable().Apply(sourceURL, raw)
	assert.Equal(t, "COMMERCIAL PAPER OFFERING MEMORANDUM", patched.OSType)
	require.Len(t, changes, 1)
	assert.Equal(t, FieldOSType, changes[0].Field)
	assert.Equal(t, "NOTICE OF SALE", changes[0].Previous)
	assert.False(t, changes[0].Absent)
	assert.Equal(t, "COMMERCIAL PAPER OFFERING MEMORANDUM", changes[0].Applied)
}

func TestApply_AbsentPriorValueMarked(t *testing.T) {
	patched, changes := testTable().Apply(sourceURL, model.RawFields{})
	assert.Equal(t, "COMMERCIAL PAPER OFFERING MEMORANDUM", patched.OSType)
	require.Len(t, changes, 1)
	assert.True(t, changes[0].Absent)
	assert.Equal(t, "", changes[0].Previous)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	raw := model.RawFields{
		LeadManagers: []string{"Piper Sandler"},
		OSType:       "NOTICE OF SALE",
	}

	patched, _ := testTable().Apply(sourceURL, raw)
	assert.Equal(t, "NOTICE OF SALE", raw.OSType)

	patched.LeadManagers[0] = "mutated"
	assert.Equal(t, "Piper Sandler", raw.LeadManagers[0])
}

func TestApply_MultipleFieldsFixedOrder(t *testing.T) {
	table := New(map[string]map[string]string{
		sourceURL: {
			FieldOSFilePath: "downloads/corrected.pdf",
			FieldOSType:     "OFFERING MEMORANDUM",
		},
	})

	_, changes := table.Apply(sourceURL, model.RawFields{OSFilePath: "downloads/old.pdf"})
	require.Len(t, changes, 2)
	assert.Equal(t, FieldOSType, changes[0].Field)
	assert.Equal(t, FieldOSFilePath, changes[1].Field)
	assert.Equal(t, "downloads/old.pdf", changes[1].Previous)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
"https://www.munios.com/munios-notice.aspx?e=602FW":
  os_type: COMMERCIAL PAPER OFFERING MEMORANDUM
`), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	patched, changes := table.Apply(sourceURL, model.RawFields{OSType: "X"})
	assert.Equal(t, "COMMERCIAL PAPER OFFERING MEMORANDUM", patched.OSType)
	assert.Len(t, changes, 1)
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
"https://example.com/deal":
  lead_managers: nope
`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
