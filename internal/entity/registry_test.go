package entity

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register("Piper Sandler",
		[]string{"Piper Sandler", "Piper Sandler & Co.", "PIPER SANDLER"},
		[]string{"pipersandler.com"},
	))
	require.NoError(t, r.Register("HJ Sims",
		[]string{"HJ Sims", "H.J. Sims", "Herbert J. Sims & Co."},
		[]string{"https://www.hjsims.com/"},
	))
	return r
}

func TestRegister_RequiresCanonicalName(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register("", []string{"X"}, nil))
	assert.Error(t, r.Register("   ", []string{"X"}, nil))
}

func TestRegister_TrimsVariants(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("Stifel", []string{"  Stifel Financial  ", ""}, nil))

	got, ok := r.ResolveName("Stifel Financial")
	assert.True(t, ok)
	assert.Equal(t, "Stifel", got)
}

func TestRegister_NormalizesWebsitesAtRegistration(t *testing.T) {
	r := newTestRegistry(t)

	e, ok := r.LookupEntity("hjsims.com")
	require.True(t, ok)
	assert.Equal(t, "HJ Sims", e.CanonicalName)
	assert.Equal(t, []string{"hjsims.com"}, e.Websites)
}

func TestRegister_RejectsCrossEntityVariantCollision(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Register("Piper Jaffray", []string{"Piper Sandler"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	// Failed registration must not have touched the table.
	_, ok := r.LookupEntity("Piper Jaffray")
	assert.False(t, ok)
}

func TestRegister_RejectsCrossEntityDomainCollision(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Register("Sims Capital", []string{"Sims Capital"}, []string{"www.hjsims.com"})
	assert.Error(t, err)
}

func TestRegister_ReplacePurgesStaleIndexEntries(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Register("Piper Sandler",
		[]string{"Piper Sandler"},
		[]string{"pipersandler.com"},
	))

	// The dropped variant must no longer resolve.
	_, ok := r.ResolveName("Piper Sandler & Co.")
	assert.False(t, ok)
	got, ok := r.ResolveName("Piper Sandler")
	assert.True(t, ok)
	assert.Equal(t, "Piper Sandler", got)
}

func TestResolveName_Empty(t *testing.T) {
	r := newTestRegistry(t)
	_, ok := r.ResolveName("")
	assert.False(t, ok)
	_, ok = r.ResolveName("   ")
	assert.False(t, ok)
}

func TestResolveName_TrimsInput(t *testing.T) {
	r := newTestRegistry(t)
	got, ok := r.ResolveName("  PIPER SANDLER  ")
	assert.True(t, ok)
	assert.Equal(t, "Piper Sandler", got)
}

func TestResolveName_ExactMatchOnly(t *testing.T) {
	r := newTestRegistry(t)
	_, ok := r.ResolveName("piper sandler") // case differs, no fuzzy match
	assert.False(t, ok)
}

func TestResolveName_URLDelegatesToWebsite(t *testing.T) {
	r := newTestRegistry(t)

	got, ok := r.ResolveName("https://www.pipersandler.com/municipal")
	assert.True(t, ok)
	assert.Equal(t, "Piper Sandler", got)
}

func TestResolveName_URLNeverHitsNameIndex(t *testing.T) {
	r := NewRegistry()
	// A registered variant that happens to look like a URL must not be
	// reachable through resolve_name.
	require.NoError(t, r.Register("Weird Co", []string{"www.unknownsite.com"}, nil))

	_, ok := r.ResolveName("www.unknownsite.com")
	assert.False(t, ok)

	// Leading whitespace must not let a URL-shaped string slip past the
	// delegation and reach the name index.
	_, ok = r.ResolveName("  www.unknownsite.com")
	assert.False(t, ok)
}

func TestResolveWebsite_Variants(t *testing.T) {
	r := newTestRegistry(t)
	for _, raw := range []string{
		"hjsims.com",
		"www.hjsims.com",
		"http://hjsims.com",
		"https://www.hjsims.com/about/",
		"https://hjsims.com?p=1",
	} {
		got, ok := r.ResolveWebsite(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, "HJ Sims", got, raw)
	}
}

func TestResolveWebsite_NoMatch(t *testing.T) {
	r := newTestRegistry(t)
	_, ok := r.ResolveWebsite("https://unknown.example")
	assert.False(t, ok)
}

func TestLookupEntity_ByNameAndByWebsite(t *testing.T) {
	r := newTestRegistry(t)

	e, ok := r.LookupEntity("H.J. Sims")
	require.True(t, ok)
	assert.Equal(t, "HJ Sims", e.CanonicalName)

	e, ok = r.LookupEntity("www.pipersandler.com")
	require.True(t, ok)
	assert.Equal(t, "Piper Sandler", e.CanonicalName)
}

func TestLookupEntity_ReturnsCopy(t *testing.T) {
	r := newTestRegistry(t)

	e, ok := r.LookupEntity("HJ Sims")
	require.True(t, ok)
	e.NameVariations[0] = "mutated"

	e2, _ := r.LookupEntity("HJ Sims")
	assert.Equal(t, "HJ Sims", e2.NameVariations[0])
}

func TestSeededRegistry_AllVariantsResolve(t *testing.T) {
	r := NewSeededRegistry()
	require.Greater(t, r.Len(), 100)

	for _, canonical := range r.Canonicals() {
		e, ok := r.LookupEntity(canonical)
		require.True(t, ok, canonical)
		for _, v := range e.NameVariations {
			got, ok := r.ResolveName(" " + v + " ")
			if IsURL(v) {
				continue // URL-shaped variants resolve via the domain index only
			}
			assert.True(t, ok, v)
			assert.Equal(t, canonical, got, v)
		}
		for _, d := range e.Websites {
			got, ok := r.ResolveWebsite("https://www." + d + "/path?q=1")
			assert.True(t, ok, d)
			assert.Equal(t, canonical, got, d)
		}
	}
}

func TestSeededRegistry_KnownEntries(t *testing.T) {
	r := NewSeededRegistry()

	got, ok := r.ResolveName("J.P. MORGAN")
	require.True(t, ok)
	assert.Equal(t, "J.P. Morgan", got)

	got, ok = r.ResolveWebsite("https://www.kutakrock.com/people")
	require.True(t, ok)
	assert.Equal(t, "Kutak Rock", got)

	got, ok = r.ResolveName("Cain Brothers")
	require.True(t, ok)
	assert.Equal(t, "KeyBanc Capital Markets", got)
}

func TestLoadFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entities.yaml")
	writeFile(t, path, `
- canonical_name: Example Securities
  name_variations:
    - Example Securities
    - EXAMPLE SECURITIES
  websites:
    - https://www.example-sec.com
`)

	r := NewRegistry()
	n, err := LoadFixture(r, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, ok := r.ResolveWebsite("example-sec.com")
	require.True(t, ok)
	assert.Equal(t, "Example Securities", got)
}

func TestLoadFixture_CollisionAborts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entities.yaml")
	writeFile(t, path, `
- canonical_name: Not Piper
  name_variations: ["Piper Sandler"]
  websites: []
`)

	r := newTestRegistry(t)
	_, err := LoadFixture(r, path)
	assert.Error(t, err)
}

func TestLoadFixture_MissingFile(t *testing.T) {
	r := NewRegistry()
	_, err := LoadFixture(r, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
