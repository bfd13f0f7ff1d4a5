// Package entity maintains the canonical-organization registry and resolves
// raw scraped identifiers (names or website URLs) to canonical names.
package entity

import (
	"strings"
	"sync"

	"github.com/rotisserie/eris"
)

// Entity is a standardized organization: one canonical name plus every known
// spelling and website domain that should map to it.
type Entity struct {
	CanonicalName  string   `json:"canonical_name" yaml:"canonical_name"`
	NameVariations []string `json:"name_variations" yaml:"name_variations"`
	Websites       []string `json:"websites" yaml:"websites"`
}

// Registry holds the entity table and the two exact-match resolution indexes
// (variant name -> canonical, domain -> canonical). Lookups may run
// concurrently; Register serializes against them.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]*Entity
	byName   map[string]string
	byDomain map[string]string
}

// NewRegistry returns an empty registry. Use NewSeededRegistry for one
// pre-loaded with the known underwriters, advisors and law firms.
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]*Entity),
		byName:   make(map[string]string),
		byDomain: make(map[string]string),
	}
}

// NewSeededRegistry returns a registry populated with the built-in seed
// table. Seed data is assumed collision-free; a conflict there is a
// programming error.
func NewSeededRegistry() *Registry {
	r := NewRegistry()
	for _, e := range seedEntities {
		if err := r.Register(e.CanonicalName, e.NameVariations, e.Websites); err != nil {
			panic(err)
		}
	}
	return r
}

// Register inserts or replaces the entity identified by canonicalName.
// Name variations are trimmed and website URLs domain-normalized before
// indexing. Re-registering a canonical name is replace-and-purge: index
// entries for the previous variant/website sets are removed first, so a
// dropped variant can no longer resolve. A variant or domain already owned
// by a different entity is a conflict and the whole registration is
// rejected.
func (r *Registry) Register(canonicalName string, nameVariations, websiteURLs []string) error {
	canonicalName = strings.TrimSpace(canonicalName)
	if canonicalName == "" {
		return eris.New("entity: canonical name is required")
	}

	variants := make([]string, 0, len(nameVariations))
	seen := make(map[string]struct{}, len(nameVariations))
	for _, v := range nameVariations {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}

	domains := make([]string, 0, len(websiteURLs))
	seenDom := make(map[string]struct{}, len(websiteURLs))
	for _, u := range websiteURLs {
		d := NormalizeDomain(u)
		if d == "" {
			continue
		}
		if _, dup := seenDom[d]; dup {
			continue
		}
		seenDom[d] = struct{}{}
		domains = append(domains, d)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range variants {
		if owner, ok := r.byName[v]; ok && owner != canonicalName {
			return eris.Errorf("entity: name variant %q already registered to %q", v, owner)
		}
	}
	for _, d := range domains {
		if owner, ok := r.byDomain[d]; ok && owner != canonicalName {
			return eris.Errorf("entity: domain %q already registered to %q", d, owner)
		}
	}

	if prev, ok := r.entities[canonicalName]; ok {
		for _, v := range prev.NameVariations {
			delete(r.byName, v)
		}
		for _, d := range prev.Websites {
			delete(r.byDomain, d)
		}
	}

	e := &Entity{
		CanonicalName:  canonicalName,
		NameVariations: variants,
		Websites:       domains,
	}
	r.entities[canonicalName] = e
	for _, v := range variants {
		r.byName[v] = canonicalName
	}
	for _, d := range domains {
		r.byDomain[d] = canonicalName
	}
	return nil
}

// ResolveName maps a raw scraped string to a canonical name. Strings that
// look like URLs are delegated to website resolution and never fall back to
// the name index, even if the literal string is also a registered variant.
// Returns "" and false when nothing matches; that is not an error.
func (r *Registry) ResolveName(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if IsURL(trimmed) {
		return r.ResolveWebsite(trimmed)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	canonical, ok := r.byName[trimmed]
	return canonical, ok
}

// ResolveWebsite maps a raw URL to a canonical name via the domain index.
func (r *Registry) ResolveWebsite(rawURL string) (string, bool) {
	domain := NormalizeDomain(rawURL)
	if domain == "" {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	canonical, ok := r.byDomain[domain]
	return canonical, ok
}

// LookupEntity fetches the full entity for an identifier that may be either
// a website or a name. Website resolution is tried first.
func (r *Registry) LookupEntity(identifier string) (*Entity, bool) {
	canonical, ok := r.ResolveWebsite(identifier)
	if !ok {
		canonical, ok = r.ResolveName(identifier)
	}
	if !ok {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entities[canonical]
	if !ok {
		return nil, false
	}
	out := *e
	out.NameVariations = append([]string(nil), e.NameVariations...)
	out.Websites = append([]string(nil), e.Websites...)
	return &out, true
}

// Len reports the number of registered entities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}

// Canonicals returns every canonical name in the registry, unordered.
func (r *Registry) Canonicals() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entities))
	for name := range r.entities {
		out = append(out, name)
	}
	return out
}
