package entity

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// LoadFixture reads a YAML array of entities from path and registers each
// into r. Used to extend the built-in seed without redeploying; a collision
// with an already-registered variant or domain aborts the load.
func LoadFixture(r *Registry, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, eris.Wrap(err, "entity: read fixture")
	}

	var entities []Entity
	if err := yaml.Unmarshal(data, &entities); err != nil {
		return 0, eris.Wrap(err, "entity: unmarshal fixture")
	}

	for _, e := range entities {
		if err := r.Register(e.CanonicalName, e.NameVariations, e.Websites); err != nil {
			return 0, eris.Wrapf(err, "entity: fixture entry %q", e.CanonicalName)
		}
	}
	return len(entities), nil
}
