package kb

import (
	"os"

	"gopkg.in/yaml.v3"

	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/errors"
)

// Discovery is one declaration reported by the parser or an inference
// pass.
type Discovery struct {
	Source Source       `yaml:"source"`
	Item   cppdecl.Item `yaml:"item"`
}

type discoveryFile struct {
	Crate       string      `yaml:"crate,omitempty"`
	Discoveries []Discovery `yaml:"discoveries"`
}

// LoadDiscoveries reads a parser output file. Every item is validated;
// the first malformed entry fails the whole file.
func LoadDiscoveries(path string) ([]Discovery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read discoveries %s", path)
	}

	var df discoveryFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, errors.Wrapf(err, "parse discoveries %s", path)
	}

	for i, d := range df.Discoveries {
		if err := d.Item.Validate(); err != nil {
			return nil, errors.Wrapf(err, "%s: discovery %d", path, i)
		}
	}

	return df.Discoveries, nil
}

// WriteDiscoveries writes discoveries in the format LoadDiscoveries reads.
func WriteDiscoveries(path string, ds []Discovery) error {
	data, err := yaml.Marshal(discoveryFile{Discoveries: ds})
	if err != nil {
		return errors.Wrap(err, "marshal discoveries")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write discoveries %s", path)
	}

	return nil
}

// Ingest merges discoveries in order and returns how many were new.
func (db *Database) Ingest(ds []Discovery) int {
	added := 0

	for _, d := range ds {
		if db.Merge(d.Source, d.Item) {
			added++
		}
	}

	return added
}
