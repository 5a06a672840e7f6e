package kb

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bindgen-core/internal/errors"
)

// ledgerVersion is written to every ledger file.
const ledgerVersion = "1"

// ledgerFile is the persisted form of a Database.
type ledgerFile struct {
	Version        string       `yaml:"version"`
	CrateName      string       `yaml:"crate_name"`
	Items          []Item       `yaml:"items"`
	Environments   []CheckerEnv `yaml:"environments"`
	NextBoundaryID uint64       `yaml:"next_boundary_id"`
}

func (db *Database) ledger() ledgerFile {
	return ledgerFile{
		Version:        ledgerVersion,
		CrateName:      db.crateName,
		Items:          db.items,
		Environments:   db.environments,
		NextBoundaryID: db.nextBoundaryID,
	}
}

// LoadFile loads a ledger from path.
func LoadFile(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read ledger %s", path)
	}

	db, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "ledger %s", path)
	}

	return db, nil
}

// Parse decodes a ledger and rebuilds its lookup index.
func Parse(data []byte) (*Database, error) {
	var lf ledgerFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, errors.Wrap(err, "parse ledger YAML")
	}

	if lf.Version != "" && lf.Version != ledgerVersion {
		return nil, errors.Newf("unsupported ledger version %q", lf.Version)
	}

	if lf.CrateName == "" {
		return nil, errors.New("ledger has no crate name")
	}

	for i, item := range lf.Items {
		if err := item.Data.Validate(); err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
	}

	db := &Database{
		crateName:      lf.CrateName,
		items:          lf.Items,
		environments:   lf.Environments,
		nextBoundaryID: lf.NextBoundaryID,
	}
	db.rebuildIndex()

	return db, nil
}

// Marshal encodes db as YAML.
func Marshal(db *Database) ([]byte, error) {
	return yaml.Marshal(db.ledger())
}

// WriteFile writes db to path, replacing the file atomically.
func WriteFile(db *Database, path string) error {
	data, err := Marshal(db)
	if err != nil {
		return errors.Wrap(err, "marshal ledger")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "write ledger %s", path)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write ledger %s", path)
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "write ledger %s", path)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "write ledger %s", path)
	}

	return nil
}
