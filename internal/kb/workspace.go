package kb

import (
	"os"
	"path/filepath"

	"bindgen-core/internal/errors"
)

// Workspace is a directory holding one ledger file per crate.
type Workspace struct {
	Dir string
}

// NewWorkspace returns a workspace rooted at dir, creating it if needed.
func NewWorkspace(dir string) (*Workspace, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create workspace %s", dir)
	}

	return &Workspace{Dir: dir}, nil
}

// Path returns the ledger file of crate.
func (w *Workspace) Path(crate string) string {
	return filepath.Join(w.Dir, crate+".yaml")
}

// LoadOrCreate loads the ledger of crate, or returns an empty one when
// none has been saved yet.
func (w *Workspace) LoadOrCreate(crate string) (*Database, error) {
	path := w.Path(crate)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(crate), nil
	}

	db, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	if db.CrateName() != crate {
		return nil, errors.Newf("ledger %s belongs to crate %q", path, db.CrateName())
	}

	return db, nil
}

// LoadDependency loads the ledger of a dependency crate. It must exist;
// dependencies are processed before the crates using them.
func (w *Workspace) LoadDependency(crate string) (*Database, error) {
	db, err := LoadFile(w.Path(crate))
	if err != nil {
		return nil, errors.WithHintf(errors.Wrapf(err, "dependency %q", crate),
			"process crate %q before the crates that depend on it", crate)
	}

	return db, nil
}

// Save writes db to its crate's ledger file.
func (w *Workspace) Save(db *Database) error {
	return WriteFile(db, w.Path(db.CrateName()))
}
