package kb

import (
	"github.com/davecgh/go-spew/spew"

	"bindgen-core/internal/common"
	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/ffi"
	"bindgen-core/internal/match"
)

// Database is the ledger of one crate.
type Database struct {
	crateName      string
	items          []Item
	environments   []CheckerEnv
	nextBoundaryID uint64

	// index maps item fingerprints to positions in items.
	index map[string][]int
}

// New returns an empty ledger for crateName.
func New(crateName string) *Database {
	return &Database{crateName: crateName, index: make(map[string][]int)}
}

// CrateName returns the crate the ledger belongs to.
func (db *Database) CrateName() string {
	return db.crateName
}

// Len returns the number of items.
func (db *Database) Len() int {
	return len(db.items)
}

// Items returns the items in discovery order. Callers must not change
// item data; use the Database methods to mutate the ledger.
func (db *Database) Items() []Item {
	return db.items
}

// Item returns the item at index i.
func (db *Database) Item(i int) (*Item, bool) {
	if i < 0 || i >= len(db.items) {
		return nil, false
	}

	return &db.items[i], true
}

// Environments returns every environment checks ran against, in first
// use order.
func (db *Database) Environments() []CheckerEnv {
	return db.environments
}

// NextBoundaryID returns the identifier the next boundary item gets.
func (db *Database) NextBoundaryID() uint64 {
	return db.nextBoundaryID
}

// Clear drops all items, environments and the boundary counter.
func (db *Database) Clear() {
	db.items = nil
	db.environments = nil
	db.nextBoundaryID = 0
	db.index = make(map[string][]int)
}

// Find returns the index of the item that declares the same thing as data.
func (db *Database) Find(data cppdecl.Item) (int, bool) {
	for _, i := range db.index[data.Fingerprint()] {
		if db.items[i].Data.IsSame(data) {
			return i, true
		}
	}

	return -1, false
}

// Merge adds data discovered by src and reports whether it is new. An
// existing item with the same identity is kept; its provenance is
// replaced only when src is the parser and the existing one is not.
func (db *Database) Merge(src Source, data cppdecl.Item) bool {
	if i, ok := db.Find(data); ok {
		if src.IsParser() && !db.items[i].Source.IsParser() {
			db.items[i].Source = src
		}

		return false
	}

	db.items = append(db.items, Item{Data: data, Source: src})
	db.addToIndex(len(db.items) - 1)

	return true
}

func (db *Database) addToIndex(i int) {
	if db.index == nil {
		db.index = make(map[string][]int)
	}

	fp := db.items[i].Data.Fingerprint()
	db.index[fp] = append(db.index[fp], i)
}

func (db *Database) rebuildIndex() {
	db.index = make(map[string][]int, len(db.items))
	for i := range db.items {
		db.addToIndex(i)
	}
}

// RegisterEnvironment returns the position of env in the environment
// list, appending it on first use.
func (db *Database) RegisterEnvironment(env CheckerEnv) int {
	for i, e := range db.environments {
		if e.Equal(env) {
			return i
		}
	}

	db.environments = append(db.environments, env)

	return len(db.environments) - 1
}

// CheckRef addresses a checkable thing: a declaration, or one of its
// boundary items when HasBoundary is set.
type CheckRef struct {
	Item        int
	BoundaryID  uint64
	HasBoundary bool
}

// DeclarationRef refers to the declaration at index item.
func DeclarationRef(item int) CheckRef {
	return CheckRef{Item: item}
}

// BoundaryRef refers to boundary item id of the declaration at index item.
func BoundaryRef(item int, id uint64) CheckRef {
	return CheckRef{Item: item, BoundaryID: id, HasBoundary: true}
}

// RecordCheck stores the outcome of a check of ref in env. A nil err means
// the check compiled. The environment is registered if it is new.
func (db *Database) RecordCheck(ref CheckRef, env CheckerEnv, err *string) (CheckResult, error) {
	list, lookupErr := db.checks(ref)
	if lookupErr != nil {
		return CheckResult{}, lookupErr
	}

	db.RegisterEnvironment(env)

	return list.Add(env, err), nil
}

func (db *Database) checks(ref CheckRef) (*CheckerInfoList, error) {
	item, ok := db.Item(ref.Item)
	if !ok {
		return nil, errors.AssertionFailedf("check of item %d, ledger has %d items", ref.Item, len(db.items))
	}

	if !ref.HasBoundary {
		return &item.Checks, nil
	}

	b, ok := item.BoundaryItem(ref.BoundaryID)
	if !ok {
		return nil, errors.AssertionFailedf("item %d has no boundary item %d", ref.Item, ref.BoundaryID)
	}

	return &b.Checks, nil
}

// AttachBoundaryItems records the boundary functions generated for the
// item at index and returns their new identifiers. The item is marked as
// generated even when fns is empty.
func (db *Database) AttachBoundaryItems(index int, fns []ffi.Function) ([]uint64, error) {
	item, ok := db.Item(index)
	if !ok {
		return nil, errors.AssertionFailedf("attach to item %d, ledger has %d items", index, len(db.items))
	}

	ids := make([]uint64, len(fns))

	for i, fn := range fns {
		ids[i] = db.nextBoundaryID
		db.nextBoundaryID++

		item.BoundaryItems = append(item.BoundaryItems, BoundaryItem{ID: ids[i], Function: fn})
	}

	item.Generated = true

	return ids, nil
}

// SetWrapperItem links the item at index to its generated wrapper.
func (db *Database) SetWrapperItem(index int, w WrapperItem) error {
	item, ok := db.Item(index)
	if !ok {
		return errors.AssertionFailedf("wrapper for item %d, ledger has %d items", index, len(db.items))
	}

	item.Wrapper = &w

	return nil
}

// Emittable returns the indexes of items that have boundary items which
// all compiled in every env. With no envs, every registered environment
// is required.
func (db *Database) Emittable(envs []CheckerEnv) []int {
	if common.IsEmpty(envs) {
		envs = db.environments
	}

	var out []int

	for i := range db.items {
		item := &db.items[i]
		if len(item.BoundaryItems) == 0 || len(envs) == 0 {
			continue
		}

		ok := true

		for j := range item.BoundaryItems {
			if !item.BoundaryItems[j].Checks.SucceededIn(envs) {
				ok = false
				break
			}
		}

		if ok {
			out = append(out, i)
		}
	}

	return out
}

// TypeOrder returns the class types declared in the ledger ordered so
// that every base class precedes the classes derived from it. Classes
// that are not related keep discovery order.
func (db *Database) TypeOrder() ([]cpptype.ClassType, error) {
	var classes []cpptype.ClassType

	pos := make(map[string]int)

	for _, item := range db.items {
		t := item.Data.Type
		if item.Data.Kind != cppdecl.KindType || t == nil || t.Kind != cppdecl.TypeKindClass {
			continue
		}

		ct := cpptype.ClassType{Name: t.Name}
		if t.ClassType != nil {
			ct = *t.ClassType
		}

		pos[ct.Caption()] = len(classes)
		classes = append(classes, ct)
	}

	deps := make([][]int, len(classes))

	for _, item := range db.items {
		b := item.Data.ClassBase
		if item.Data.Kind != cppdecl.KindClassBase || b == nil {
			continue
		}

		derived, ok1 := pos[b.DerivedClassType.Caption()]
		base, ok2 := pos[b.BaseClassType.Caption()]

		if ok1 && ok2 {
			deps[derived] = append(deps[derived], base)
		}
	}

	order, err := common.TopoSort(len(classes), func(i int) []int { return deps[i] })
	if err != nil {
		return nil, errors.Wrap(err, "class hierarchy")
	}

	out := make([]cpptype.ClassType, len(order))
	for i, j := range order {
		out[i] = classes[j]
	}

	return out, nil
}

// Suggest returns up to n declaration names close to name.
func (db *Database) Suggest(name string, n int) []string {
	names := make([]string, 0, len(db.items))
	for _, item := range db.items {
		if s := item.Data.Name(); s != "" {
			names = append(names, s)
		}
	}

	ranked := match.Rank(name, names, n)

	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.Name
	}

	return out
}

// Lookup returns the indexes of items whose name is exactly name.
func (db *Database) Lookup(name string) []int {
	var out []int

	for i, item := range db.items {
		if item.Data.Name() == name {
			out = append(out, i)
		}
	}

	return out
}

// Dump renders the whole ledger for debugging.
func (db *Database) Dump() string {
	return spew.Sdump(db.ledger())
}
