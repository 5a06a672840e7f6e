package kb

import (
	"bindgen-core/internal/common"
	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/ffi"
)

// BoundaryItem is a generated boundary function with its own checks.
// WrapperSymbol is set once the emitter has produced a wrapper for it.
type BoundaryItem struct {
	ID            uint64          `yaml:"id"`
	Function      ffi.Function    `yaml:"function"`
	Checks        CheckerInfoList `yaml:"checks,omitempty"`
	WrapperSymbol string          `yaml:"wrapper_symbol,omitempty"`
}

// WrapperItem links a declaration to its generated wrapper.
type WrapperItem struct {
	Path       string `yaml:"path"`
	NestedPath string `yaml:"nested_path,omitempty"`
}

// Item is one declaration in the ledger.
//
// Generated is set once boundary generation ran for the item, even if it
// produced no boundary items.
type Item struct {
	Data          cppdecl.Item    `yaml:"data"`
	Source        Source          `yaml:"source"`
	Checks        CheckerInfoList `yaml:"checks,omitempty"`
	Generated     bool            `yaml:"generated,omitempty"`
	BoundaryItems []BoundaryItem  `yaml:"boundary_items,omitempty"`
	Wrapper       *WrapperItem    `yaml:"wrapper,omitempty"`
}

// State is the lifecycle stage of an item.
type State int

const (
	StateDiscovered State = iota
	StateChecked
	StatePromoted
	StateWrapped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateDiscovered:
		return "discovered"
	case StateChecked:
		return "checked"
	case StatePromoted:
		return "promoted"
	case StateWrapped:
		return "wrapped"
	default:
		return common.UnknownStr
	}
}

// State derives the lifecycle stage from the item's contents.
func (it *Item) State() State {
	switch {
	case it.Wrapper != nil:
		return StateWrapped
	case len(it.BoundaryItems) > 0:
		return StatePromoted
	case len(it.Checks.Items) > 0:
		return StateChecked
	default:
		return StateDiscovered
	}
}

// BoundaryItem returns the boundary item with the given id.
func (it *Item) BoundaryItem(id uint64) (*BoundaryItem, bool) {
	for i := range it.BoundaryItems {
		if it.BoundaryItems[i].ID == id {
			return &it.BoundaryItems[i], true
		}
	}

	return nil, false
}
