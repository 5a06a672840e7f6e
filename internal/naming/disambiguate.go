package naming

import (
	"slices"
	"strings"

	"bindgen-core/internal/common"
	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/ffi"
)

var (
	// ErrNoUniqueCaption is returned when no strategy separates a group
	// of overloads.
	ErrNoUniqueCaption = errors.New("no caption strategy gives unique names")
	// ErrNameCollision is returned when a final name is already taken by a
	// function of another group.
	ErrNameCollision = errors.New("boundary name collision")
)

// Candidate is one native function for one allocation place, with its
// boundary signature and base name.
type Candidate struct {
	Function  *cppdecl.Function
	Place     ffi.AllocationPlace
	Signature ffi.Signature
	BaseName  string
}

// NewCandidate maps fn and computes its base name.
func NewCandidate(m *ffi.Mapper, fn *cppdecl.Function, place ffi.AllocationPlace, includeFile string) (Candidate, error) {
	base, err := BaseName(fn, place, includeFile)
	if err != nil {
		return Candidate{}, err
	}

	sig, err := m.Signature(fn, place)
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{Function: fn, Place: place, Signature: sig, BaseName: base}, nil
}

// Boundary returns the boundary function of c called name.
func (c Candidate) Boundary(name string) ffi.Function {
	return ffi.Function{Name: name, AllocationPlace: c.Place, Signature: c.Signature}
}

// Disambiguate names every member of a group of candidates that share a
// base name. The names are returned in group order.
func Disambiguate(group []Candidate) ([]string, error) {
	if common.IsEmpty(group) {
		return nil, nil
	}

	if common.IsSingle(group) {
		return []string{group[0].BaseName}, nil
	}

	for _, s := range Strategies() {
		captions, ok := distinctCaptions(s, group)
		if !ok {
			continue
		}

		names := make([]string, len(group))
		for i, c := range group {
			names[i] = withCaption(c.BaseName, captions[i])
		}

		return names, nil
	}

	return nil, noUniqueCaption(group)
}

// extend names the new members of a group whose other members were named
// earlier and keep their names. The first strategy that separates the
// whole group and gives new names not in taken wins.
func extend(named, group []Candidate, taken map[string]string) ([]string, error) {
	all := append(slices.Clone(named), group...)

strategies:
	for _, s := range Strategies() {
		captions, ok := distinctCaptions(s, all)
		if !ok {
			continue
		}

		names := make([]string, len(group))

		for i, c := range group {
			names[i] = withCaption(c.BaseName, captions[len(named)+i])
			if _, used := taken[names[i]]; used {
				continue strategies
			}
		}

		return names, nil
	}

	return nil, noUniqueCaption(all)
}

func distinctCaptions(s Strategy, group []Candidate) ([]string, bool) {
	captions := make([]string, len(group))
	seen := make(map[string]struct{}, len(group))

	for i, c := range group {
		captions[i] = s.Caption(c)
		seen[captions[i]] = struct{}{}
	}

	return captions, len(seen) == len(group)
}

func noUniqueCaption(group []Candidate) error {
	texts := make([]string, len(group))
	for i, c := range group {
		texts[i] = c.Function.ShortText()
	}

	return errors.Wrapf(ErrNoUniqueCaption, "%s: %s", group[0].BaseName, strings.Join(texts, "; "))
}

func withCaption(base, caption string) string {
	if caption == "" {
		return base
	}

	return base + "_" + caption
}

// Result is the outcome of naming one candidate.
type Result struct {
	Name string
	Err  error
}

// Named is a boundary function named by an earlier run.
type Named struct {
	Candidate
	Name string
}

// AssignNames groups candidates by base name in discovery order and
// disambiguates each group. Names in existing are kept: a group sharing a
// base name with existing functions is named around them, and no new name
// reuses an existing one. A failed group fails all its members; a name
// already assigned fails the later candidate with ErrNameCollision.
func AssignNames(cands []Candidate, existing []Named) []Result {
	results := make([]Result, len(cands))

	taken := make(map[string]string, len(existing))
	named := make(map[string][]Candidate)

	for _, n := range existing {
		taken[n.Name] = n.Function.ShortText()

		if n.BaseName != "" {
			named[n.BaseName] = append(named[n.BaseName], n.Candidate)
		}
	}

	var order []string

	groups := make(map[string][]int)
	for i, c := range cands {
		if _, ok := groups[c.BaseName]; !ok {
			order = append(order, c.BaseName)
		}

		groups[c.BaseName] = append(groups[c.BaseName], i)
	}

	for _, base := range order {
		idx := groups[base]

		group := make([]Candidate, len(idx))
		for j, i := range idx {
			group[j] = cands[i]
		}

		var (
			names []string
			err   error
		)

		if prev := named[base]; len(prev) > 0 {
			names, err = extend(prev, group, taken)
		} else {
			names, err = Disambiguate(group)
		}

		if err != nil {
			for _, i := range idx {
				results[i].Err = err
			}

			continue
		}

		for j, i := range idx {
			if prev, ok := taken[names[j]]; ok {
				results[i].Err = errors.Wrapf(ErrNameCollision, "%s already names %s", names[j], prev)

				continue
			}

			taken[names[j]] = cands[i].Function.ShortText()
			results[i].Name = names[j]
		}
	}

	return results
}
