package pipeline

import (
	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/diagnostic"
	"bindgen-core/internal/ffi"
	"bindgen-core/internal/kb"
	"bindgen-core/internal/naming"
)

// GenerateResult counts what Generate attached.
type GenerateResult struct {
	// Items is the number of declarations that got boundary functions.
	Items int
	// Functions is the number of boundary functions created.
	Functions int
	// Failed is the number of declarations left without boundary
	// functions; each has at least one error diagnostic.
	Failed int
}

// Generator maps and names functions of a ledger.
type Generator struct {
	Mapper *ffi.Mapper
	// Places pins allocation places per class name.
	Places map[string]ffi.AllocationPlace
	// Dependencies are read-only ledgers of the crates this one uses.
	// Functions they already declare are not generated again.
	Dependencies []*kb.Database
}

type pending struct {
	item  int
	cands []int
}

// Generate attaches boundary functions to every public function item of
// db that has none yet. A declaration either gets all its variants or
// none; failures become diagnostics and are retried on the next run.
func (g *Generator) Generate(db *kb.Database) (GenerateResult, diagnostic.Diagnostics) {
	var (
		res   GenerateResult
		diags diagnostic.Diagnostics
		cands []naming.Candidate
		items []pending
	)

	for i, item := range db.Items() {
		fn := item.Data.Function
		if item.Data.Kind != cppdecl.KindFunction || item.Generated || !g.wanted(item.Data) {
			continue
		}

		p := pending{item: i}
		failed := false

		for _, place := range g.Mapper.AllocationPlaces(fn, g.Places) {
			c, err := naming.NewCandidate(g.Mapper, fn, place, item.Source.IncludeFile)
			if err != nil {
				diags.AddFailure(err, fn.ShortText(), "")

				failed = true

				break
			}

			p.cands = append(p.cands, len(cands))
			cands = append(cands, c)
		}

		if failed {
			res.Failed++
			continue
		}

		items = append(items, p)
	}

	names := naming.AssignNames(cands, existingNames(db))

	for _, p := range items {
		it, _ := db.Item(p.item)
		text := it.Data.Function.ShortText()

		fns := make([]ffi.Function, 0, len(p.cands))

		for _, ci := range p.cands {
			r := names[ci]
			if r.Err != nil {
				diags.AddFailure(r.Err, text, r.Name)

				fns = nil

				break
			}

			fns = append(fns, cands[ci].Boundary(r.Name))
		}

		if fns == nil {
			res.Failed++
			continue
		}

		if _, err := db.AttachBoundaryItems(p.item, fns); err != nil {
			diags.AddFailure(err, text, "")

			res.Failed++

			continue
		}

		res.Items++
		res.Functions += len(fns)
	}

	return res, diags
}

func (g *Generator) wanted(data cppdecl.Item) bool {
	fn := data.Function
	if fn.Member != nil && fn.Member.Visibility != cppdecl.VisibilityPublic {
		return false
	}

	for _, dep := range g.Dependencies {
		if _, ok := dep.Find(data); ok {
			return false
		}
	}

	return true
}

// existingNames lists the boundary functions already in db with the base
// names their declarations had, so later overloads are named around them.
func existingNames(db *kb.Database) []naming.Named {
	var out []naming.Named

	for _, item := range db.Items() {
		fn := item.Data.Function
		if fn == nil {
			continue
		}

		for _, b := range item.BoundaryItems {
			n := naming.Named{
				Candidate: naming.Candidate{Function: fn, Place: b.Function.AllocationPlace, Signature: b.Function.Signature},
				Name:      b.Function.Name,
			}

			if base, err := naming.BaseName(fn, b.Function.AllocationPlace, item.Source.IncludeFile); err == nil {
				n.BaseName = base
			}

			out = append(out, n)
		}
	}

	return out
}
