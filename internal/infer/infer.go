// Package infer synthesizes declarations the parser does not report
// directly. Every pass reads the ledger, collects what is missing, then
// merges it with its own provenance, so parser results always take
// priority.
package infer

import (
	"strings"

	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/kb"
)

// Pass is one inference step. Run returns the number of new items.
type Pass struct {
	Name string
	Run  func(db *kb.Database) int
}

// All returns the passes in the order they should run. Destructors come
// first so their types take part in later passes.
func All() []Pass {
	return []Pass{
		{Name: "implicit_destructors", Run: ImplicitDestructors},
		{Name: "template_instantiations", Run: TemplateInstantiations},
		{Name: "namespaces", Run: Namespaces},
		{Name: "signal_arguments", Run: SignalArguments},
	}
}

func mergeAll(db *kb.Database, kind kb.SourceKind, items []cppdecl.Item) int {
	src := kb.Synthesized(kind)
	added := 0

	for _, it := range items {
		if db.Merge(src, it) {
			added++
		}
	}

	return added
}

// ImplicitDestructors adds a public destructor to every class declared
// without one.
func ImplicitDestructors(db *kb.Database) int {
	var classes []cpptype.ClassType

	hasDestructor := make(map[string]bool)

	for _, item := range db.Items() {
		switch item.Data.Kind {
		case cppdecl.KindType:
			t := item.Data.Type
			if t.Kind != cppdecl.TypeKindClass {
				continue
			}

			ct := cpptype.ClassType{Name: t.Name}
			if t.ClassType != nil {
				ct = *t.ClassType
			}

			classes = append(classes, ct)
		case cppdecl.KindFunction:
			if fn := item.Data.Function; fn.IsDestructor() {
				hasDestructor[fn.Member.ClassType.Caption()] = true
			}
		default:
		}
	}

	var missing []cppdecl.Item

	for _, ct := range classes {
		if hasDestructor[ct.Caption()] {
			continue
		}

		missing = append(missing, cppdecl.NewFunction(cppdecl.Function{
			Name: "~" + unqualified(ct.Name),
			Member: &cppdecl.Membership{
				ClassType:  ct,
				Kind:       cppdecl.MethodDestructor,
				Visibility: cppdecl.VisibilityPublic,
			},
			ReturnType: cpptype.Void(),
		}))
	}

	return mergeAll(db, kb.SourceImplicitDestructor, missing)
}

// TemplateInstantiations records every fully concrete class template
// instance mentioned by a declaration, including instances nested in
// template arguments and function pointer signatures.
func TemplateInstantiations(db *kb.Database) int {
	var found []cppdecl.Item

	for _, item := range db.Items() {
		for _, t := range item.Data.InvolvedTypes() {
			visitClasses(t, func(b cpptype.Base) {
				if len(b.TemplateArguments) == 0 || anyTemplateParameter(b.TemplateArguments) {
					return
				}

				found = append(found, cppdecl.NewTemplateInstantiation(cppdecl.TemplateInstantiation{
					ClassName:         b.Name,
					TemplateArguments: cloneTypes(b.TemplateArguments),
				}))
			})
		}
	}

	return mergeAll(db, kb.SourceTemplateInstantiation, found)
}

func visitClasses(t cpptype.Type, fn func(cpptype.Base)) {
	switch t.Base.Kind {
	case cpptype.BaseClass:
		for _, a := range t.Base.TemplateArguments {
			visitClasses(a, fn)
		}

		fn(t.Base)
	case cpptype.BaseFunctionPointer:
		if f := t.Base.Function; f != nil {
			visitClasses(f.ReturnType, fn)

			for _, a := range f.Arguments {
				visitClasses(a, fn)
			}
		}
	case cpptype.BaseVoid, cpptype.BaseBuiltInNumeric, cpptype.BaseEnum, cpptype.BaseSpecificNumeric,
		cpptype.BasePointerSizedInteger, cpptype.BaseTemplateParameter:
	}
}

func anyTemplateParameter(types []cpptype.Type) bool {
	for _, t := range types {
		if t.ContainsTemplateParameter() {
			return true
		}
	}

	return false
}

func cloneTypes(types []cpptype.Type) []cpptype.Type {
	out := make([]cpptype.Type, len(types))
	for i, t := range types {
		out[i] = t.Clone()
	}

	return out
}

// Namespaces adds every scope prefix of a declared name that is not a
// type itself: "Qt::AlignmentFlag" yields "Qt", "a::b::f" yields "a" and
// "a::b".
func Namespaces(db *kb.Database) int {
	types := make(map[string]bool)

	var names []string

	for _, item := range db.Items() {
		switch item.Data.Kind {
		case cppdecl.KindType:
			types[item.Data.Type.Name] = true
			names = append(names, item.Data.Type.Name)
		case cppdecl.KindFunction:
			if item.Data.Function.Member == nil {
				names = append(names, item.Data.Function.Name)
			}
		case cppdecl.KindNamespace:
			names = append(names, item.Data.Namespace.Name)
		default:
		}
	}

	var found []cppdecl.Item

	for _, name := range names {
		parts := strings.Split(name, "::")
		for i := 1; i < len(parts); i++ {
			prefix := strings.Join(parts[:i], "::")
			if prefix == "" || types[prefix] {
				continue
			}

			found = append(found, cppdecl.NewNamespace(prefix))
		}
	}

	return mergeAll(db, kb.SourceNamespaceInfering, found)
}

// SignalArguments records the argument types of every signal. Trailing
// arguments with default values also yield the shorter lists a connection
// can use.
func SignalArguments(db *kb.Database) int {
	var found []cppdecl.Item

	for _, item := range db.Items() {
		fn := item.Data.Function
		if item.Data.Kind != cppdecl.KindFunction || !fn.IsSignal() {
			continue
		}

		types := fn.ArgumentTypes()
		found = append(found, cppdecl.NewSignalArguments(types))

		for n := len(fn.Arguments) - 1; n >= 0 && fn.Arguments[n].HasDefaultValue; n-- {
			found = append(found, cppdecl.NewSignalArguments(cloneTypes(types[:n])))
		}
	}

	return mergeAll(db, kb.SourceSignalArguments, found)
}

func unqualified(name string) string {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		return name[i+2:]
	}

	return name
}
