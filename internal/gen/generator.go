package gen

import (
	"bytes"
	"slices"
	"strings"
	"text/template"

	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/ffi"
	"bindgen-core/internal/kb"
	"bindgen-core/internal/naming"
)

// GeneratorConfig holds configuration for header generation.
type GeneratorConfig struct {
	// Envs are the environments every boundary function must have
	// compiled in. Empty means every environment the ledger knows.
	Envs []kb.CheckerEnv
	// GenerateComments adds the native declaration above each prototype.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{GenerateComments: true}
}

// Generator renders the boundary header of a crate.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile is one rendered file.
type GeneratedFile struct {
	// Filename is the name of the file, e.g. "qt_core_boundary.h".
	Filename string
	Content  []byte
	// Functions is the number of prototypes in the file.
	Functions int
}

type templateData struct {
	Crate            string
	Guard            string
	Headers          []string
	Sections         []section
	GenerateComments bool
}

type section struct {
	Title     string
	Functions []prototype
}

type prototype struct {
	Doc         string
	Declaration string
}

// Generate renders the prototypes of every emittable item of db.
// Classes come in inheritance order with bases first, free functions
// last.
func (g *Generator) Generate(db *kb.Database) (*GeneratedFile, error) {
	order, err := db.TypeOrder()
	if err != nil {
		return nil, errors.Wrap(err, "order classes")
	}

	var (
		keys    []string
		headers []string
	)

	groups := make(map[string][]prototype)
	total := 0

	for _, i := range db.Emittable(g.config.Envs) {
		item, _ := db.Item(i)
		if item.Data.Kind != cppdecl.KindFunction {
			continue
		}

		fn := item.Data.Function

		key := ""
		if fn.Member != nil {
			key = fn.Member.ClassType.Caption()
		}

		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}

		for _, b := range item.BoundaryItems {
			decl, err := b.Function.DeclarationCode()
			if err != nil {
				return nil, errors.Wrapf(err, "render %s", b.Function.Name)
			}

			groups[key] = append(groups[key], prototype{Doc: doc(fn, b.Function), Declaration: decl})
			total++
		}

		if h := item.Source.IncludeFile; h != "" && !slices.Contains(headers, h) {
			headers = append(headers, h)
		}
	}

	slices.Sort(headers)

	data := &templateData{
		Crate:            db.CrateName(),
		Guard:            strings.ToUpper(naming.IncludeCaption(db.CrateName())) + "_BOUNDARY_H",
		Headers:          headers,
		Sections:         sections(order, keys, groups),
		GenerateComments: g.config.GenerateComments,
	}

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "execute header template")
	}

	return &GeneratedFile{
		Filename:  db.CrateName() + "_boundary.h",
		Content:   buf.Bytes(),
		Functions: total,
	}, nil
}

// sections orders groups: declared classes in type order, then other
// classes in discovery order, then free functions.
func sections(order []cpptype.ClassType, keys []string, groups map[string][]prototype) []section {
	var out []section

	done := make(map[string]bool)

	add := func(key, title string) {
		if done[key] || len(groups[key]) == 0 {
			return
		}

		done[key] = true
		out = append(out, section{Title: title, Functions: groups[key]})
	}

	for _, ct := range order {
		add(ct.Caption(), "class "+ct.Type().String())
	}

	for _, key := range keys {
		if key != "" {
			add(key, "class "+key)
		}
	}

	add("", "free functions")

	return out
}

func doc(fn *cppdecl.Function, b ffi.Function) string {
	text := fn.ShortText()
	if b.AllocationPlace != ffi.PlaceNotApplicable {
		text += " [" + b.AllocationPlace.String() + "]"
	}

	return text
}

var headerTemplate = template.Must(template.New("header").Parse(`// Code generated by bindgen for crate {{.Crate}}. DO NOT EDIT.

#ifndef {{.Guard}}
#define {{.Guard}}
{{if .Headers}}
{{range .Headers}}#include "{{.}}"
{{end}}{{end}}
extern "C" {
{{range .Sections}}
// {{.Title}}
{{range .Functions}}{{if $.GenerateComments}}
// {{.Doc}}
{{end}}{{.Declaration}};
{{end}}{{end}}
} // extern "C"

#endif // {{.Guard}}
`))
