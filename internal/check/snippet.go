package check

import (
	"fmt"
	"strings"

	"bindgen-core/internal/common"
	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/ffi"
)

// ErrNotCheckable is returned for items that have no compile check.
var ErrNotCheckable = errors.New("item kind is not checked")

// checkName is the identifier every snippet declares.
const checkName = "bindgen_check"

// Snippet is a self-contained C++ translation unit.
type Snippet struct {
	// Headers are included in order with quoted includes.
	Headers []string
	// System headers are included with angle brackets before Headers.
	System []string
	Body   string
}

// Source renders the translation unit.
func (s Snippet) Source() string {
	var b strings.Builder

	for _, h := range s.System {
		fmt.Fprintf(&b, "#include <%s>\n", h)
	}

	for _, h := range s.Headers {
		fmt.Fprintf(&b, "#include \"%s\"\n", h)
	}

	b.WriteString("\n")
	b.WriteString(s.Body)

	if !strings.HasSuffix(s.Body, "\n") {
		b.WriteString("\n")
	}

	return b.String()
}

// DeclarationSnippet returns a translation unit that compiles only if the
// declaration is usable from headers.
func DeclarationSnippet(item cppdecl.Item, headers []string) (Snippet, error) {
	s := Snippet{Headers: headers}

	var err error

	switch item.Kind {
	case cppdecl.KindType:
		s.Body, err = typeBody(item.Type)
	case cppdecl.KindEnumValue:
		s.Body = enumValueBody(item.EnumValue)
	case cppdecl.KindClassField:
		s.Body, err = fieldBody(item.ClassField)
	case cppdecl.KindFunction:
		s.System, s.Body, err = functionBody(item.Function)
	default:
		return Snippet{}, errors.Wrapf(ErrNotCheckable, "%s", item.Kind)
	}

	if err != nil {
		return Snippet{}, errors.Wrapf(err, "snippet for %s", item.Name())
	}

	return s, nil
}

// BoundarySnippet returns a translation unit declaring fn with C linkage.
func BoundarySnippet(fn ffi.Function, headers []string) (Snippet, error) {
	decl, err := fn.DeclarationCode()
	if err != nil {
		return Snippet{}, errors.Wrapf(err, "snippet for %s", fn.Name)
	}

	return Snippet{
		Headers: headers,
		Body:    fmt.Sprintf("extern \"C\" %s;\n", decl),
	}, nil
}

func typeBody(t *cppdecl.TypeData) (string, error) {
	code, err := t.Type().SourceCode()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("static_assert(sizeof(%s) > 0, %q);\n", code, t.Name), nil
}

func enumValueBody(v *cppdecl.EnumValue) string {
	name := v.EnumName + "::" + v.Name

	return fmt.Sprintf("static_assert(static_cast<long long>(%s) == %dLL, %q);\n", name, v.Value, name)
}

func fieldBody(f *cppdecl.ClassField) (string, error) {
	class, err := f.ClassType.SourceCode()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("auto %s = &%s::%s;\n", checkName, class, f.Name), nil
}

func functionBody(f *cppdecl.Function) ([]string, string, error) {
	args, err := common.MapErr(f.ArgumentTypes(), cpptype.Type.SourceCode)
	if err != nil {
		return nil, "", errors.Wrap(err, "arguments")
	}

	if f.AllowsVariadicArguments {
		args = append(args, "...")
	}

	var class string

	if f.Member != nil {
		class, err = f.Member.ClassType.SourceCode()
		if err != nil {
			return nil, "", errors.Wrap(err, "class")
		}
	}

	switch {
	case f.IsConstructor():
		traits := append([]string{class}, args...)

		return []string{"type_traits"},
			fmt.Sprintf("static_assert(std::is_constructible<%s>::value, %q);\n", strings.Join(traits, ", "), f.ShortText()),
			nil
	case f.IsDestructor():
		return []string{"type_traits"},
			fmt.Sprintf("static_assert(std::is_destructible<%s>::value, %q);\n", class, f.ShortText()),
			nil
	}

	if f.ReturnType.Base.IsFunctionPointer() {
		return nil, "", errors.Wrap(cpptype.ErrUnsupported, "function pointer return type")
	}

	ret, err := f.ReturnType.SourceCode()
	if err != nil {
		return nil, "", errors.Wrap(err, "return type")
	}

	target, err := functionTarget(f, class)
	if err != nil {
		return nil, "", err
	}

	if f.Member != nil && !f.Member.IsStatic {
		qualifier := ""
		if f.Member.IsConst {
			qualifier = " const"
		}

		return nil, fmt.Sprintf("%s (%s::*%s)(%s)%s = &%s;\n",
			ret, class, checkName, strings.Join(args, ", "), qualifier, target), nil
	}

	return nil, fmt.Sprintf("%s (*%s)(%s) = &%s;\n", ret, checkName, strings.Join(args, ", "), target), nil
}

func functionTarget(f *cppdecl.Function, class string) (string, error) {
	name := f.Name
	if f.Member != nil {
		name = class + "::" + f.Name
	}

	if len(f.TemplateArguments) == 0 {
		return name, nil
	}

	targs, err := common.MapErr(f.TemplateArguments, cpptype.Type.SourceCode)
	if err != nil {
		return "", errors.Wrap(err, "template arguments")
	}

	return fmt.Sprintf("%s< %s >", name, strings.Join(targs, ", ")), nil
}
