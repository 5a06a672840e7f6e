package cpptype

import (
	"fmt"
	"strings"

	"bindgen-core/internal/errors"
)

// ErrUnsupported is returned when a type has no canonical C++ spelling
// in generated code.
var ErrUnsupported = errors.New("unsupported type")

// CaptionStrategy selects how much of a type goes into its caption.
type CaptionStrategy int

const (
	// CaptionShort uses only the base caption.
	CaptionShort CaptionStrategy = iota
	// CaptionFull adds constness and indirection.
	CaptionFull
)

// String returns a human-readable strategy name.
func (s CaptionStrategy) String() string {
	if s == CaptionFull {
		return "full"
	}

	return "short"
}

// SourceCode returns the C++ spelling of the base.
func (b Base) SourceCode() (string, error) {
	switch b.Kind {
	case BaseVoid:
		return "void", nil
	case BaseBuiltInNumeric:
		if !b.Numeric.IsValid() {
			return "", errors.Newf("invalid built-in numeric kind %d", int(b.Numeric))
		}

		return b.Numeric.SourceCode(), nil
	case BaseEnum, BaseSpecificNumeric, BasePointerSizedInteger:
		return b.Name, nil
	case BaseClass:
		if len(b.TemplateArguments) == 0 {
			return b.Name, nil
		}

		args := make([]string, 0, len(b.TemplateArguments))

		for _, a := range b.TemplateArguments {
			code, err := a.SourceCode()
			if err != nil {
				return "", err
			}

			args = append(args, code)
		}

		return fmt.Sprintf("%s< %s >", b.Name, strings.Join(args, ", ")), nil
	case BaseTemplateParameter:
		return "", errors.Wrap(ErrUnsupported, "template parameters cannot be rendered")
	case BaseFunctionPointer:
		return b.functionPointerCode("", false)
	default:
		return "", errors.Newf("invalid type kind %d", int(b.Kind))
	}
}

func (b Base) functionPointerCode(name string, isConst bool) (string, error) {
	if b.Function == nil {
		return "", errors.New("function pointer without signature")
	}

	if b.Function.AllowsVariableArguments {
		return "", errors.Wrap(ErrUnsupported, "function pointers with variadic arguments cannot be rendered")
	}

	ret, err := b.Function.ReturnType.SourceCode()
	if err != nil {
		return "", err
	}

	args := make([]string, 0, len(b.Function.Arguments))

	for _, a := range b.Function.Arguments {
		code, err := a.SourceCode()
		if err != nil {
			return "", err
		}

		args = append(args, code)
	}

	declarator := "*"
	if isConst {
		declarator += " const"
	}

	if name != "" {
		if isConst {
			declarator += " "
		}

		declarator += name
	}

	return fmt.Sprintf("%s (%s)(%s)", ret, declarator, strings.Join(args, ", ")), nil
}

// SourceCode returns the C++ spelling of t, e.g. "const QPoint&".
func (t Type) SourceCode() (string, error) {
	if t.Base.IsFunctionPointer() {
		if t.Indirection != IndirectionNone {
			return "", errors.Wrapf(ErrUnsupported, "function pointer with indirection %s", t.Indirection)
		}

		return t.Base.functionPointerCode("", t.IsConst)
	}

	base, err := t.Base.SourceCode()
	if err != nil {
		return "", err
	}

	prefix := ""
	if t.IsConst {
		prefix = "const "
	}

	return prefix + base + t.Indirection.Suffix(), nil
}

// DeclarationCode returns a declaration of a variable or argument called
// name with type t, e.g. "const QPoint& pos" or "void (*cb)(int)".
func (t Type) DeclarationCode(name string) (string, error) {
	if t.Base.IsFunctionPointer() {
		if t.Indirection != IndirectionNone {
			return "", errors.Wrapf(ErrUnsupported, "function pointer with indirection %s", t.Indirection)
		}

		return t.Base.functionPointerCode(name, t.IsConst)
	}

	code, err := t.SourceCode()
	if err != nil {
		return "", err
	}

	return code + " " + name, nil
}

// Caption returns an identifier-safe label for the base.
// Template parameters and function pointers get fixed placeholder
// captions since they never reach a boundary name through a valid mapping.
func (b Base) Caption() string {
	switch b.Kind {
	case BaseVoid:
		return "void"
	case BaseBuiltInNumeric:
		return strings.ReplaceAll(b.Numeric.SourceCode(), " ", "_")
	case BaseSpecificNumeric, BasePointerSizedInteger:
		return b.Name
	case BaseEnum:
		return scopeCaption(b.Name)
	case BaseClass:
		name := scopeCaption(b.Name)
		if len(b.TemplateArguments) == 0 {
			return name
		}

		parts := make([]string, 0, len(b.TemplateArguments)+1)
		parts = append(parts, name)

		for _, a := range b.TemplateArguments {
			parts = append(parts, a.Caption(CaptionFull))
		}

		return strings.Join(parts, "_")
	case BaseTemplateParameter:
		if b.Name != "" {
			return scopeCaption(b.Name)
		}

		return fmt.Sprintf("T%d_%d", b.NestedLevel, b.Index)
	case BaseFunctionPointer:
		return "func"
	default:
		return "unknown"
	}
}

// Caption returns an identifier-safe label for t.
func (t Type) Caption(strategy CaptionStrategy) string {
	r := t.Base.Caption()
	if strategy == CaptionShort {
		return r
	}

	r += t.Indirection.captionSuffix()
	if t.IsConst {
		r = "const_" + r
	}

	return r
}

// String returns the source spelling, or a placeholder when t cannot be
// rendered. Use it for logs only.
func (t Type) String() string {
	code, err := t.SourceCode()
	if err != nil {
		return "<" + t.Caption(CaptionFull) + ">"
	}

	return code
}

func scopeCaption(name string) string {
	return strings.ReplaceAll(name, "::", "_")
}
