package cppdecl

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"bindgen-core/internal/common"
	"bindgen-core/internal/errors"
)

// Visibility is a C++ access specifier.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityProtected
	VisibilityPrivate
)

// String returns the C++ keyword.
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	case VisibilityPrivate:
		return "private"
	default:
		return common.UnknownStr
	}
}

// MarshalYAML writes the visibility by name.
func (v Visibility) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML reads a visibility written by MarshalYAML.
func (v *Visibility) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnum(node, v, []Visibility{VisibilityPublic, VisibilityProtected, VisibilityPrivate}, "visibility")
}

// MethodKind distinguishes special member functions.
type MethodKind int

const (
	MethodRegular MethodKind = iota
	MethodConstructor
	MethodDestructor
)

// String returns a human-readable kind name.
func (k MethodKind) String() string {
	switch k {
	case MethodRegular:
		return "regular"
	case MethodConstructor:
		return "constructor"
	case MethodDestructor:
		return "destructor"
	default:
		return common.UnknownStr
	}
}

// MarshalYAML writes the kind by name.
func (k MethodKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML reads a kind written by MarshalYAML.
func (k *MethodKind) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnum(node, k, []MethodKind{MethodRegular, MethodConstructor, MethodDestructor}, "method kind")
}

// TypeKind distinguishes enum and class type declarations.
type TypeKind int

const (
	TypeKindEnum TypeKind = iota
	TypeKindClass
)

// String returns a human-readable kind name.
func (k TypeKind) String() string {
	switch k {
	case TypeKindEnum:
		return "enum"
	case TypeKindClass:
		return "class"
	default:
		return common.UnknownStr
	}
}

// MarshalYAML writes the kind by name.
func (k TypeKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML reads a kind written by MarshalYAML.
func (k *TypeKind) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnum(node, k, []TypeKind{TypeKindEnum, TypeKindClass}, "type kind")
}

func unmarshalEnum[T fmt.Stringer](node *yaml.Node, dst *T, all []T, what string) error {
	v, ok := common.ParseEnum(node.Value, all)
	if !ok {
		return errors.Newf("line %d: unknown %s %q", node.Line, what, node.Value)
	}

	*dst = v

	return nil
}
