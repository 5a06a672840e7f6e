package cpptype

import (
	"gopkg.in/yaml.v3"

	"bindgen-core/internal/common"
	"bindgen-core/internal/errors"
)

//go:generate go tool stringer -type=Indirection -trimprefix=Indirection -output=indirection_string.go

// Indirection is the pointer/reference decoration of a type.
type Indirection int

const (
	IndirectionNone      Indirection = iota // T
	IndirectionPtr                          // T*
	IndirectionRef                          // T&
	IndirectionPtrRef                       // T*&
	IndirectionPtrPtr                       // T**
	IndirectionRValueRef                    // T&&
)

func allIndirections() []Indirection {
	return []Indirection{
		IndirectionNone,
		IndirectionPtr,
		IndirectionRef,
		IndirectionPtrRef,
		IndirectionPtrPtr,
		IndirectionRValueRef,
	}
}

// Suffix returns the declarator suffix appended after the base spelling.
func (i Indirection) Suffix() string {
	switch i {
	case IndirectionPtr:
		return "*"
	case IndirectionRef:
		return "&"
	case IndirectionPtrRef:
		return "*&"
	case IndirectionPtrPtr:
		return "**"
	case IndirectionRValueRef:
		return "&&"
	default:
		return ""
	}
}

// captionSuffix is the identifier-safe counterpart of Suffix.
func (i Indirection) captionSuffix() string {
	switch i {
	case IndirectionPtr:
		return "_ptr"
	case IndirectionRef:
		return "_ref"
	case IndirectionPtrRef:
		return "_ptr_ref"
	case IndirectionPtrPtr:
		return "_ptr_ptr"
	case IndirectionRValueRef:
		return "_rvalue_ref"
	default:
		return ""
	}
}

// IsReference reports whether the indirection involves a reference.
func (i Indirection) IsReference() bool {
	return i == IndirectionRef || i == IndirectionPtrRef || i == IndirectionRValueRef
}

// MarshalYAML writes the indirection by name.
func (i Indirection) MarshalYAML() (any, error) {
	return i.String(), nil
}

// UnmarshalYAML reads an indirection written by MarshalYAML.
func (i *Indirection) UnmarshalYAML(node *yaml.Node) error {
	v, ok := common.ParseEnum(node.Value, allIndirections())
	if !ok {
		return errors.Newf("line %d: unknown indirection %q", node.Line, node.Value)
	}

	*i = v

	return nil
}
