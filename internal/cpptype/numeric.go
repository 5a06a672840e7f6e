package cpptype

import (
	"gopkg.in/yaml.v3"

	"bindgen-core/internal/common"
	"bindgen-core/internal/errors"
)

//go:generate go tool stringer -type=BuiltInNumeric -trimprefix=Numeric -output=numeric_string.go

// BuiltInNumeric is one of the primitive arithmetic types of the language.
type BuiltInNumeric int

const (
	_ BuiltInNumeric = iota // zero value is invalid

	NumericBool
	NumericCharS // plain char when it is signed on the target
	NumericCharU // plain char when it is unsigned on the target
	NumericSChar
	NumericUChar
	NumericWChar
	NumericChar16
	NumericChar32
	NumericShort
	NumericUShort
	NumericInt
	NumericUInt
	NumericLong
	NumericULong
	NumericLongLong
	NumericULongLong
	NumericInt128
	NumericUInt128
	NumericFloat
	NumericDouble
	NumericLongDouble
)

// AllBuiltInNumerics lists every primitive kind in declaration order.
func AllBuiltInNumerics() []BuiltInNumeric {
	all := make([]BuiltInNumeric, 0, NumericLongDouble)
	for k := NumericBool; k <= NumericLongDouble; k++ {
		all = append(all, k)
	}

	return all
}

// SourceCode returns the canonical C++ spelling of the kind.
func (k BuiltInNumeric) SourceCode() string {
	switch k {
	case NumericBool:
		return "bool"
	case NumericCharS, NumericCharU:
		return "char"
	case NumericSChar:
		return "signed char"
	case NumericUChar:
		return "unsigned char"
	case NumericWChar:
		return "wchar_t"
	case NumericChar16:
		return "char16_t"
	case NumericChar32:
		return "char32_t"
	case NumericShort:
		return "short"
	case NumericUShort:
		return "unsigned short"
	case NumericInt:
		return "int"
	case NumericUInt:
		return "unsigned int"
	case NumericLong:
		return "long"
	case NumericULong:
		return "unsigned long"
	case NumericLongLong:
		return "long long"
	case NumericULongLong:
		return "unsigned long long"
	case NumericInt128:
		return "__int128_t"
	case NumericUInt128:
		return "__uint128_t"
	case NumericFloat:
		return "float"
	case NumericDouble:
		return "double"
	case NumericLongDouble:
		return "long double"
	default:
		return common.UnknownStr
	}
}

// IsValid reports whether k is one of the declared kinds.
func (k BuiltInNumeric) IsValid() bool {
	return k >= NumericBool && k <= NumericLongDouble
}

// IsFloat reports whether k is a floating point kind.
func (k BuiltInNumeric) IsFloat() bool {
	switch k {
	case NumericFloat, NumericDouble, NumericLongDouble:
		return true
	default:
		return false
	}
}

// MarshalYAML writes the kind by name.
func (k BuiltInNumeric) MarshalYAML() (any, error) {
	if !k.IsValid() {
		return nil, errors.Newf("invalid built-in numeric kind %d", int(k))
	}

	return k.String(), nil
}

// UnmarshalYAML reads a kind written by MarshalYAML.
func (k *BuiltInNumeric) UnmarshalYAML(node *yaml.Node) error {
	v, ok := common.ParseEnum(node.Value, AllBuiltInNumerics())
	if !ok {
		return errors.Newf("line %d: unknown built-in numeric kind %q", node.Line, node.Value)
	}

	*k = v

	return nil
}
