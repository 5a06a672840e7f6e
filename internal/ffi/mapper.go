package ffi

import (
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/errors"
)

// DefaultFlagsClass is the class template that wraps enum bitmasks in Qt.
const DefaultFlagsClass = "QFlags"

// ErrUnsupportedType marks types that cannot cross the boundary.
var ErrUnsupportedType = errors.New("unsupported type")

// Mapper converts native types to boundary types. The zero value is ready
// to use and treats QFlags as the flags wrapper.
type Mapper struct {
	// FlagsClass is the name of the bitmask wrapper class passed as an
	// unsigned integer.
	FlagsClass string
}

// NewMapper returns a mapper that treats flagsClass as the flags wrapper.
// An empty name selects DefaultFlagsClass.
func NewMapper(flagsClass string) *Mapper {
	return &Mapper{FlagsClass: flagsClass}
}

func (m *Mapper) flagsClass() string {
	if m == nil || m.FlagsClass == "" {
		return DefaultFlagsClass
	}

	return m.FlagsClass
}

// IsFlags reports whether t's base is the flags wrapper class.
func (m *Mapper) IsFlags(t cpptype.Type) bool {
	return t.Base.IsClass() && t.Base.Name == m.flagsClass()
}

// Map returns the boundary form of t. isReturn selects return position,
// which only changes the constness of by-value classes.
//
// The result depends on (t, isReturn) only.
func (m *Mapper) Map(t cpptype.Type, isReturn bool) (BoundaryType, error) {
	switch t.Base.Kind {
	case cpptype.BaseTemplateParameter:
		return BoundaryType{}, errors.Wrapf(ErrUnsupportedType, "template parameter %s", t.Caption(cpptype.CaptionShort))
	case cpptype.BaseFunctionPointer:
		if err := checkFunctionPointer(t); err != nil {
			return BoundaryType{}, err
		}

		return BoundaryType{Original: t.Clone(), Boundary: t.Clone(), Conversion: ConversionNoChange}, nil
	case cpptype.BaseVoid, cpptype.BaseBuiltInNumeric, cpptype.BaseEnum,
		cpptype.BaseSpecificNumeric, cpptype.BasePointerSizedInteger, cpptype.BaseClass:
	}

	result := t.Clone()
	conversion := ConversionNoChange

	switch t.Indirection {
	case cpptype.IndirectionNone, cpptype.IndirectionPtr, cpptype.IndirectionPtrPtr:
	case cpptype.IndirectionRef:
		result.Indirection = cpptype.IndirectionPtr
		conversion = ConversionReferenceToPointer
	case cpptype.IndirectionPtrRef, cpptype.IndirectionRValueRef:
		return BoundaryType{}, errors.Wrapf(ErrUnsupportedType, "unsupported level of indirection %s", t.Indirection)
	default:
		return BoundaryType{}, errors.Wrapf(ErrUnsupportedType, "invalid indirection %d", int(t.Indirection))
	}

	if t.Base.IsClass() {
		if m.IsFlags(t) {
			if t.Indirection != cpptype.IndirectionNone {
				return BoundaryType{}, errors.AssertionFailedf(
					"flags type %s must be passed by value, got indirection %s", t, t.Indirection)
			}

			conversion = ConversionQFlagsToUInt
			result.Base = cpptype.BuiltIn(cpptype.NumericUInt).Base
		} else if t.Indirection == cpptype.IndirectionNone {
			result.Indirection = cpptype.IndirectionPtr
			conversion = ConversionValueToPointer
			// A returned value is placement-constructed through this
			// pointer, so it is never const in return position.
			result.IsConst = !isReturn
		}
	}

	return BoundaryType{Original: t.Clone(), Boundary: result, Conversion: conversion}, nil
}

// checkFunctionPointer accepts function pointers whose return and
// argument types are already boundary-safe.
func checkFunctionPointer(t cpptype.Type) error {
	fp := t.Base.Function
	if fp == nil {
		return errors.Wrap(ErrUnsupportedType, "function pointer without signature")
	}

	if fp.AllowsVariableArguments {
		return errors.Wrap(ErrUnsupportedType, "function pointers with variadic arguments are not supported")
	}

	all := make([]cpptype.Type, 0, len(fp.Arguments)+1)
	all = append(all, fp.Arguments...)
	all = append(all, fp.ReturnType)

	for _, arg := range all {
		switch arg.Base.Kind {
		case cpptype.BaseTemplateParameter:
			return errors.Wrap(ErrUnsupportedType, "function pointers containing template parameters are not supported")
		case cpptype.BaseFunctionPointer:
			return errors.Wrap(ErrUnsupportedType, "function pointers containing nested function pointers are not supported")
		case cpptype.BaseVoid, cpptype.BaseBuiltInNumeric, cpptype.BaseEnum,
			cpptype.BaseSpecificNumeric, cpptype.BasePointerSizedInteger, cpptype.BaseClass:
		}

		if arg.Indirection.IsReference() {
			return errors.Wrap(ErrUnsupportedType, "function pointers containing references are not supported")
		}

		if arg.IsClassValue() {
			return errors.Wrap(ErrUnsupportedType, "function pointers containing classes by value are not supported")
		}
	}

	return nil
}
