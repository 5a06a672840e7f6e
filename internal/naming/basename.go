package naming

import (
	"path"
	"strings"

	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/ffi"
)

// ErrNotApplicablePlace is returned for constructors and destructors
// named without a stack or heap allocation place.
var ErrNotApplicablePlace = errors.New("allocation place not applicable")

// globalInfix separates the include file caption from a free function name.
const globalInfix = "_G_"

// BaseName returns the symbol name of fn before disambiguation.
// Members are prefixed with their class caption, free functions with
// the caption of includeFile.
func BaseName(fn *cppdecl.Function, place ffi.AllocationPlace, includeFile string) (string, error) {
	var prefix string
	if fn.Member != nil {
		prefix = fn.Member.ClassType.Caption() + "_"
	} else {
		prefix = IncludeCaption(includeFile) + globalInfix
	}

	name, err := memberName(fn, place)
	if err != nil {
		return "", err
	}

	return prefix + name, nil
}

func memberName(fn *cppdecl.Function, place ffi.AllocationPlace) (string, error) {
	switch {
	case fn.IsConstructor():
		return lifetimeName(fn, place, "constructor", "new")
	case fn.IsDestructor():
		return lifetimeName(fn, place, "destructor", "delete")
	case fn.Operator != nil:
		if fn.Operator.IsConversion() {
			if fn.Operator.ConversionType == nil {
				return "", errors.AssertionFailedf("conversion operator %s without target type", fn.Name)
			}

			return placeSuffix("convert_to_"+fn.Operator.ConversionType.Caption(cpptype.CaptionFull), place), nil
		}

		return placeSuffix("operator_"+fn.Operator.Kind.String(), place), nil
	default:
		return placeSuffix(strings.ReplaceAll(fn.Name, "::", "_"), place), nil
	}
}

func lifetimeName(fn *cppdecl.Function, place ffi.AllocationPlace, stack, heap string) (string, error) {
	switch place {
	case ffi.PlaceStack:
		return stack, nil
	case ffi.PlaceHeap:
		return heap, nil
	case ffi.PlaceNotApplicable:
		return "", errors.Wrapf(ErrNotApplicablePlace, "%s", fn.QualifiedName())
	default:
		return "", errors.AssertionFailedf("invalid allocation place %d", int(place))
	}
}

func placeSuffix(name string, place ffi.AllocationPlace) string {
	switch place {
	case ffi.PlaceStack:
		return name + "_to_output"
	case ffi.PlaceHeap:
		return name + "_as_ptr"
	case ffi.PlaceNotApplicable:
		return name
	default:
		return name
	}
}

// IncludeCaption turns an include file into an identifier fragment:
// "math.h" and "include/math.h" become "math", "QtCore" stays as is.
func IncludeCaption(includeFile string) string {
	base := path.Base(strings.ReplaceAll(includeFile, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
