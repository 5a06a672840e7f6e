package ffi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/errors"
)

func TestMapper_Map(t *testing.T) {
	tests := []struct {
		name       string
		in         cpptype.Type
		isReturn   bool
		want       cpptype.Type
		conversion Conversion
	}{
		{
			name:       "builtin unchanged",
			in:         cpptype.BuiltIn(cpptype.NumericInt),
			want:       cpptype.BuiltIn(cpptype.NumericInt),
			conversion: ConversionNoChange,
		},
		{
			name:       "pointer unchanged",
			in:         cpptype.Class("Widget").Ptr(),
			want:       cpptype.Class("Widget").Ptr(),
			conversion: ConversionNoChange,
		},
		{
			name:       "pointer to pointer unchanged",
			in:         cpptype.BuiltIn(cpptype.NumericCharS).WithIndirection(cpptype.IndirectionPtrPtr),
			want:       cpptype.BuiltIn(cpptype.NumericCharS).WithIndirection(cpptype.IndirectionPtrPtr),
			conversion: ConversionNoChange,
		},
		{
			name:       "reference to class",
			in:         cpptype.Class("Widget").Ref(),
			want:       cpptype.Class("Widget").Ptr(),
			conversion: ConversionReferenceToPointer,
		},
		{
			name:       "const reference keeps constness",
			in:         cpptype.Class("QString").Const().Ref(),
			want:       cpptype.Class("QString").Const().Ptr(),
			conversion: ConversionReferenceToPointer,
		},
		{
			name:       "flags by value",
			in:         cpptype.Class("QFlags", cpptype.Enum("Qt::AlignmentFlag")),
			want:       cpptype.BuiltIn(cpptype.NumericUInt),
			conversion: ConversionQFlagsToUInt,
		},
		{
			name:       "const class value as parameter",
			in:         cpptype.Class("Rect").Const(),
			want:       cpptype.Class("Rect").Const().Ptr(),
			conversion: ConversionValueToPointer,
		},
		{
			name:       "const class value as return",
			in:         cpptype.Class("Rect").Const(),
			isReturn:   true,
			want:       cpptype.Class("Rect").Ptr(),
			conversion: ConversionValueToPointer,
		},
		{
			name:       "non-const class value as parameter becomes const",
			in:         cpptype.Class("Rect"),
			want:       cpptype.Class("Rect").Const().Ptr(),
			conversion: ConversionValueToPointer,
		},
		{
			name:       "function pointer",
			in:         cpptype.FunctionPointerType(cpptype.Void(), []cpptype.Type{cpptype.BuiltIn(cpptype.NumericInt)}, false),
			want:       cpptype.FunctionPointerType(cpptype.Void(), []cpptype.Type{cpptype.BuiltIn(cpptype.NumericInt)}, false),
			conversion: ConversionNoChange,
		},
	}

	var m Mapper

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Map(tt.in, tt.isReturn)
			require.NoError(t, err)
			assert.True(t, got.Original.Equal(tt.in), "original %s", got.Original)
			assert.True(t, got.Boundary.Equal(tt.want), "boundary %s, want %s", got.Boundary, tt.want)
			assert.Equal(t, tt.conversion, got.Conversion)
		})
	}
}

func TestMapper_MapUnsupported(t *testing.T) {
	tests := []struct {
		name string
		in   cpptype.Type
	}{
		{"template parameter", cpptype.TemplateParameter(0, 0, "T")},
		{"rvalue reference", cpptype.Class("QString").WithIndirection(cpptype.IndirectionRValueRef)},
		{"pointer reference", cpptype.Class("QObject").WithIndirection(cpptype.IndirectionPtrRef)},
		{"variadic function pointer", cpptype.FunctionPointerType(cpptype.Void(), nil, true)},
		{
			"function pointer with reference",
			cpptype.FunctionPointerType(cpptype.Void(), []cpptype.Type{cpptype.Class("QString").Ref()}, false),
		},
		{
			"function pointer with class value",
			cpptype.FunctionPointerType(cpptype.Class("QPoint"), nil, false),
		},
		{
			"function pointer with template parameter",
			cpptype.FunctionPointerType(cpptype.Void(), []cpptype.Type{cpptype.TemplateParameter(0, 0, "T")}, false),
		},
		{
			"nested function pointer",
			cpptype.FunctionPointerType(cpptype.Void(), []cpptype.Type{
				cpptype.FunctionPointerType(cpptype.Void(), nil, false),
			}, false),
		},
	}

	m := NewMapper("")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Map(tt.in, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedType)
			assert.False(t, errors.IsInvariantViolation(err))
		})
	}
}

func TestMapper_FlagsWithIndirectionIsInvariantViolation(t *testing.T) {
	m := NewMapper("")

	_, err := m.Map(cpptype.Class("QFlags", cpptype.Enum("E")).Ptr(), false)
	require.Error(t, err)
	assert.True(t, errors.IsInvariantViolation(err))
	assert.NotErrorIs(t, err, ErrUnsupportedType)
}

func TestMapper_CustomFlagsClass(t *testing.T) {
	m := NewMapper("Flags")

	got, err := m.Map(cpptype.Class("Flags", cpptype.Enum("E")), true)
	require.NoError(t, err)
	assert.Equal(t, ConversionQFlagsToUInt, got.Conversion)

	got, err = m.Map(cpptype.Class("QFlags", cpptype.Enum("E")), true)
	require.NoError(t, err)
	assert.Equal(t, ConversionValueToPointer, got.Conversion)
}

func TestMapper_MapIsDeterministic(t *testing.T) {
	in := cpptype.Class("QVector", cpptype.Class("QPointF")).Const().Ref()
	m := NewMapper("")

	first, err := m.Map(in, false)
	require.NoError(t, err)

	for range 10 {
		again, err := m.Map(in, false)
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
	}
}

func TestMapper_MapDoesNotAliasInput(t *testing.T) {
	in := cpptype.Class("QList", cpptype.Class("QString")).Ref()
	m := NewMapper("")

	got, err := m.Map(in, false)
	require.NoError(t, err)

	got.Boundary.Base.TemplateArguments[0].Base.Name = "QByteArray"
	assert.Equal(t, "QString", in.Base.TemplateArguments[0].Base.Name)
}

func TestParseAllocationPlace(t *testing.T) {
	for in, want := range map[string]AllocationPlace{
		"stack":          PlaceStack,
		"Heap":           PlaceHeap,
		"NotApplicable":  PlaceNotApplicable,
		"not_applicable": PlaceNotApplicable,
	} {
		got, err := ParseAllocationPlace(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAllocationPlace("arena")
	require.Error(t, err)
}
