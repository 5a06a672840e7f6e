package cpptype

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestType_Equal(t *testing.T) {
	a := Class("QVector", BuiltIn(NumericInt))
	b := Class("QVector", BuiltIn(NumericInt))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b.Const()))
	assert.False(t, a.Equal(b.Ptr()))
	assert.False(t, a.Equal(Class("QVector", BuiltIn(NumericUInt))))
	assert.False(t, a.Equal(Class("QVector")))

	// Fields foreign to the kind do not take part in equality.
	x := Enum("E")
	y := Enum("E")
	y.Base.Bits = 32
	assert.True(t, x.Equal(y))

	// Nil and empty template argument lists are the same class.
	empty := Class("QPoint")
	empty.Base.TemplateArguments = []Type{}
	assert.True(t, empty.Equal(Class("QPoint")))
}

func TestType_EqualFunctionPointer(t *testing.T) {
	f1 := FunctionPointerType(Void(), []Type{BuiltIn(NumericInt)}, false)
	f2 := FunctionPointerType(Void(), []Type{BuiltIn(NumericInt)}, false)
	f3 := FunctionPointerType(Void(), []Type{BuiltIn(NumericInt)}, true)
	assert.True(t, f1.Equal(f2))
	assert.False(t, f1.Equal(f3))
}

func TestType_CloneIsDeep(t *testing.T) {
	orig := Class("QList", Class("QString"))
	clone := orig.Clone()
	clone.Base.TemplateArguments[0].Base.Name = "QByteArray"

	assert.Equal(t, "QString", orig.Base.TemplateArguments[0].Base.Name)

	fp := FunctionPointerType(Void(), []Type{BuiltIn(NumericInt)}, false)
	fpClone := fp.Clone()
	fpClone.Base.Function.Arguments[0] = BuiltIn(NumericDouble)
	assert.True(t, fp.Base.Function.Arguments[0].Equal(BuiltIn(NumericInt)))
}

func TestPredicates(t *testing.T) {
	assert.True(t, Void().IsVoid())
	assert.False(t, Void().Ptr().IsVoid())
	assert.False(t, Void().Const().IsVoid())
	assert.True(t, Class("QRect").IsClassValue())
	assert.False(t, Class("QRect").Ptr().IsClassValue())
	assert.True(t, TemplateParameter(0, 0, "T").Base.IsTemplateParameter())
	assert.True(t, Class("QList", TemplateParameter(0, 0, "T")).ContainsTemplateParameter())
	assert.False(t, Class("QList", BuiltIn(NumericInt)).ContainsTemplateParameter())
	assert.True(t, FunctionPointerType(TemplateParameter(0, 0, "T"), nil, false).ContainsTemplateParameter())

	ct := Class("QMap", BuiltIn(NumericInt), Class("QString")).Base.ClassType()
	assert.Equal(t, "QMap", ct.Name)
	assert.Len(t, ct.TemplateArguments, 2)
}

func TestType_YAMLRoundTrip(t *testing.T) {
	types := []Type{
		Void(),
		BuiltIn(NumericLongDouble).Const().Ptr(),
		Enum("Qt::AlignmentFlag"),
		SpecificFloat("qreal", 64),
		SpecificInteger("quint16", 16, false),
		PointerSizedInteger("qintptr", true),
		Class("QHash", Class("QString"), BuiltIn(NumericInt)).Ref(),
		TemplateParameter(1, 0, "T"),
		FunctionPointerType(Void(), []Type{Class("QObject").Ptr()}, false),
	}

	for _, typ := range types {
		t.Run(typ.Caption(CaptionFull), func(t *testing.T) {
			data, err := yaml.Marshal(typ)
			require.NoError(t, err)

			var back Type
			require.NoError(t, yaml.Unmarshal(data, &back))
			assert.True(t, typ.Equal(back), "yaml:\n%s\ndecoded:\n%s", data, spew.Sdump(back))
		})
	}
}

func TestType_YAMLNames(t *testing.T) {
	data, err := yaml.Marshal(BuiltIn(NumericUInt).Ptr())
	require.NoError(t, err)
	assert.Contains(t, string(data), "indirection: Ptr")
	assert.Contains(t, string(data), "numeric: UInt")
	assert.Contains(t, string(data), "kind: builtin")

	var bad Type
	err = yaml.Unmarshal([]byte("base:\n  kind: builtin\n  numeric: Huge\n"), &bad)
	assert.Error(t, err)
}
