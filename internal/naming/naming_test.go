package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/ffi"
)

var (
	intType    = cpptype.BuiltIn(cpptype.NumericInt)
	doubleType = cpptype.BuiltIn(cpptype.NumericDouble)
)

func arg(name string, t cpptype.Type) cppdecl.Argument {
	return cppdecl.Argument{Name: name, ArgumentType: t}
}

func free(name string, ret cpptype.Type, args ...cppdecl.Argument) *cppdecl.Function {
	return &cppdecl.Function{Name: name, ReturnType: ret, Arguments: args}
}

func member(class, name string, ret cpptype.Type, args ...cppdecl.Argument) *cppdecl.Function {
	return &cppdecl.Function{
		Name:       name,
		Member:     &cppdecl.Membership{ClassType: cpptype.ClassType{Name: class}},
		ReturnType: ret,
		Arguments:  args,
	}
}

func constMember(class, name string, ret cpptype.Type, args ...cppdecl.Argument) *cppdecl.Function {
	fn := member(class, name, ret, args...)
	fn.Member.IsConst = true

	return fn
}

func candidate(t *testing.T, fn *cppdecl.Function, place ffi.AllocationPlace, includeFile string) Candidate {
	t.Helper()

	c, err := NewCandidate(ffi.NewMapper(""), fn, place, includeFile)
	require.NoError(t, err)

	return c
}

func TestBaseName(t *testing.T) {
	ctor := member("QPoint", "QPoint", cpptype.Void())
	ctor.Member.Kind = cppdecl.MethodConstructor

	dtor := member("QPoint", "~QPoint", cpptype.Void())
	dtor.Member.Kind = cppdecl.MethodDestructor

	addAssign := member("QPoint", "operator+=", cpptype.Class("QPoint").Ref(), arg("other", cpptype.Class("QPoint").Const().Ref()))
	addAssign.Operator = cppdecl.NewOperator(cppdecl.OperatorAdditionAssignment)

	toInt := constMember("QChar", "operator int", intType)
	toInt.Operator = cppdecl.ConversionTo(intType)

	toString := constMember("QUrl", "operator const QString&", cpptype.Class("QString").Const().Ref())
	toString.Operator = cppdecl.ConversionTo(cpptype.Class("QString").Const().Ref())

	vectorSize := constMember("QVector", "size", intType)
	vectorSize.Member.ClassType = cpptype.ClassType{Name: "QVector", TemplateArguments: []cpptype.Type{intType}}

	tests := []struct {
		name        string
		fn          *cppdecl.Function
		place       ffi.AllocationPlace
		includeFile string
		want        string
	}{
		{"free function", free("add", intType, arg("a", intType), arg("b", intType)), ffi.PlaceNotApplicable, "math.h", "math_G_add"},
		{"free function without extension", free("qVersion", intType), ffi.PlaceNotApplicable, "QtCore", "QtCore_G_qVersion"},
		{"namespaced free function", free("QtMath::qAbs", doubleType), ffi.PlaceNotApplicable, "include/qmath.h", "qmath_G_QtMath_qAbs"},
		{"constructor on stack", ctor, ffi.PlaceStack, "", "QPoint_constructor"},
		{"constructor on heap", ctor, ffi.PlaceHeap, "", "QPoint_new"},
		{"destructor on stack", dtor, ffi.PlaceStack, "", "QPoint_destructor"},
		{"destructor on heap", dtor, ffi.PlaceHeap, "", "QPoint_delete"},
		{"operator", addAssign, ffi.PlaceNotApplicable, "", "QPoint_operator_add_assign"},
		{"conversion operator", toInt, ffi.PlaceNotApplicable, "", "QChar_convert_to_int"},
		{"conversion to reference", toString, ffi.PlaceNotApplicable, "", "QUrl_convert_to_const_QString_ref"},
		{"return value on stack", member("QRect", "center", cpptype.Class("QPoint")), ffi.PlaceStack, "", "QRect_center_to_output"},
		{"return value on heap", member("QRect", "center", cpptype.Class("QPoint")), ffi.PlaceHeap, "", "QRect_center_as_ptr"},
		{"template class member", vectorSize, ffi.PlaceNotApplicable, "", "QVector_int_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BaseName(tt.fn, tt.place, tt.includeFile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseName_NotApplicablePlace(t *testing.T) {
	ctor := member("QPoint", "QPoint", cpptype.Void())
	ctor.Member.Kind = cppdecl.MethodConstructor

	_, err := BaseName(ctor, ffi.PlaceNotApplicable, "")
	require.ErrorIs(t, err, ErrNotApplicablePlace)

	dtor := member("QPoint", "~QPoint", cpptype.Void())
	dtor.Member.Kind = cppdecl.MethodDestructor

	_, err = BaseName(dtor, ffi.PlaceNotApplicable, "")
	require.ErrorIs(t, err, ErrNotApplicablePlace)
}

func TestDisambiguate(t *testing.T) {
	tests := []struct {
		name  string
		fns   []*cppdecl.Function
		place ffi.AllocationPlace
		want  []string
	}{
		{
			name: "single keeps base name",
			fns:  []*cppdecl.Function{member("QString", "clear", cpptype.Void())},
			want: []string{"QString_clear"},
		},
		{
			name: "const only",
			fns: []*cppdecl.Function{
				member("QList", "first", intType.Ref()),
				constMember("QList", "first", intType.Const().Ref()),
			},
			want: []string{"QList_first", "QList_first_const"},
		},
		{
			name: "argument names",
			fns: []*cppdecl.Function{
				member("QWidget", "resize", cpptype.Void()),
				member("QWidget", "resize", cpptype.Void(), arg("size", cpptype.Class("QSize").Const().Ref())),
			},
			want: []string{"QWidget_resize_no_args", "QWidget_resize_size"},
		},
		{
			name: "short argument types",
			fns: []*cppdecl.Function{
				member("QString", "arg", cpptype.Class("QString"), arg("a", intType)),
				member("QString", "arg", cpptype.Class("QString"), arg("a", doubleType)),
			},
			place: ffi.PlaceHeap,
			want:  []string{"QString_arg_as_ptr_int", "QString_arg_as_ptr_double"},
		},
		{
			name: "full argument types",
			fns: []*cppdecl.Function{
				member("QLabel", "setText", cpptype.Void(), arg("text", cpptype.Class("QString").Const().Ref())),
				member("QLabel", "setText", cpptype.Void(), arg("text", cpptype.Class("QString"))),
			},
			want: []string{"QLabel_setText_const_QString_ref", "QLabel_setText_QString"},
		},
		{
			name: "const and arguments",
			fns: []*cppdecl.Function{
				constMember("QMap", "value", intType),
				member("QMap", "value", intType),
				constMember("QMap", "value", intType, arg("key", intType)),
			},
			want: []string{"QMap_value_const_no_args", "QMap_value_no_args", "QMap_value_const_key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := make([]Candidate, len(tt.fns))
			for i, fn := range tt.fns {
				group[i] = candidate(t, fn, tt.place, "")
			}

			got, err := Disambiguate(group)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisambiguate_NoUniqueCaption(t *testing.T) {
	fn := member("QObject", "dump", cpptype.Void(), arg("x", intType))
	group := []Candidate{
		candidate(t, fn, ffi.PlaceNotApplicable, ""),
		candidate(t, fn, ffi.PlaceNotApplicable, ""),
	}

	_, err := Disambiguate(group)
	require.ErrorIs(t, err, ErrNoUniqueCaption)
	assert.Contains(t, err.Error(), "QObject_dump")
}

func TestDisambiguate_Empty(t *testing.T) {
	names, err := Disambiguate(nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStrategies_Order(t *testing.T) {
	var got []string
	for _, s := range Strategies() {
		got = append(got, s.String())
	}

	assert.Equal(t, []string{
		"const_only",
		"arguments_only(name_only)",
		"arguments_only(type_only(short))",
		"arguments_only(type_and_name(short))",
		"arguments_only(type_only(full))",
		"arguments_only(type_and_name(full))",
		"const_and_arguments(name_only)",
		"const_and_arguments(type_only(short))",
		"const_and_arguments(type_and_name(short))",
		"const_and_arguments(type_only(full))",
		"const_and_arguments(type_and_name(full))",
	}, got)
}

func TestStrategy_CaptionSkipsImplicitArguments(t *testing.T) {
	fn := constMember("QRect", "center", cpptype.Class("QPoint"))
	c := candidate(t, fn, ffi.PlaceStack, "")

	require.Len(t, c.Signature.Arguments, 2)

	s := Strategy{Kind: StrategyConstAndArguments, Arguments: ArgumentStrategy{Kind: ArgumentTypeAndName, Type: cpptype.CaptionFull}}
	assert.Equal(t, "const_no_args", s.Caption(c))
}

func TestAssignNames_EndToEnd(t *testing.T) {
	add := free("add", intType, arg("a", intType), arg("b", intType))

	c := candidate(t, add, ffi.PlaceNotApplicable, "math.h")
	for _, a := range c.Signature.Arguments {
		assert.Equal(t, ffi.ConversionNoChange, a.Type.Conversion)
	}

	results := AssignNames([]Candidate{c}, nil)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "math_G_add", results[0].Name)
	assert.Equal(t, "math_G_add", c.Boundary(results[0].Name).Name)
}

func TestAssignNames_StableUnderUnrelatedReordering(t *testing.T) {
	argInt := member("QString", "arg", cpptype.Void(), arg("a", intType))
	argDouble := member("QString", "arg", cpptype.Void(), arg("a", doubleType))
	clear := member("QString", "clear", cpptype.Void())
	size := constMember("QString", "size", intType)

	names := func(fns ...*cppdecl.Function) map[*cppdecl.Function]string {
		cands := make([]Candidate, len(fns))
		for i, fn := range fns {
			cands[i] = candidate(t, fn, ffi.PlaceNotApplicable, "")
		}

		out := make(map[*cppdecl.Function]string)
		for i, r := range AssignNames(cands, nil) {
			require.NoError(t, r.Err)
			out[fns[i]] = r.Name
		}

		return out
	}

	a := names(clear, argInt, size, argDouble)
	b := names(argInt, size, argDouble, clear)
	assert.Equal(t, a, b)
	assert.Equal(t, "QString_arg_int", a[argInt])
	assert.Equal(t, "QString_arg_double", a[argDouble])
}

func TestAssignNames_Collision(t *testing.T) {
	plain := free("f_int", cpptype.Void())
	fInt := free("f", cpptype.Void(), arg("x", intType))
	fDouble := free("f", cpptype.Void(), arg("x", doubleType))

	results := AssignNames([]Candidate{
		candidate(t, plain, ffi.PlaceNotApplicable, "a.h"),
		candidate(t, fInt, ffi.PlaceNotApplicable, "a.h"),
		candidate(t, fDouble, ffi.PlaceNotApplicable, "a.h"),
	}, nil)

	require.NoError(t, results[0].Err)
	assert.Equal(t, "a_G_f_int", results[0].Name)
	require.ErrorIs(t, results[1].Err, ErrNameCollision)
	assert.Empty(t, results[1].Name)
	require.NoError(t, results[2].Err)
	assert.Equal(t, "a_G_f_double", results[2].Name)
}

func TestAssignNames_GroupFailureFailsAllMembers(t *testing.T) {
	fn := free("g", cpptype.Void())
	results := AssignNames([]Candidate{
		candidate(t, fn, ffi.PlaceNotApplicable, "a.h"),
		candidate(t, fn, ffi.PlaceNotApplicable, "a.h"),
		candidate(t, free("h", cpptype.Void()), ffi.PlaceNotApplicable, "a.h"),
	}, nil)

	assert.ErrorIs(t, results[0].Err, ErrNoUniqueCaption)
	assert.ErrorIs(t, results[1].Err, ErrNoUniqueCaption)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, "a_G_h", results[2].Name)
}

func TestAssignNames_LateOverloadKeepsEarlierName(t *testing.T) {
	setInt := member("QPoint", "setX", cpptype.Void(), arg("v", intType))
	setDouble := member("QPoint", "setX", cpptype.Void(), arg("v", doubleType))

	existing := []Named{{Candidate: candidate(t, setInt, ffi.PlaceNotApplicable, "qpoint.h"), Name: "QPoint_setX"}}

	for range 3 {
		results := AssignNames([]Candidate{candidate(t, setDouble, ffi.PlaceNotApplicable, "qpoint.h")}, existing)
		require.Len(t, results, 1)
		require.NoError(t, results[0].Err)
		assert.Equal(t, "QPoint_setX_double", results[0].Name)
	}
}

func TestAssignNames_LateOverloadSkipsTakenNames(t *testing.T) {
	setInt := member("QPoint", "setX", cpptype.Void(), arg("v", intType))
	setXDouble := member("QPoint", "setX_double", cpptype.Void())
	setDouble := member("QPoint", "setX", cpptype.Void(), arg("v", doubleType))

	existing := []Named{
		{Candidate: candidate(t, setInt, ffi.PlaceNotApplicable, ""), Name: "QPoint_setX"},
		{Candidate: candidate(t, setXDouble, ffi.PlaceNotApplicable, ""), Name: "QPoint_setX_double"},
	}

	results := AssignNames([]Candidate{candidate(t, setDouble, ffi.PlaceNotApplicable, "")}, existing)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "QPoint_setX_double_v", results[0].Name)
}

func TestAssignNames_LateOverloadIndistinguishable(t *testing.T) {
	fn := member("QPoint", "reset", cpptype.Void())

	existing := []Named{{Candidate: candidate(t, fn, ffi.PlaceNotApplicable, ""), Name: "QPoint_reset"}}

	results := AssignNames([]Candidate{candidate(t, fn, ffi.PlaceNotApplicable, "")}, existing)
	assert.ErrorIs(t, results[0].Err, ErrNoUniqueCaption)
	assert.Empty(t, results[0].Name)
}

func TestAssignNames_ExistingNameCollision(t *testing.T) {
	fInt := free("f", cpptype.Void(), arg("x", intType))
	fDouble := free("f", cpptype.Void(), arg("x", doubleType))

	existing := []Named{{Candidate: candidate(t, free("f_int", cpptype.Void()), ffi.PlaceNotApplicable, "a.h"), Name: "a_G_f_int"}}

	results := AssignNames([]Candidate{
		candidate(t, fInt, ffi.PlaceNotApplicable, "a.h"),
		candidate(t, fDouble, ffi.PlaceNotApplicable, "a.h"),
	}, existing)

	require.ErrorIs(t, results[0].Err, ErrNameCollision)
	require.NoError(t, results[1].Err)
	assert.Equal(t, "a_G_f_double", results[1].Name)
}
