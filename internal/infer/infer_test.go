package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/kb"
)

var parser = kb.ParserSource("qt.h", kb.OriginLocation{IncludeFilePath: "/qt/qt.h", Line: 1, Column: 1})

func class(name string) cppdecl.Item {
	return cppdecl.NewType(cppdecl.TypeData{Name: name, Kind: cppdecl.TypeKindClass, ClassType: &cpptype.ClassType{Name: name}})
}

func method(class, name string, kind cppdecl.MethodKind, args ...cppdecl.Argument) cppdecl.Item {
	return cppdecl.NewFunction(cppdecl.Function{
		Name:       name,
		Member:     &cppdecl.Membership{ClassType: cpptype.ClassType{Name: class}, Kind: kind},
		ReturnType: cpptype.Void(),
		Arguments:  args,
	})
}

func itemsOfKind(db *kb.Database, kind cppdecl.ItemKind) []kb.Item {
	var out []kb.Item

	for _, it := range db.Items() {
		if it.Data.Kind == kind {
			out = append(out, it)
		}
	}

	return out
}

func TestImplicitDestructors(t *testing.T) {
	db := kb.New("qt")
	db.Merge(parser, class("QPoint"))
	db.Merge(parser, class("QObject"))
	db.Merge(parser, method("QObject", "~QObject", cppdecl.MethodDestructor))
	db.Merge(parser, cppdecl.NewType(cppdecl.TypeData{Name: "Qt::GlobalColor", Kind: cppdecl.TypeKindEnum}))
	db.Merge(parser, class("QLocale::Country"))

	assert.Equal(t, 2, ImplicitDestructors(db))
	assert.Equal(t, 0, ImplicitDestructors(db))

	var names []string

	for _, it := range itemsOfKind(db, cppdecl.KindFunction) {
		if it.Source.Kind == kb.SourceImplicitDestructor {
			names = append(names, it.Data.Function.QualifiedName())
			assert.True(t, it.Data.Function.IsDestructor())
		}
	}

	assert.Equal(t, []string{"QPoint::~QPoint", "QLocale::Country::~Country"}, names)
}

func TestImplicitDestructors_ParserWinsLater(t *testing.T) {
	db := kb.New("qt")
	db.Merge(parser, class("QPoint"))
	require.Equal(t, 1, ImplicitDestructors(db))

	dtor := method("QPoint", "~QPoint", cppdecl.MethodDestructor)
	assert.False(t, db.Merge(parser, dtor))

	i, ok := db.Find(dtor)
	require.True(t, ok)

	item, _ := db.Item(i)
	assert.True(t, item.Source.IsParser())
}

func TestTemplateInstantiations(t *testing.T) {
	vectorOfList := cpptype.Class("QVector", cpptype.Class("QList", cpptype.BuiltIn(cpptype.NumericInt)))
	callback := cpptype.FunctionPointerType(cpptype.Void(), []cpptype.Type{cpptype.Class("QSet", cpptype.Class("QString")).Ptr()}, false)

	db := kb.New("qt")
	db.Merge(parser, method("QWidget", "setItems", cppdecl.MethodRegular,
		cppdecl.Argument{Name: "items", ArgumentType: vectorOfList.Const().Ref()},
		cppdecl.Argument{Name: "cb", ArgumentType: callback},
		cppdecl.Argument{Name: "t", ArgumentType: cpptype.Class("QList", cpptype.TemplateParameter(0, 0, "T"))},
	))
	db.Merge(parser, method("QWidget", "items", cppdecl.MethodRegular,
		cppdecl.Argument{Name: "v", ArgumentType: cpptype.Class("QList", cpptype.BuiltIn(cpptype.NumericInt))},
	))

	assert.Equal(t, 3, TemplateInstantiations(db))
	assert.Equal(t, 0, TemplateInstantiations(db))

	var got []string
	for _, it := range itemsOfKind(db, cppdecl.KindTemplateInstantiation) {
		got = append(got, it.Data.String())
	}

	require.Len(t, got, 3)
	assert.Contains(t, got[0], "QList")
	assert.Contains(t, got[1], "QVector")
	assert.Contains(t, got[2], "QSet")
}

func TestNamespaces(t *testing.T) {
	db := kb.New("qt")
	db.Merge(parser, cppdecl.NewType(cppdecl.TypeData{Name: "Qt::AlignmentFlag", Kind: cppdecl.TypeKindEnum}))
	db.Merge(parser, cppdecl.NewFunction(cppdecl.Function{Name: "QtPrivate::Detail::helper", ReturnType: cpptype.Void()}))
	db.Merge(parser, class("QLocale"))
	db.Merge(parser, cppdecl.NewType(cppdecl.TypeData{Name: "QLocale::Country", Kind: cppdecl.TypeKindEnum}))
	db.Merge(parser, cppdecl.NewNamespace("Qt"))

	assert.Equal(t, 2, Namespaces(db))

	var got []string
	for _, it := range itemsOfKind(db, cppdecl.KindNamespace) {
		got = append(got, it.Data.Namespace.Name)
	}

	assert.Equal(t, []string{"Qt", "QtPrivate", "QtPrivate::Detail"}, got)
}

func TestSignalArguments(t *testing.T) {
	sig := method("QAbstractButton", "clicked", cppdecl.MethodRegular,
		cppdecl.Argument{Name: "checked", ArgumentType: cpptype.BuiltIn(cpptype.NumericBool), HasDefaultValue: true})
	sig.Function.Member.IsSignal = true

	toggled := method("QAbstractButton", "toggled", cppdecl.MethodRegular,
		cppdecl.Argument{Name: "checked", ArgumentType: cpptype.BuiltIn(cpptype.NumericBool)})
	toggled.Function.Member.IsSignal = true

	db := kb.New("qt")
	db.Merge(parser, sig)
	db.Merge(parser, toggled)
	db.Merge(parser, method("QAbstractButton", "click", cppdecl.MethodRegular))

	// [bool] and [] from clicked; toggled repeats [bool].
	assert.Equal(t, 2, SignalArguments(db))

	sets := itemsOfKind(db, cppdecl.KindSignalArguments)
	require.Len(t, sets, 2)
	assert.Len(t, sets[0].Data.SignalArguments.Types, 1)
	assert.Empty(t, sets[1].Data.SignalArguments.Types)
}

func TestAll(t *testing.T) {
	db := kb.New("qt")
	db.Merge(parser, class("QPoint"))
	db.Merge(parser, cppdecl.NewType(cppdecl.TypeData{Name: "Qt::Key", Kind: cppdecl.TypeKindEnum}))

	added := 0
	for _, p := range All() {
		assert.NotEmpty(t, p.Name)
		added += p.Run(db)
	}

	assert.Equal(t, 2, added)
	assert.Equal(t, 4, db.Len())
}
