package cppdecl

import (
	"bindgen-core/internal/common"
	"bindgen-core/internal/cpptype"
)

// Namespace is a C++ namespace, e.g. "Qt".
type Namespace struct {
	Name string `yaml:"name"`
}

// TypeData declares an enum or a class. ClassType is set for classes.
type TypeData struct {
	Name      string             `yaml:"name"`
	Kind      TypeKind           `yaml:"kind"`
	ClassType *cpptype.ClassType `yaml:"class_type,omitempty"`
	IsMovable bool               `yaml:"is_movable,omitempty"`
	Doc       string             `yaml:"doc,omitempty"`
}

// IsSame compares name and kind, ignoring documentation.
func (t *TypeData) IsSame(other *TypeData) bool {
	if t.Name != other.Name || t.Kind != other.Kind {
		return false
	}

	if t.ClassType == nil || other.ClassType == nil {
		return t.ClassType == other.ClassType
	}

	return t.ClassType.Equal(*other.ClassType)
}

// Type returns the declared type as a by-value type.
func (t *TypeData) Type() cpptype.Type {
	if t.Kind == TypeKindEnum {
		return cpptype.Enum(t.Name)
	}

	if t.ClassType != nil {
		return t.ClassType.Type()
	}

	return cpptype.Class(t.Name)
}

// EnumValue is one enumerator.
type EnumValue struct {
	Name     string `yaml:"name"`
	Value    int64  `yaml:"value"`
	EnumName string `yaml:"enum_name"`
	Doc      string `yaml:"doc,omitempty"`
}

// IsSame compares enum, name and value, ignoring documentation.
func (v *EnumValue) IsSame(other *EnumValue) bool {
	return v.EnumName == other.EnumName && v.Name == other.Name && v.Value == other.Value
}

// ClassField is a data member of a class.
type ClassField struct {
	Name       string            `yaml:"name"`
	FieldType  cpptype.Type      `yaml:"field_type"`
	Visibility Visibility        `yaml:"visibility,omitempty"`
	ClassType  cpptype.ClassType `yaml:"class_type"`
	IsStatic   bool              `yaml:"is_static,omitempty"`
	Doc        string            `yaml:"doc,omitempty"`
}

// IsSame compares everything but documentation.
func (f *ClassField) IsSame(other *ClassField) bool {
	return f.Name == other.Name &&
		f.FieldType.Equal(other.FieldType) &&
		f.Visibility == other.Visibility &&
		f.ClassType.Equal(other.ClassType) &&
		f.IsStatic == other.IsStatic
}

// ClassBase is an inheritance edge. BaseIndex is the position of the base
// in the derived class's base list.
type ClassBase struct {
	BaseClassType    cpptype.ClassType `yaml:"base_class_type"`
	DerivedClassType cpptype.ClassType `yaml:"derived_class_type"`
	BaseIndex        int               `yaml:"base_index,omitempty"`
	IsVirtual        bool              `yaml:"is_virtual,omitempty"`
	Visibility       Visibility        `yaml:"visibility,omitempty"`
}

// Equal is structural equality.
func (b *ClassBase) Equal(other *ClassBase) bool {
	return b.BaseClassType.Equal(other.BaseClassType) &&
		b.DerivedClassType.Equal(other.DerivedClassType) &&
		b.BaseIndex == other.BaseIndex &&
		b.IsVirtual == other.IsVirtual &&
		b.Visibility == other.Visibility
}

// TemplateInstantiation records that a class template is used with
// concrete arguments.
type TemplateInstantiation struct {
	ClassName         string         `yaml:"class_name"`
	TemplateArguments []cpptype.Type `yaml:"template_arguments"`
}

// Equal is structural equality.
func (t *TemplateInstantiation) Equal(other *TemplateInstantiation) bool {
	return t.ClassName == other.ClassName &&
		common.EqualFunc(t.TemplateArguments, other.TemplateArguments, cpptype.Type.Equal)
}

// SignalArguments is the argument type list of a signal.
type SignalArguments struct {
	Types []cpptype.Type `yaml:"types"`
}

// Equal is structural equality.
func (s *SignalArguments) Equal(other *SignalArguments) bool {
	return common.EqualFunc(s.Types, other.Types, cpptype.Type.Equal)
}
