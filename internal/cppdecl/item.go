package cppdecl

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"bindgen-core/internal/common"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/errors"
)

// ItemKind selects the variant held by an Item.
type ItemKind int

const (
	KindNamespace ItemKind = iota
	KindType
	KindEnumValue
	KindFunction
	KindClassField
	KindClassBase
	KindTemplateInstantiation
	KindSignalArguments
)

func allItemKinds() []ItemKind {
	return []ItemKind{
		KindNamespace,
		KindType,
		KindEnumValue,
		KindFunction,
		KindClassField,
		KindClassBase,
		KindTemplateInstantiation,
		KindSignalArguments,
	}
}

// String returns a human-readable kind name.
func (k ItemKind) String() string {
	switch k {
	case KindNamespace:
		return "namespace"
	case KindType:
		return "type"
	case KindEnumValue:
		return "enum_value"
	case KindFunction:
		return "function"
	case KindClassField:
		return "class_field"
	case KindClassBase:
		return "class_base"
	case KindTemplateInstantiation:
		return "template_instantiation"
	case KindSignalArguments:
		return "signal_arguments"
	default:
		return common.UnknownStr
	}
}

// MarshalYAML writes the kind by name.
func (k ItemKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML reads a kind written by MarshalYAML.
func (k *ItemKind) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnum(node, k, allItemKinds(), "item kind")
}

// Item is one discovered declaration. Exactly the pointer matching Kind
// is set; use the New* constructors to build items.
type Item struct {
	Kind                  ItemKind               `yaml:"kind"`
	Namespace             *Namespace             `yaml:"namespace,omitempty"`
	Type                  *TypeData              `yaml:"type,omitempty"`
	EnumValue             *EnumValue             `yaml:"enum_value,omitempty"`
	Function              *Function              `yaml:"function,omitempty"`
	ClassField            *ClassField            `yaml:"class_field,omitempty"`
	ClassBase             *ClassBase             `yaml:"class_base,omitempty"`
	TemplateInstantiation *TemplateInstantiation `yaml:"template_instantiation,omitempty"`
	SignalArguments       *SignalArguments       `yaml:"signal_arguments,omitempty"`
}

// NewNamespace wraps a namespace declaration.
func NewNamespace(name string) Item {
	return Item{Kind: KindNamespace, Namespace: &Namespace{Name: name}}
}

// NewType wraps a type declaration.
func NewType(t TypeData) Item {
	return Item{Kind: KindType, Type: &t}
}

// NewEnumValue wraps an enumerator.
func NewEnumValue(v EnumValue) Item {
	return Item{Kind: KindEnumValue, EnumValue: &v}
}

// NewFunction wraps a function declaration.
func NewFunction(f Function) Item {
	return Item{Kind: KindFunction, Function: &f}
}

// NewClassField wraps a class field.
func NewClassField(f ClassField) Item {
	return Item{Kind: KindClassField, ClassField: &f}
}

// NewClassBase wraps an inheritance edge.
func NewClassBase(b ClassBase) Item {
	return Item{Kind: KindClassBase, ClassBase: &b}
}

// NewTemplateInstantiation wraps a template instantiation.
func NewTemplateInstantiation(t TemplateInstantiation) Item {
	return Item{Kind: KindTemplateInstantiation, TemplateInstantiation: &t}
}

// NewSignalArguments wraps a signal argument set.
func NewSignalArguments(types []cpptype.Type) Item {
	return Item{Kind: KindSignalArguments, SignalArguments: &SignalArguments{Types: types}}
}

// Validate checks that the payload matching Kind is present and no other
// payload is.
func (it Item) Validate() error {
	set := 0
	for _, present := range []bool{
		it.Namespace != nil, it.Type != nil, it.EnumValue != nil, it.Function != nil,
		it.ClassField != nil, it.ClassBase != nil, it.TemplateInstantiation != nil,
		it.SignalArguments != nil,
	} {
		if present {
			set++
		}
	}

	if set != 1 {
		return errors.Newf("%s item must carry exactly one payload, got %d", it.Kind, set)
	}

	if !it.hasPayload() {
		return errors.Newf("%s item carries a payload of another kind", it.Kind)
	}

	return nil
}

func (it Item) hasPayload() bool {
	switch it.Kind {
	case KindNamespace:
		return it.Namespace != nil
	case KindType:
		return it.Type != nil
	case KindEnumValue:
		return it.EnumValue != nil
	case KindFunction:
		return it.Function != nil
	case KindClassField:
		return it.ClassField != nil
	case KindClassBase:
		return it.ClassBase != nil
	case KindTemplateInstantiation:
		return it.TemplateInstantiation != nil
	case KindSignalArguments:
		return it.SignalArguments != nil
	default:
		return false
	}
}

// IsSame reports whether it and other describe the same declaration.
// Items of different kinds are never the same.
func (it Item) IsSame(other Item) bool {
	if it.Kind != other.Kind || !it.hasPayload() || !other.hasPayload() {
		return false
	}

	switch it.Kind {
	case KindNamespace:
		return it.Namespace.Name == other.Namespace.Name
	case KindType:
		return it.Type.IsSame(other.Type)
	case KindEnumValue:
		return it.EnumValue.IsSame(other.EnumValue)
	case KindFunction:
		return it.Function.IsSame(other.Function)
	case KindClassField:
		return it.ClassField.IsSame(other.ClassField)
	case KindClassBase:
		return it.ClassBase.Equal(other.ClassBase)
	case KindTemplateInstantiation:
		return it.TemplateInstantiation.Equal(other.TemplateInstantiation)
	case KindSignalArguments:
		return it.SignalArguments.Equal(other.SignalArguments)
	default:
		return false
	}
}

// Name returns the declaration's primary name, used for lookup and
// suggestions.
func (it Item) Name() string {
	if !it.hasPayload() {
		return ""
	}

	switch it.Kind {
	case KindNamespace:
		return it.Namespace.Name
	case KindType:
		return it.Type.Name
	case KindEnumValue:
		return it.EnumValue.EnumName + "::" + it.EnumValue.Name
	case KindFunction:
		return it.Function.QualifiedName()
	case KindClassField:
		return it.ClassField.ClassType.Name + "::" + it.ClassField.Name
	case KindClassBase:
		return it.ClassBase.DerivedClassType.Name
	case KindTemplateInstantiation:
		return it.TemplateInstantiation.ClassName
	case KindSignalArguments:
		return "signal(" + captions(it.SignalArguments.Types) + ")"
	default:
		return ""
	}
}

// Fingerprint returns a normalized key shared by every item that IsSame
// could match. Distinct declarations may share a fingerprint (overloads
// do); equal declarations never differ.
func (it Item) Fingerprint() string {
	if !it.hasPayload() {
		return it.Kind.String()
	}

	var key string

	switch it.Kind {
	case KindClassBase:
		key = it.ClassBase.DerivedClassType.Caption() + ">" + it.ClassBase.BaseClassType.Caption()
	case KindTemplateInstantiation:
		key = it.TemplateInstantiation.ClassName + "<" + captions(it.TemplateInstantiation.TemplateArguments)
	case KindFunction:
		key = it.Function.Name
		if c, ok := it.Function.ClassType(); ok {
			key = c.Caption() + "::" + key
		}
	case KindNamespace, KindType, KindEnumValue, KindClassField, KindSignalArguments:
		key = it.Name()
	}

	return it.Kind.String() + "|" + key
}

func captions(types []cpptype.Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.Caption(cpptype.CaptionFull)
	}

	return strings.Join(parts, ",")
}

// InvolvedTypes lists the types the declaration depends on.
func (it Item) InvolvedTypes() []cpptype.Type {
	if !it.hasPayload() {
		return nil
	}

	switch it.Kind {
	case KindType:
		return []cpptype.Type{it.Type.Type()}
	case KindFunction:
		return it.Function.InvolvedTypes()
	case KindClassField:
		return []cpptype.Type{it.ClassField.ClassType.Type(), it.ClassField.FieldType}
	case KindClassBase:
		return []cpptype.Type{it.ClassBase.BaseClassType.Type(), it.ClassBase.DerivedClassType.Type()}
	case KindTemplateInstantiation:
		return it.TemplateInstantiation.TemplateArguments
	case KindSignalArguments:
		return it.SignalArguments.Types
	case KindNamespace, KindEnumValue:
		return nil
	default:
		return nil
	}
}

// String returns a one-line description of the declaration.
func (it Item) String() string {
	if !it.hasPayload() {
		return "<invalid " + it.Kind.String() + ">"
	}

	switch it.Kind {
	case KindNamespace:
		return "namespace " + it.Namespace.Name
	case KindType:
		if it.Type.Kind == TypeKindEnum {
			return "enum " + it.Type.Name
		}

		return "class " + it.Type.Type().String()
	case KindEnumValue:
		v := it.EnumValue
		return fmt.Sprintf("enum %s { %s = %d, ... }", v.EnumName, v.Name, v.Value)
	case KindFunction:
		return it.Function.ShortText()
	case KindClassField:
		f := it.ClassField

		prefix := ""
		if f.IsStatic {
			prefix = "static "
		}

		return fmt.Sprintf("%s%s%s %s::%s", visibilityPrefix(f.Visibility), prefix, f.FieldType, f.ClassType.Type(), f.Name)
	case KindClassBase:
		b := it.ClassBase

		virtual := ""
		if b.IsVirtual {
			virtual = "virtual "
		}

		index := ""
		if b.BaseIndex > 0 {
			index = fmt.Sprintf(" (index: %d)", b.BaseIndex)
		}

		return fmt.Sprintf("class %s : %s%s %s%s",
			b.DerivedClassType.Type(), virtual, b.Visibility, b.BaseClassType.Type(), index)
	case KindTemplateInstantiation:
		t := it.TemplateInstantiation
		return fmt.Sprintf("template instantiation: %s<%s>", t.ClassName, joinTypes(t.TemplateArguments))
	case KindSignalArguments:
		return fmt.Sprintf("signal args (%s)", joinTypes(it.SignalArguments.Types))
	default:
		return "<invalid>"
	}
}

func visibilityPrefix(v Visibility) string {
	if v == VisibilityPublic {
		return ""
	}

	return v.String() + " "
}

func joinTypes(types []cpptype.Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}

	return strings.Join(parts, ", ")
}
