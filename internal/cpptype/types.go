package cpptype

import (
	"gopkg.in/yaml.v3"

	"bindgen-core/internal/common"
	"bindgen-core/internal/errors"
)

// BaseKind selects which variant a Base holds.
type BaseKind int

const (
	BaseVoid                BaseKind = iota // void
	BaseBuiltInNumeric                      // int, double, ...
	BaseEnum                                // enum type
	BaseSpecificNumeric                     // fixed-size typedef such as qint8
	BasePointerSizedInteger                 // qintptr, size_t, ...
	BaseClass                               // class or struct, possibly a template instance
	BaseTemplateParameter                   // unresolved template parameter
	BaseFunctionPointer                     // pointer to a free function
)

func allBaseKinds() []BaseKind {
	return []BaseKind{
		BaseVoid,
		BaseBuiltInNumeric,
		BaseEnum,
		BaseSpecificNumeric,
		BasePointerSizedInteger,
		BaseClass,
		BaseTemplateParameter,
		BaseFunctionPointer,
	}
}

// String returns a human-readable representation of the BaseKind.
func (k BaseKind) String() string {
	switch k {
	case BaseVoid:
		return "void"
	case BaseBuiltInNumeric:
		return "builtin"
	case BaseEnum:
		return "enum"
	case BaseSpecificNumeric:
		return "specific_numeric"
	case BasePointerSizedInteger:
		return "pointer_sized_integer"
	case BaseClass:
		return "class"
	case BaseTemplateParameter:
		return "template_parameter"
	case BaseFunctionPointer:
		return "function_pointer"
	default:
		return common.UnknownStr
	}
}

// MarshalYAML writes the kind by name.
func (k BaseKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML reads a kind written by MarshalYAML.
func (k *BaseKind) UnmarshalYAML(node *yaml.Node) error {
	v, ok := common.ParseEnum(node.Value, allBaseKinds())
	if !ok {
		return errors.Newf("line %d: unknown type kind %q", node.Line, node.Value)
	}

	*k = v

	return nil
}

// Base is the undecorated part of a type. Only the fields documented for
// Kind are meaningful; the rest stay at their zero value.
type Base struct {
	Kind BaseKind `yaml:"kind"`

	// Numeric is set for BaseBuiltInNumeric.
	Numeric BuiltInNumeric `yaml:"numeric,omitempty"`

	// Name is set for every kind except void, built-in numerics and
	// function pointers.
	Name string `yaml:"name,omitempty"`

	// Bits and IsFloat describe a BaseSpecificNumeric.
	Bits    int  `yaml:"bits,omitempty"`
	IsFloat bool `yaml:"is_float,omitempty"`
	// IsSigned is set for signed BaseSpecificNumeric integers and
	// BasePointerSizedInteger.
	IsSigned bool `yaml:"is_signed,omitempty"`

	// TemplateArguments is non-empty for a class template instance.
	TemplateArguments []Type `yaml:"template_arguments,omitempty"`

	// NestedLevel and Index locate a BaseTemplateParameter.
	NestedLevel int `yaml:"nested_level,omitempty"`
	Index       int `yaml:"index,omitempty"`

	// Function is set for BaseFunctionPointer.
	Function *FunctionPointer `yaml:"function,omitempty"`
}

// FunctionPointer is the signature of a pointed-to function.
type FunctionPointer struct {
	ReturnType              Type   `yaml:"return_type"`
	Arguments               []Type `yaml:"arguments,omitempty"`
	AllowsVariableArguments bool   `yaml:"allows_variable_arguments,omitempty"`
}

// Type is a base decorated with constness and indirection.
type Type struct {
	IsConst     bool        `yaml:"is_const,omitempty"`
	Indirection Indirection `yaml:"indirection,omitempty"`
	Base        Base        `yaml:"base"`
}

// ClassType names a class, with template arguments for instances.
type ClassType struct {
	Name              string `yaml:"name"`
	TemplateArguments []Type `yaml:"template_arguments,omitempty"`
}

// Void returns the plain void type.
func Void() Type {
	return Type{Base: Base{Kind: BaseVoid}}
}

// BuiltIn returns a by-value built-in numeric type.
func BuiltIn(k BuiltInNumeric) Type {
	return Type{Base: Base{Kind: BaseBuiltInNumeric, Numeric: k}}
}

// Enum returns a by-value enum type.
func Enum(name string) Type {
	return Type{Base: Base{Kind: BaseEnum, Name: name}}
}

// SpecificInteger returns a fixed-size integer typedef.
func SpecificInteger(name string, bits int, signed bool) Type {
	return Type{Base: Base{Kind: BaseSpecificNumeric, Name: name, Bits: bits, IsSigned: signed}}
}

// SpecificFloat returns a fixed-size floating point typedef.
func SpecificFloat(name string, bits int) Type {
	return Type{Base: Base{Kind: BaseSpecificNumeric, Name: name, Bits: bits, IsFloat: true}}
}

// PointerSizedInteger returns an integer typedef as wide as a pointer.
func PointerSizedInteger(name string, signed bool) Type {
	return Type{Base: Base{Kind: BasePointerSizedInteger, Name: name, IsSigned: signed}}
}

// Class returns a by-value class type.
func Class(name string, templateArguments ...Type) Type {
	return ClassType{Name: name, TemplateArguments: templateArguments}.Type()
}

// TemplateParameter returns an unresolved template parameter.
func TemplateParameter(nestedLevel, index int, name string) Type {
	return Type{Base: Base{Kind: BaseTemplateParameter, NestedLevel: nestedLevel, Index: index, Name: name}}
}

// FunctionPointerType returns a function pointer type.
func FunctionPointerType(returnType Type, arguments []Type, variadic bool) Type {
	return Type{Base: Base{
		Kind: BaseFunctionPointer,
		Function: &FunctionPointer{
			ReturnType:              returnType,
			Arguments:               arguments,
			AllowsVariableArguments: variadic,
		},
	}}
}

// Type returns the class as a by-value type.
func (c ClassType) Type() Type {
	return Type{Base: Base{Kind: BaseClass, Name: c.Name, TemplateArguments: c.TemplateArguments}}
}

// Equal reports structural equality.
func (c ClassType) Equal(o ClassType) bool {
	return c.Name == o.Name && common.EqualFunc(c.TemplateArguments, o.TemplateArguments, Type.Equal)
}

// Caption returns the class caption, e.g. "QVector_int".
func (c ClassType) Caption() string {
	return c.Type().Base.Caption()
}

// SourceCode returns the class spelling, e.g. "QVector< int >".
func (c ClassType) SourceCode() (string, error) {
	return c.Type().Base.SourceCode()
}

// WithIndirection returns a copy of t with the given indirection.
func (t Type) WithIndirection(i Indirection) Type {
	t.Indirection = i
	return t
}

// Ptr returns a copy of t with pointer indirection.
func (t Type) Ptr() Type {
	return t.WithIndirection(IndirectionPtr)
}

// Ref returns a copy of t with reference indirection.
func (t Type) Ref() Type {
	return t.WithIndirection(IndirectionRef)
}

// Const returns a const-qualified copy of t.
func (t Type) Const() Type {
	t.IsConst = true
	return t
}

// Clone returns a deep copy of t.
func (t Type) Clone() Type {
	t.Base = t.Base.clone()
	return t
}

func (b Base) clone() Base {
	if b.TemplateArguments != nil {
		args := make([]Type, len(b.TemplateArguments))
		for i, a := range b.TemplateArguments {
			args[i] = a.Clone()
		}

		b.TemplateArguments = args
	}

	if b.Function != nil {
		f := FunctionPointer{
			ReturnType:              b.Function.ReturnType.Clone(),
			AllowsVariableArguments: b.Function.AllowsVariableArguments,
		}
		if b.Function.Arguments != nil {
			f.Arguments = make([]Type, len(b.Function.Arguments))
			for i, a := range b.Function.Arguments {
				f.Arguments[i] = a.Clone()
			}
		}

		b.Function = &f
	}

	return b
}

// Equal reports structural equality of two types.
func (t Type) Equal(o Type) bool {
	return t.IsConst == o.IsConst && t.Indirection == o.Indirection && t.Base.Equal(o.Base)
}

// Equal compares two bases by the fields relevant to their kind.
func (b Base) Equal(o Base) bool {
	if b.Kind != o.Kind {
		return false
	}

	switch b.Kind {
	case BaseVoid:
		return true
	case BaseBuiltInNumeric:
		return b.Numeric == o.Numeric
	case BaseEnum:
		return b.Name == o.Name
	case BaseSpecificNumeric:
		return b.Name == o.Name && b.Bits == o.Bits && b.IsFloat == o.IsFloat && b.IsSigned == o.IsSigned
	case BasePointerSizedInteger:
		return b.Name == o.Name && b.IsSigned == o.IsSigned
	case BaseClass:
		return b.Name == o.Name && common.EqualFunc(b.TemplateArguments, o.TemplateArguments, Type.Equal)
	case BaseTemplateParameter:
		return b.NestedLevel == o.NestedLevel && b.Index == o.Index && b.Name == o.Name
	case BaseFunctionPointer:
		if b.Function == nil || o.Function == nil {
			return b.Function == o.Function
		}

		return b.Function.ReturnType.Equal(o.Function.ReturnType) &&
			b.Function.AllowsVariableArguments == o.Function.AllowsVariableArguments &&
			common.EqualFunc(b.Function.Arguments, o.Function.Arguments, Type.Equal)
	default:
		return false
	}
}

// IsVoid reports whether the base is void.
func (b Base) IsVoid() bool {
	return b.Kind == BaseVoid
}

// IsClass reports whether the base is a class.
func (b Base) IsClass() bool {
	return b.Kind == BaseClass
}

// IsTemplateParameter reports whether the base is an unresolved template parameter.
func (b Base) IsTemplateParameter() bool {
	return b.Kind == BaseTemplateParameter
}

// IsFunctionPointer reports whether the base is a function pointer.
func (b Base) IsFunctionPointer() bool {
	return b.Kind == BaseFunctionPointer
}

// ClassType returns the class described by b. The caller must have
// checked IsClass.
func (b Base) ClassType() ClassType {
	return ClassType{Name: b.Name, TemplateArguments: b.TemplateArguments}
}

// IsVoid reports whether t is exactly "void" (no const, no indirection).
func (t Type) IsVoid() bool {
	return !t.IsConst && t.Indirection == IndirectionNone && t.Base.IsVoid()
}

// IsClassValue reports whether t is a class passed by value.
func (t Type) IsClassValue() bool {
	return t.Indirection == IndirectionNone && t.Base.IsClass()
}

// ContainsTemplateParameter reports whether t or any nested type is an
// unresolved template parameter.
func (t Type) ContainsTemplateParameter() bool {
	switch t.Base.Kind {
	case BaseTemplateParameter:
		return true
	case BaseClass:
		for _, a := range t.Base.TemplateArguments {
			if a.ContainsTemplateParameter() {
				return true
			}
		}
	case BaseFunctionPointer:
		if t.Base.Function == nil {
			return false
		}

		if t.Base.Function.ReturnType.ContainsTemplateParameter() {
			return true
		}

		for _, a := range t.Base.Function.Arguments {
			if a.ContainsTemplateParameter() {
				return true
			}
		}
	case BaseVoid, BaseBuiltInNumeric, BaseEnum, BaseSpecificNumeric, BasePointerSizedInteger:
	}

	return false
}
