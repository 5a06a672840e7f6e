package cppdecl

import (
	"strings"

	"bindgen-core/internal/common"
	"bindgen-core/internal/cpptype"
)

// Membership describes a function that is a member of a class.
type Membership struct {
	ClassType     cpptype.ClassType `yaml:"class_type"`
	Kind          MethodKind        `yaml:"kind,omitempty"`
	IsVirtual     bool              `yaml:"is_virtual,omitempty"`
	IsPureVirtual bool              `yaml:"is_pure_virtual,omitempty"`
	IsConst       bool              `yaml:"is_const,omitempty"`
	IsStatic      bool              `yaml:"is_static,omitempty"`
	Visibility    Visibility        `yaml:"visibility,omitempty"`
	IsSignal      bool              `yaml:"is_signal,omitempty"`
	IsSlot        bool              `yaml:"is_slot,omitempty"`
}

// Argument is a declared function argument.
type Argument struct {
	Name            string       `yaml:"name"`
	ArgumentType    cpptype.Type `yaml:"type"`
	HasDefaultValue bool         `yaml:"has_default_value,omitempty"`
}

// Function is a free function or a class method.
type Function struct {
	// Name is the function name, scoped for free functions inside
	// namespaces ("QtMath::qAbs"). For operators it is the operator
	// function name.
	Name                    string         `yaml:"name"`
	Member                  *Membership    `yaml:"member,omitempty"`
	Operator                *Operator      `yaml:"operator,omitempty"`
	ReturnType              cpptype.Type   `yaml:"return_type"`
	Arguments               []Argument     `yaml:"arguments,omitempty"`
	AllowsVariadicArguments bool           `yaml:"allows_variadic_arguments,omitempty"`
	TemplateArguments       []cpptype.Type `yaml:"template_arguments,omitempty"`
	DeclarationCode         string         `yaml:"declaration_code,omitempty"`
	Doc                     string         `yaml:"doc,omitempty"`
}

// IsConstructor reports whether f is a constructor.
func (f *Function) IsConstructor() bool {
	return f.Member != nil && f.Member.Kind == MethodConstructor
}

// IsDestructor reports whether f is a destructor.
func (f *Function) IsDestructor() bool {
	return f.Member != nil && f.Member.Kind == MethodDestructor
}

// IsConst reports whether f is a const-qualified method.
func (f *Function) IsConst() bool {
	return f.Member != nil && f.Member.IsConst
}

// IsStatic reports whether f is a static method.
func (f *Function) IsStatic() bool {
	return f.Member != nil && f.Member.IsStatic
}

// IsSignal reports whether f is a signal method.
func (f *Function) IsSignal() bool {
	return f.Member != nil && f.Member.IsSignal
}

// ClassType returns the enclosing class of a member function.
func (f *Function) ClassType() (cpptype.ClassType, bool) {
	if f.Member == nil {
		return cpptype.ClassType{}, false
	}

	return f.Member.ClassType, true
}

// ArgumentTypes returns the declared argument types in order.
func (f *Function) ArgumentTypes() []cpptype.Type {
	types := make([]cpptype.Type, len(f.Arguments))
	for i, a := range f.Arguments {
		types[i] = a.ArgumentType
	}

	return types
}

// IsSame reports whether f and other declare the same function: same
// name, class membership, operator, return type, argument types, variadic
// flag and template arguments. Argument names, defaults and documentation
// are ignored.
func (f *Function) IsSame(other *Function) bool {
	return f.Name == other.Name &&
		f.Member.sameSignature(other.Member) &&
		f.Operator.Equal(other.Operator) &&
		f.ReturnType.Equal(other.ReturnType) &&
		common.EqualFunc(f.ArgumentTypes(), other.ArgumentTypes(), cpptype.Type.Equal) &&
		f.AllowsVariadicArguments == other.AllowsVariadicArguments &&
		common.EqualFunc(f.TemplateArguments, other.TemplateArguments, cpptype.Type.Equal)
}

func (m *Membership) sameSignature(other *Membership) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.ClassType.Equal(other.ClassType) &&
		m.Kind == other.Kind &&
		m.IsConst == other.IsConst &&
		m.IsStatic == other.IsStatic
}

// QualifiedName returns "Class::name" for members and the plain name
// otherwise.
func (f *Function) QualifiedName() string {
	if f.Member == nil {
		return f.Name
	}

	return f.Member.ClassType.Type().String() + "::" + f.Name
}

// InvolvedTypes lists every type mentioned by the signature.
func (f *Function) InvolvedTypes() []cpptype.Type {
	var types []cpptype.Type
	if f.Member != nil {
		types = append(types, f.Member.ClassType.Type())
	}

	for _, a := range f.Arguments {
		types = append(types, a.ArgumentType)
	}

	types = append(types, f.ReturnType)
	if f.Operator.IsConversion() && f.Operator.ConversionType != nil {
		types = append(types, *f.Operator.ConversionType)
	}

	types = append(types, f.TemplateArguments...)

	return types
}

// ShortText returns a one-line pseudo-declaration for logs and reports.
func (f *Function) ShortText() string {
	var b strings.Builder

	if f.Member != nil {
		if f.Member.Visibility != VisibilityPublic {
			b.WriteString(f.Member.Visibility.String() + " ")
		}

		if f.Member.IsStatic {
			b.WriteString("static ")
		}

		if f.Member.IsVirtual {
			b.WriteString("virtual ")
		}

		if f.Member.IsSignal {
			b.WriteString("[signal] ")
		}
	}

	if !f.IsConstructor() && !f.IsDestructor() {
		b.WriteString(f.ReturnType.String() + " ")
	}

	b.WriteString(f.QualifiedName())
	b.WriteString("(")

	for i, a := range f.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(a.ArgumentType.String())

		if a.Name != "" {
			b.WriteString(" " + a.Name)
		}

		if a.HasDefaultValue {
			b.WriteString(" = ?")
		}
	}

	if f.AllowsVariadicArguments {
		if len(f.Arguments) > 0 {
			b.WriteString(", ")
		}

		b.WriteString("...")
	}

	b.WriteString(")")

	if f.IsConst() {
		b.WriteString(" const")
	}

	if f.Member != nil && f.Member.IsPureVirtual {
		b.WriteString(" = 0")
	}

	return b.String()
}
