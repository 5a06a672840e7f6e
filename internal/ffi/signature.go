package ffi

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"bindgen-core/internal/common"
	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/errors"
)

// Names of the implicit boundary arguments.
const (
	ThisArgumentName   = "this_ptr"
	OutputArgumentName = "output"
)

// MeaningKind is the role of a boundary argument.
type MeaningKind int

const (
	// MeaningArgument forwards an argument of the native function.
	MeaningArgument MeaningKind = iota
	// MeaningThis carries the receiver of a member function.
	MeaningThis
	// MeaningReturnValue points to the buffer the result is constructed in.
	MeaningReturnValue
)

// String returns a human-readable meaning name.
func (k MeaningKind) String() string {
	switch k {
	case MeaningArgument:
		return "argument"
	case MeaningThis:
		return "this"
	case MeaningReturnValue:
		return "return_value"
	default:
		return common.UnknownStr
	}
}

// MarshalYAML writes the meaning by name.
func (k MeaningKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML reads a meaning written by MarshalYAML.
func (k *MeaningKind) UnmarshalYAML(node *yaml.Node) error {
	v, ok := common.ParseEnum(node.Value, []MeaningKind{MeaningArgument, MeaningThis, MeaningReturnValue})
	if !ok {
		return errors.Newf("line %d: unknown argument meaning %q", node.Line, node.Value)
	}

	*k = v

	return nil
}

// ArgumentMeaning relates a boundary argument to the native call.
// Index is the position of the native argument for MeaningArgument.
type ArgumentMeaning struct {
	Kind  MeaningKind `yaml:"kind,omitempty"`
	Index int         `yaml:"index,omitempty"`
}

// IsArgument reports whether the argument forwards a native argument.
func (m ArgumentMeaning) IsArgument() bool {
	return m.Kind == MeaningArgument
}

// Argument is one argument of a boundary function.
type Argument struct {
	Name    string          `yaml:"name"`
	Type    BoundaryType    `yaml:"type"`
	Meaning ArgumentMeaning `yaml:"meaning"`
}

// DeclarationCode renders the argument as it appears in the C prototype.
func (a Argument) DeclarationCode() (string, error) {
	return a.Type.Boundary.DeclarationCode(a.Name)
}

// Signature is the argument list and return type of a boundary function
// before it is named.
type Signature struct {
	Arguments  []Argument   `yaml:"arguments,omitempty"`
	ReturnType BoundaryType `yaml:"return_type"`
}

// RealArguments returns the arguments that forward native arguments,
// skipping the receiver and the return buffer.
func (s Signature) RealArguments() []Argument {
	var out []Argument

	for _, a := range s.Arguments {
		if a.Meaning.IsArgument() {
			out = append(out, a)
		}
	}

	return out
}

// DeclarationCode renders the C prototype of the function called name.
func (s Signature) DeclarationCode(name string) (string, error) {
	ret, err := s.ReturnType.Boundary.SourceCode()
	if err != nil {
		return "", errors.Wrap(err, "return type")
	}

	args, err := common.MapErr(s.Arguments, Argument.DeclarationCode)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s(%s)", ret, name, strings.Join(args, ", ")), nil
}

// Function is a named boundary function generated for one native function
// and one allocation place.
type Function struct {
	Name            string          `yaml:"name"`
	AllocationPlace AllocationPlace `yaml:"allocation_place,omitempty"`
	Signature       Signature       `yaml:"signature"`
}

// DeclarationCode renders the C prototype of f.
func (f Function) DeclarationCode() (string, error) {
	return f.Signature.DeclarationCode(f.Name)
}

// NeedsAllocationPlaceVariants reports whether returning t requires a
// choice between stack and heap construction: classes by value other
// than the flags wrapper.
func (m *Mapper) NeedsAllocationPlaceVariants(t cpptype.Type) bool {
	return t.IsClassValue() && !m.IsFlags(t)
}

// returnType is the type the boundary function produces: the class itself
// for constructors, the declared return type otherwise.
func returnType(fn *cppdecl.Function) cpptype.Type {
	if fn.IsConstructor() {
		return fn.Member.ClassType.Type()
	}

	return fn.ReturnType
}

// AllocationPlaces lists the variants to generate for fn. Constructors,
// destructors and functions returning a class by value get both stack and
// heap variants unless overrides pins the class to one of them.
func (m *Mapper) AllocationPlaces(fn *cppdecl.Function, overrides map[string]AllocationPlace) []AllocationPlace {
	var className string

	switch {
	case fn.IsConstructor() || fn.IsDestructor():
		className = fn.Member.ClassType.Name
	case m.NeedsAllocationPlaceVariants(fn.ReturnType):
		className = fn.ReturnType.Base.Name
	default:
		return []AllocationPlace{PlaceNotApplicable}
	}

	if place, ok := overrides[className]; ok && place != PlaceNotApplicable {
		return []AllocationPlace{place}
	}

	return []AllocationPlace{PlaceStack, PlaceHeap}
}

// Signature builds the boundary signature of fn for one allocation place.
func (m *Mapper) Signature(fn *cppdecl.Function, place AllocationPlace) (Signature, error) {
	if fn.AllowsVariadicArguments {
		return Signature{}, errors.Wrap(ErrUnsupportedType, "variadic functions are not supported")
	}

	sig := Signature{ReturnType: VoidBoundary()}

	if fn.Member != nil && !fn.Member.IsStatic && fn.Member.Kind != cppdecl.MethodConstructor {
		this := fn.Member.ClassType.Type().Ptr()
		this.IsConst = fn.Member.IsConst

		thisType, err := m.Map(this, false)
		if err != nil {
			return Signature{}, errors.Wrap(err, "receiver")
		}

		sig.Arguments = append(sig.Arguments, Argument{
			Name:    ThisArgumentName,
			Type:    thisType,
			Meaning: ArgumentMeaning{Kind: MeaningThis},
		})
	}

	for i, arg := range fn.Arguments {
		argType, err := m.Map(arg.ArgumentType, false)
		if err != nil {
			return Signature{}, errors.Wrapf(err, "argument %d (%s)", i, arg.Name)
		}

		sig.Arguments = append(sig.Arguments, Argument{
			Name:    argumentName(arg.Name, i),
			Type:    argType,
			Meaning: ArgumentMeaning{Kind: MeaningArgument, Index: i},
		})
	}

	ret := returnType(fn)

	retType, err := m.Map(ret, true)
	if err != nil {
		return Signature{}, errors.Wrap(err, "return type")
	}

	if !m.NeedsAllocationPlaceVariants(ret) {
		sig.ReturnType = retType
		return sig, nil
	}

	switch place {
	case PlaceStack:
		sig.Arguments = append(sig.Arguments, Argument{
			Name:    OutputArgumentName,
			Type:    retType,
			Meaning: ArgumentMeaning{Kind: MeaningReturnValue},
		})
	case PlaceHeap:
		sig.ReturnType = retType
	case PlaceNotApplicable:
		return Signature{}, errors.AssertionFailedf("allocation place NotApplicable for %s returning %s", fn.Name, ret)
	default:
		return Signature{}, errors.AssertionFailedf("invalid allocation place %d", int(place))
	}

	return sig, nil
}

// argumentName keeps declared names and invents one for unnamed arguments.
func argumentName(name string, index int) string {
	if name != "" {
		return name
	}

	return fmt.Sprintf("arg%d", index+1)
}
