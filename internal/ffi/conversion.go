package ffi

import (
	"gopkg.in/yaml.v3"

	"bindgen-core/internal/common"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/errors"
)

//go:generate go tool stringer -type=Conversion -trimprefix=Conversion -output=conversion_string.go

// Conversion relates the original type of a value to its boundary type.
type Conversion int

const (
	// ConversionNoChange means both types are identical.
	ConversionNoChange Conversion = iota
	// ConversionValueToPointer passes a class value (QPoint) as a pointer (QPoint*).
	ConversionValueToPointer
	// ConversionReferenceToPointer passes a reference (QPoint&) as a pointer (QPoint*).
	ConversionReferenceToPointer
	// ConversionQFlagsToUInt passes the flags wrapper as its unsigned integer value.
	ConversionQFlagsToUInt
)

func allConversions() []Conversion {
	return []Conversion{
		ConversionNoChange,
		ConversionValueToPointer,
		ConversionReferenceToPointer,
		ConversionQFlagsToUInt,
	}
}

// MarshalYAML writes the conversion by name.
func (c Conversion) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML reads a conversion written by MarshalYAML.
func (c *Conversion) UnmarshalYAML(node *yaml.Node) error {
	v, ok := common.ParseEnum(node.Value, allConversions())
	if !ok {
		return errors.Newf("line %d: unknown conversion %q", node.Line, node.Value)
	}

	*c = v

	return nil
}

// BoundaryType is a type as it crosses the boundary, with the original
// type it stands for. Boundary never holds a reference, a class by value
// or a template parameter.
type BoundaryType struct {
	Original   cpptype.Type `yaml:"original"`
	Boundary   cpptype.Type `yaml:"boundary"`
	Conversion Conversion   `yaml:"conversion,omitempty"`
}

// VoidBoundary is the boundary form of a void return.
func VoidBoundary() BoundaryType {
	return BoundaryType{Original: cpptype.Void(), Boundary: cpptype.Void()}
}

// Equal reports structural equality.
func (b BoundaryType) Equal(o BoundaryType) bool {
	return b.Conversion == o.Conversion && b.Original.Equal(o.Original) && b.Boundary.Equal(o.Boundary)
}
