package kb

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"bindgen-core/internal/common"
	"bindgen-core/internal/errors"
)

// SourceKind tells where a declaration came from.
type SourceKind int

const (
	// SourceParser is a declaration read from a header.
	SourceParser SourceKind = iota
	// SourceImplicitDestructor is a destructor the compiler declares implicitly.
	SourceImplicitDestructor
	// SourceTemplateInstantiation is an instantiation seen in other declarations.
	SourceTemplateInstantiation
	// SourceNamespaceInfering is a namespace inferred from scoped names.
	SourceNamespaceInfering
	// SourceSignalArguments is an argument set inferred from a signal.
	SourceSignalArguments
)

func allSourceKinds() []SourceKind {
	return []SourceKind{
		SourceParser,
		SourceImplicitDestructor,
		SourceTemplateInstantiation,
		SourceNamespaceInfering,
		SourceSignalArguments,
	}
}

// String returns a human-readable source name.
func (k SourceKind) String() string {
	switch k {
	case SourceParser:
		return "parser"
	case SourceImplicitDestructor:
		return "implicit_destructor"
	case SourceTemplateInstantiation:
		return "template_instantiation"
	case SourceNamespaceInfering:
		return "namespace_infering"
	case SourceSignalArguments:
		return "signal_arguments"
	default:
		return common.UnknownStr
	}
}

// MarshalYAML writes the kind by name.
func (k SourceKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML reads a kind written by MarshalYAML.
func (k *SourceKind) UnmarshalYAML(node *yaml.Node) error {
	v, ok := common.ParseEnum(node.Value, allSourceKinds())
	if !ok {
		return errors.Newf("line %d: unknown source %q", node.Line, node.Value)
	}

	*k = v

	return nil
}

// OriginLocation is the exact place a parsed declaration was found.
type OriginLocation struct {
	IncludeFilePath string `yaml:"include_file_path"`
	Line            int    `yaml:"line"`
	Column          int    `yaml:"column"`
}

// Source is the provenance of a declaration. IncludeFile and Origin are
// set for parser sources only.
type Source struct {
	Kind        SourceKind      `yaml:"kind"`
	IncludeFile string          `yaml:"include_file,omitempty"`
	Origin      *OriginLocation `yaml:"origin,omitempty"`
}

// ParserSource returns a parser provenance.
func ParserSource(includeFile string, origin OriginLocation) Source {
	return Source{Kind: SourceParser, IncludeFile: includeFile, Origin: &origin}
}

// Synthesized returns the provenance of an inference pass.
func Synthesized(kind SourceKind) Source {
	return Source{Kind: kind}
}

// IsParser reports whether s is authoritative.
func (s Source) IsParser() bool {
	return s.Kind == SourceParser
}

// String returns "parser(qpoint.h:12:5)" or the synthesized kind.
func (s Source) String() string {
	if !s.IsParser() {
		return s.Kind.String()
	}

	if s.Origin == nil {
		return fmt.Sprintf("parser(%s)", s.IncludeFile)
	}

	return fmt.Sprintf("parser(%s:%d:%d)", s.Origin.IncludeFilePath, s.Origin.Line, s.Origin.Column)
}
