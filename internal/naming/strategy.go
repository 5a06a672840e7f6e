package naming

import (
	"fmt"
	"strings"

	"bindgen-core/internal/common"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/ffi"
)

// ArgumentCaptionKind selects what describes a single argument.
type ArgumentCaptionKind int

const (
	ArgumentNameOnly ArgumentCaptionKind = iota
	ArgumentTypeOnly
	ArgumentTypeAndName
)

// ArgumentStrategy captions one boundary argument.
type ArgumentStrategy struct {
	Kind ArgumentCaptionKind
	Type cpptype.CaptionStrategy
}

// String returns e.g. "type_and_name(full)".
func (s ArgumentStrategy) String() string {
	switch s.Kind {
	case ArgumentNameOnly:
		return "name_only"
	case ArgumentTypeOnly:
		return fmt.Sprintf("type_only(%s)", s.Type)
	case ArgumentTypeAndName:
		return fmt.Sprintf("type_and_name(%s)", s.Type)
	default:
		return common.UnknownStr
	}
}

// Caption describes a. Types are captioned from the native type, not the
// boundary type, so a reference and a value of the same class differ.
func (s ArgumentStrategy) Caption(a ffi.Argument) string {
	switch s.Kind {
	case ArgumentNameOnly:
		return a.Name
	case ArgumentTypeOnly:
		return a.Type.Original.Caption(s.Type)
	case ArgumentTypeAndName:
		return a.Type.Original.Caption(s.Type) + "_" + a.Name
	default:
		return ""
	}
}

// argumentStrategies are tried from the least to the most verbose.
var argumentStrategies = []ArgumentStrategy{
	{Kind: ArgumentNameOnly},
	{Kind: ArgumentTypeOnly, Type: cpptype.CaptionShort},
	{Kind: ArgumentTypeAndName, Type: cpptype.CaptionShort},
	{Kind: ArgumentTypeOnly, Type: cpptype.CaptionFull},
	{Kind: ArgumentTypeAndName, Type: cpptype.CaptionFull},
}

// StrategyKind selects what distinguishes overloads.
type StrategyKind int

const (
	StrategyConstOnly StrategyKind = iota
	StrategyArgumentsOnly
	StrategyConstAndArguments
)

// Strategy captions a whole overload.
type Strategy struct {
	Kind      StrategyKind
	Arguments ArgumentStrategy
}

// String returns e.g. "const_and_arguments(type_only(short))".
func (s Strategy) String() string {
	switch s.Kind {
	case StrategyConstOnly:
		return "const_only"
	case StrategyArgumentsOnly:
		return fmt.Sprintf("arguments_only(%s)", s.Arguments)
	case StrategyConstAndArguments:
		return fmt.Sprintf("const_and_arguments(%s)", s.Arguments)
	default:
		return common.UnknownStr
	}
}

// Strategies returns every strategy in the order Disambiguate tries them.
func Strategies() []Strategy {
	out := []Strategy{{Kind: StrategyConstOnly}}

	for _, a := range argumentStrategies {
		out = append(out, Strategy{Kind: StrategyArgumentsOnly, Arguments: a})
	}

	for _, a := range argumentStrategies {
		out = append(out, Strategy{Kind: StrategyConstAndArguments, Arguments: a})
	}

	return out
}

// Caption describes c under s. Only arguments that forward native
// arguments take part; an empty list reads "no_args".
func (s Strategy) Caption(c Candidate) string {
	constCaption := ""
	if c.Function.IsConst() {
		constCaption = "const"
	}

	switch s.Kind {
	case StrategyConstOnly:
		return constCaption
	case StrategyArgumentsOnly:
		return argumentsCaption(c.Signature, s.Arguments)
	case StrategyConstAndArguments:
		if constCaption != "" {
			constCaption += "_"
		}

		return constCaption + argumentsCaption(c.Signature, s.Arguments)
	default:
		return ""
	}
}

func argumentsCaption(sig ffi.Signature, s ArgumentStrategy) string {
	args := sig.RealArguments()
	if len(args) == 0 {
		return "no_args"
	}

	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = s.Caption(a)
	}

	return strings.Join(parts, "_")
}
