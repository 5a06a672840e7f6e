package cppdecl

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"bindgen-core/internal/common"
	"bindgen-core/internal/cpptype"
)

// OperatorKind enumerates the overloadable C++ operators.
type OperatorKind int

const (
	OperatorConversion OperatorKind = iota
	OperatorAssignment
	OperatorAddition
	OperatorSubtraction
	OperatorUnaryPlus
	OperatorUnaryMinus
	OperatorMultiplication
	OperatorDivision
	OperatorModulo
	OperatorPrefixIncrement
	OperatorPostfixIncrement
	OperatorPrefixDecrement
	OperatorPostfixDecrement
	OperatorEqualTo
	OperatorNotEqualTo
	OperatorGreaterThan
	OperatorLessThan
	OperatorGreaterThanOrEqualTo
	OperatorLessThanOrEqualTo
	OperatorLogicalNot
	OperatorLogicalAnd
	OperatorLogicalOr
	OperatorBitwiseNot
	OperatorBitwiseAnd
	OperatorBitwiseOr
	OperatorBitwiseXor
	OperatorBitwiseLeftShift
	OperatorBitwiseRightShift
	OperatorAdditionAssignment
	OperatorSubtractionAssignment
	OperatorMultiplicationAssignment
	OperatorDivisionAssignment
	OperatorModuloAssignment
	OperatorBitwiseAndAssignment
	OperatorBitwiseOrAssignment
	OperatorBitwiseXorAssignment
	OperatorBitwiseLeftShiftAssignment
	OperatorBitwiseRightShiftAssignment
	OperatorSubscript
	OperatorIndirection
	OperatorAddressOf
	OperatorStructureDereference
	OperatorPointerToMember
	OperatorFunctionCall
	OperatorComma
	OperatorNew
	OperatorNewArray
	OperatorDelete
	OperatorDeleteArray

	operatorKindCount
)

type operatorInfo struct {
	name   string
	symbol string
}

// operatorTable is indexed by OperatorKind.
var operatorTable = [operatorKindCount]operatorInfo{
	OperatorConversion:                  {"conversion", ""},
	OperatorAssignment:                  {"assign", "="},
	OperatorAddition:                    {"add", "+"},
	OperatorSubtraction:                 {"sub", "-"},
	OperatorUnaryPlus:                   {"unary_plus", "+"},
	OperatorUnaryMinus:                  {"neg", "-"},
	OperatorMultiplication:              {"mul", "*"},
	OperatorDivision:                    {"div", "/"},
	OperatorModulo:                      {"rem", "%"},
	OperatorPrefixIncrement:             {"inc", "++"},
	OperatorPostfixIncrement:            {"inc_postfix", "++"},
	OperatorPrefixDecrement:             {"dec", "--"},
	OperatorPostfixDecrement:            {"dec_postfix", "--"},
	OperatorEqualTo:                     {"eq", "=="},
	OperatorNotEqualTo:                  {"neq", "!="},
	OperatorGreaterThan:                 {"gt", ">"},
	OperatorLessThan:                    {"lt", "<"},
	OperatorGreaterThanOrEqualTo:        {"ge", ">="},
	OperatorLessThanOrEqualTo:           {"le", "<="},
	OperatorLogicalNot:                  {"not", "!"},
	OperatorLogicalAnd:                  {"and", "&&"},
	OperatorLogicalOr:                   {"or", "||"},
	OperatorBitwiseNot:                  {"bit_not", "~"},
	OperatorBitwiseAnd:                  {"bit_and", "&"},
	OperatorBitwiseOr:                   {"bit_or", "|"},
	OperatorBitwiseXor:                  {"bit_xor", "^"},
	OperatorBitwiseLeftShift:            {"shl", "<<"},
	OperatorBitwiseRightShift:           {"shr", ">>"},
	OperatorAdditionAssignment:          {"add_assign", "+="},
	OperatorSubtractionAssignment:       {"sub_assign", "-="},
	OperatorMultiplicationAssignment:    {"mul_assign", "*="},
	OperatorDivisionAssignment:          {"div_assign", "/="},
	OperatorModuloAssignment:            {"rem_assign", "%="},
	OperatorBitwiseAndAssignment:        {"bit_and_assign", "&="},
	OperatorBitwiseOrAssignment:         {"bit_or_assign", "|="},
	OperatorBitwiseXorAssignment:        {"bit_xor_assign", "^="},
	OperatorBitwiseLeftShiftAssignment:  {"shl_assign", "<<="},
	OperatorBitwiseRightShiftAssignment: {"shr_assign", ">>="},
	OperatorSubscript:                   {"index", "[]"},
	OperatorIndirection:                 {"indirection", "*"},
	OperatorAddressOf:                   {"address_of", "&"},
	OperatorStructureDereference:        {"struct_deref", "->"},
	OperatorPointerToMember:             {"ptr_to_member", "->*"},
	OperatorFunctionCall:                {"call", "()"},
	OperatorComma:                       {"comma", ","},
	OperatorNew:                         {"new", "new"},
	OperatorNewArray:                    {"new_array", "new[]"},
	OperatorDelete:                      {"delete", "delete"},
	OperatorDeleteArray:                 {"delete_array", "delete[]"},
}

func allOperatorKinds() []OperatorKind {
	all := make([]OperatorKind, 0, operatorKindCount)
	for k := OperatorConversion; k < operatorKindCount; k++ {
		all = append(all, k)
	}

	return all
}

// String returns the identifier-safe operator name used in boundary
// symbols, e.g. "add_assign".
func (k OperatorKind) String() string {
	if k < 0 || k >= operatorKindCount {
		return common.UnknownStr
	}

	return operatorTable[k].name
}

// Symbol returns the operator's C++ token, e.g. "+=".
func (k OperatorKind) Symbol() string {
	if k < 0 || k >= operatorKindCount {
		return ""
	}

	return operatorTable[k].symbol
}

// MarshalYAML writes the kind by name.
func (k OperatorKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML reads a kind written by MarshalYAML.
func (k *OperatorKind) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnum(node, k, allOperatorKinds(), "operator")
}

// Operator is an overloaded operator. ConversionType is set only for
// conversion operators.
type Operator struct {
	Kind           OperatorKind  `yaml:"kind"`
	ConversionType *cpptype.Type `yaml:"conversion_type,omitempty"`
}

// ConversionTo returns a conversion operator to t.
func ConversionTo(t cpptype.Type) *Operator {
	return &Operator{Kind: OperatorConversion, ConversionType: &t}
}

// NewOperator returns a non-conversion operator.
func NewOperator(kind OperatorKind) *Operator {
	return &Operator{Kind: kind}
}

// IsConversion reports whether o is a conversion operator.
func (o *Operator) IsConversion() bool {
	return o != nil && o.Kind == OperatorConversion
}

// Equal compares two optional operators.
func (o *Operator) Equal(other *Operator) bool {
	if o == nil || other == nil {
		return o == other
	}

	if o.Kind != other.Kind {
		return false
	}

	if o.ConversionType == nil || other.ConversionType == nil {
		return o.ConversionType == other.ConversionType
	}

	return o.ConversionType.Equal(*other.ConversionType)
}

// FunctionName returns the C++ name of the operator function, e.g.
// "operator+=" or "operator int".
func (o *Operator) FunctionName() string {
	if o.IsConversion() {
		if o.ConversionType == nil {
			return "operator ?"
		}

		return "operator " + o.ConversionType.String()
	}

	sym := o.Kind.Symbol()
	if sym == "new" || sym == "delete" || sym == "new[]" || sym == "delete[]" {
		return "operator " + sym
	}

	return fmt.Sprintf("operator%s", sym)
}
