package ffi

import (
	"strings"

	"gopkg.in/yaml.v3"

	"bindgen-core/internal/common"
	"bindgen-core/internal/errors"
)

//go:generate go tool stringer -type=AllocationPlace -trimprefix=Place -output=place_string.go

// AllocationPlace says where a returned class value is constructed.
type AllocationPlace int

const (
	// PlaceNotApplicable is used when the return value needs no storage
	// decision.
	PlaceNotApplicable AllocationPlace = iota
	// PlaceStack constructs the value in a caller-supplied buffer.
	PlaceStack
	// PlaceHeap allocates the value and returns a pointer to it.
	PlaceHeap
)

func allPlaces() []AllocationPlace {
	return []AllocationPlace{PlaceNotApplicable, PlaceStack, PlaceHeap}
}

// ParseAllocationPlace accepts "stack", "heap" or "not_applicable" in
// any case, as well as the String form.
func ParseAllocationPlace(s string) (AllocationPlace, error) {
	switch strings.ToLower(s) {
	case "stack":
		return PlaceStack, nil
	case "heap":
		return PlaceHeap, nil
	case "notapplicable", "not_applicable":
		return PlaceNotApplicable, nil
	default:
		return PlaceNotApplicable, errors.Newf("unknown allocation place %q", s)
	}
}

// MarshalYAML writes the place by name.
func (p AllocationPlace) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML reads a place written by MarshalYAML.
func (p *AllocationPlace) UnmarshalYAML(node *yaml.Node) error {
	v, ok := common.ParseEnum(node.Value, allPlaces())
	if !ok {
		return errors.Newf("line %d: unknown allocation place %q", node.Line, node.Value)
	}

	*p = v

	return nil
}
