// Copyright (C) 2025 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package tag provides typed identifiers: a raw value paired with a label
// derived from the entity type it identifies. The label travels in logs
// and rendered output; only the value is serialized.
package tag

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/cardinalhq/tagid/idgen"
)

// Delimiter separates the label from the value in rendered identifiers.
const Delimiter = "::"

// ID identifies an entity of type E. The zero value is an empty id.
type ID[E any] struct {
	label string
	value string
}

// Next generates a fresh ID for E using g.
func Next[E any](g idgen.Generator) ID[E] {
	return ID[E]{label: LabelFor[E](), value: g.NextRep()}
}

// For wraps an existing raw value with E's label.
func For[E any](value string) ID[E] {
	return ID[E]{label: LabelFor[E](), value: value}
}

// Direct builds an ID with an explicit label, bypassing label derivation.
func Direct[E any](label, value string) ID[E] {
	return ID[E]{label: label, value: value}
}

// Relabel converts an ID from entity type A to entity type B, keeping the
// value.
func Relabel[B, A any](id ID[A]) ID[B] {
	return ID[B]{label: LabelFor[B](), value: id.value}
}

func (id ID[E]) Label() string { return id.label }
func (id ID[E]) Value() string { return id.value }
func (id ID[E]) IsZero() bool  { return id.value == "" }

// String renders label::value; ids without a label render the bare value.
func (id ID[E]) String() string {
	if id.label == "" {
		return id.value
	}
	return id.label + Delimiter + id.value
}

// LabelFor derives the label for E from its type name. Pointer and slice
// wrappers are stripped down to the element type; instantiation arguments
// of generic types are dropped. Anonymous types yield an empty label.
func LabelFor[E any]() string {
	t := reflect.TypeOf((*E)(nil)).Elem()
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

// MarshalJSON emits the bare value; the label is a rendering concern, not
// part of the wire representation.
func (id ID[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

func (id *ID[E]) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*id = For[E](value)
	return nil
}

func (id ID[E]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(id.value)
}

func (id *ID[E]) UnmarshalCBOR(data []byte) error {
	var value string
	if err := cbor.Unmarshal(data, &value); err != nil {
		return err
	}
	*id = For[E](value)
	return nil
}
