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

package envelope

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/cardinalhq/tagid/idgen"
	"github.com/cardinalhq/tagid/tag"
)

// encMode keeps sub-second precision on timestamps; the default mode
// truncates time.Time to whole seconds.
var encMode, _ = cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()

// Envelope pairs a payload with its transport metadata.
type Envelope[T any] struct {
	Meta    Metadata[T] `json:"meta" cbor:"1,keyasint"`
	Payload T           `json:"payload" cbor:"2,keyasint"`
}

// Wrap builds an envelope around payload with fresh metadata.
func Wrap[T any](payload T, g idgen.Generator) Envelope[T] {
	return Envelope[T]{Meta: NewMetadata[T](g), Payload: payload}
}

// WithPayload returns a copy of the envelope carrying payload under the
// same metadata.
func (e Envelope[T]) WithPayload(payload T) Envelope[T] {
	e.Payload = payload
	return e
}

// Map transforms the payload with f, relabeling the correlation id for the
// new payload type and keeping the rest of the metadata.
func Map[U, T any](e Envelope[T], f func(T) U) Envelope[U] {
	return Envelope[U]{
		Meta: Metadata[U]{
			CorrelationID: tag.Relabel[U](e.Meta.CorrelationID),
			ReceivedAt:    e.Meta.ReceivedAt,
			Custom:        e.Meta.Custom,
		},
		Payload: f(e.Payload),
	}
}

// EncodeCBOR serializes the envelope.
func (e Envelope[T]) EncodeCBOR() ([]byte, error) {
	return encMode.Marshal(e)
}

// DecodeCBOR deserializes an envelope produced by EncodeCBOR.
func DecodeCBOR[T any](data []byte) (Envelope[T], error) {
	var e Envelope[T]
	if err := cbor.Unmarshal(data, &e); err != nil {
		return Envelope[T]{}, err
	}
	return e, nil
}
