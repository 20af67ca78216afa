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

// Package envelope wraps payloads with transport metadata: a typed
// correlation id and a receive timestamp, carried as message headers or
// inline in a CBOR-encoded envelope.
package envelope

import (
	"time"

	"github.com/cardinalhq/tagid/idgen"
	"github.com/cardinalhq/tagid/tag"
)

// Header keys used when metadata travels as a flat string map.
const (
	CorrelationIDKey = "correlation_id"
	RecvTimestampKey = "recv_timestamp"
)

// Metadata carries the transport context for a payload of entity type E.
type Metadata[E any] struct {
	CorrelationID tag.ID[E]         `json:"correlation_id"`
	ReceivedAt    time.Time         `json:"recv_timestamp"`
	Custom        map[string]string `json:"custom,omitempty"`
}

// NewMetadata builds fresh metadata with a generated correlation id and the
// current time.
func NewMetadata[E any](g idgen.Generator) Metadata[E] {
	return Metadata[E]{
		CorrelationID: tag.Next[E](g),
		ReceivedAt:    time.Now().UTC(),
	}
}

// FromHeaders reconstructs metadata from a flat header map. A missing
// correlation id is replaced with a freshly generated one, and a missing or
// malformed timestamp with the current time. Remaining headers are kept in
// Custom. The input map is not modified.
func FromHeaders[E any](headers map[string]string, g idgen.Generator) Metadata[E] {
	md := Metadata[E]{ReceivedAt: time.Now().UTC()}

	for k, v := range headers {
		switch k {
		case CorrelationIDKey:
			md.CorrelationID = tag.For[E](v)
		case RecvTimestampKey:
			if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
				md.ReceivedAt = ts.UTC()
			}
		default:
			if md.Custom == nil {
				md.Custom = make(map[string]string)
			}
			md.Custom[k] = v
		}
	}

	if md.CorrelationID.IsZero() {
		md.CorrelationID = tag.Next[E](g)
	}
	return md
}

// Headers renders the metadata as a flat header map, the inverse of
// FromHeaders.
func (md Metadata[E]) Headers() map[string]string {
	headers := make(map[string]string, len(md.Custom)+2)
	for k, v := range md.Custom {
		headers[k] = v
	}
	headers[CorrelationIDKey] = md.CorrelationID.Value()
	headers[RecvTimestampKey] = md.ReceivedAt.UTC().Format(time.RFC3339Nano)
	return headers
}
