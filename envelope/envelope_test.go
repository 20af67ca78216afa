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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalhq/tagid/idgen"
	"github.com/cardinalhq/tagid/tag"
)

type Event struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestNewMetadata(t *testing.T) {
	gen := &idgen.UUIDGenerator{}

	md := NewMetadata[Event](gen)

	assert.Equal(t, "Event", md.CorrelationID.Label())
	assert.False(t, md.CorrelationID.IsZero())
	assert.WithinDuration(t, time.Now(), md.ReceivedAt, time.Minute)
	assert.Equal(t, time.UTC, md.ReceivedAt.Location())
	assert.Nil(t, md.Custom)
}

func TestFromHeaders(t *testing.T) {
	gen := &idgen.UUIDGenerator{}
	ts := time.Date(2025, 6, 1, 12, 30, 0, 123456789, time.UTC)

	headers := map[string]string{
		CorrelationIDKey: "corr-42",
		RecvTimestampKey: ts.Format(time.RFC3339Nano),
		"tenant":         "acme",
	}

	md := FromHeaders[Event](headers, gen)

	assert.Equal(t, "corr-42", md.CorrelationID.Value())
	assert.Equal(t, "Event", md.CorrelationID.Label())
	assert.True(t, ts.Equal(md.ReceivedAt))
	assert.Equal(t, map[string]string{"tenant": "acme"}, md.Custom)
	assert.Len(t, headers, 3, "input map must not be modified")
}

func TestFromHeadersMissingFields(t *testing.T) {
	gen := &idgen.UUIDGenerator{}

	md := FromHeaders[Event](map[string]string{}, gen)
	assert.False(t, md.CorrelationID.IsZero(), "missing correlation id is generated")
	assert.WithinDuration(t, time.Now(), md.ReceivedAt, time.Minute)

	md = FromHeaders[Event](map[string]string{RecvTimestampKey: "garbage"}, gen)
	assert.WithinDuration(t, time.Now(), md.ReceivedAt, time.Minute, "malformed timestamp falls back to now")
}

func TestHeadersRoundTrip(t *testing.T) {
	gen := &idgen.UUIDGenerator{}

	md := Metadata[Event]{
		CorrelationID: tag.For[Event]("corr-42"),
		ReceivedAt:    time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		Custom:        map[string]string{"tenant": "acme", "region": "eu"},
	}

	recovered := FromHeaders[Event](md.Headers(), gen)
	assert.Equal(t, md, recovered)
}

func TestEnvelopeCBORRoundTrip(t *testing.T) {
	gen := &idgen.UUIDGenerator{}

	env := Wrap(Event{Name: "signup", Count: 3}, gen)
	env.Meta.Custom = map[string]string{"tenant": "acme"}

	data, err := env.EncodeCBOR()
	require.NoError(t, err)

	decoded, err := DecodeCBOR[Event](data)
	require.NoError(t, err)

	assert.Equal(t, env.Payload, decoded.Payload)
	assert.Equal(t, env.Meta.CorrelationID, decoded.Meta.CorrelationID)
	assert.Equal(t, env.Meta.Custom, decoded.Meta.Custom)
	assert.True(t, env.Meta.ReceivedAt.Equal(decoded.Meta.ReceivedAt))
}

func TestWithPayload(t *testing.T) {
	gen := &idgen.UUIDGenerator{}

	env := Wrap(Event{Name: "signup", Count: 1}, gen)
	replaced := env.WithPayload(Event{Name: "signup", Count: 2})

	assert.Equal(t, env.Meta, replaced.Meta)
	assert.Equal(t, 2, replaced.Payload.Count)
	assert.Equal(t, 1, env.Payload.Count, "original envelope is unchanged")
}

func TestMap(t *testing.T) {
	gen := &idgen.UUIDGenerator{}

	env := Wrap(Event{Name: "signup", Count: 3}, gen)
	env.Meta.Custom = map[string]string{"tenant": "acme"}

	mapped := Map(env, func(e Event) string { return e.Name })

	assert.Equal(t, "signup", mapped.Payload)
	assert.Equal(t, "string", mapped.Meta.CorrelationID.Label(), "correlation id is relabeled")
	assert.Equal(t, env.Meta.CorrelationID.Value(), mapped.Meta.CorrelationID.Value())
	assert.True(t, env.Meta.ReceivedAt.Equal(mapped.Meta.ReceivedAt))
	assert.Equal(t, env.Meta.Custom, mapped.Meta.Custom)
}

func TestDecodeCBORError(t *testing.T) {
	_, err := DecodeCBOR[Event]([]byte{0xff, 0x00})
	assert.Error(t, err)
}
