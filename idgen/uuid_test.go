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

package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_NextRep(t *testing.T) {
	gen := &UUIDGenerator{}

	rep := gen.NextRep()
	parsed, err := uuid.Parse(rep)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestUUIDToBase36(t *testing.T) {
	tests := []struct {
		name string
		id   uuid.UUID
		want string
	}{
		{
			name: "mixed",
			id:   uuid.MustParse("123e4567-e89b-12d3-a456-426614174001"),
			want: "12vqjrnxk8whv3i8qi6qgrlz5",
		},
		{
			name: "nil uuid",
			id:   uuid.MustParse("00000000-0000-0000-0000-000000000000"),
			want: "0000000000000000000000000",
		},
		{
			name: "all bits set",
			id:   uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"),
			want: "f5lxx1zz5pnorynqglhzmsp33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UUIDToBase36(tt.id)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 25)
		})
	}
}

func TestBase36ToUUID(t *testing.T) {
	got, err := Base36ToUUID("12vqjrnxk8whv3i8qi6qgrlz5")
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse("123e4567-e89b-12d3-a456-426614174001"), got)

	_, err = Base36ToUUID("not base36!")
	assert.Error(t, err)

	_, err = Base36ToUUID("zzzzzzzzzzzzzzzzzzzzzzzzz")
	assert.Error(t, err, "value exceeds 128 bits")
}

func TestUUIDBase36RoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		original := uuid.New()

		recovered, err := Base36ToUUID(UUIDToBase36(original))
		require.NoError(t, err)
		assert.Equal(t, original, recovered)
	}
}
