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
	crand "crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// InlineULIDGenerator produces ULIDs with the library's shared entropy.
type InlineULIDGenerator struct{}

var _ Generator = &InlineULIDGenerator{}

func (i *InlineULIDGenerator) NextRep() string {
	return ulid.Make().String()
}

// ULIDGenerator produces ULIDs with monotonic entropy: ids generated
// within the same millisecond still sort in generation order. Not safe for
// concurrent use.
type ULIDGenerator struct {
	entropy *ulid.MonotonicEntropy
}

var _ Generator = &ULIDGenerator{}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		entropy: ulid.Monotonic(crand.Reader, 0),
	}
}

func (u *ULIDGenerator) Make(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), u.entropy).String()
}

func (u *ULIDGenerator) NextRep() string {
	return u.Make(time.Now())
}
