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
	"errors"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/sony/sonyflake"

	"github.com/cardinalhq/tagid/pretty"
)

// SonyFlakeGenerator produces positive, roughly time-ordered 64-bit seeds.
// These are the canonical input for pretty.Prettifier.
type SonyFlakeGenerator struct {
	sf *sonyflake.Sonyflake
}

var _ Generator = &SonyFlakeGenerator{}

func NewFlakeGenerator() (*SonyFlakeGenerator, error) {
	settings := sonyflake.Settings{
		StartTime: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	sf, err := sonyflake.New(settings)
	if err != nil {
		return nil, err
	}
	if sf == nil {
		return nil, errors.New("failed to create Sonyflake instance")
	}
	return &SonyFlakeGenerator{sf: sf}, nil
}

// NextID returns a positive int64 that'll increase roughly in time order.
func (sf *SonyFlakeGenerator) NextID() int64 {
	v, err := sf.sf.NextID()
	if err != nil {
		return rand.Int63()
	}
	return int64(v)
}

// NextRep renders the next seed in decimal.
func (sf *SonyFlakeGenerator) NextRep() string {
	return strconv.FormatInt(sf.NextID(), 10)
}

// NextPrettyID renders the next seed through p.
func (sf *SonyFlakeGenerator) NextPrettyID(p *pretty.Prettifier) string {
	return p.Prettify(sf.NextID())
}

var defaultFlake = sync.OnceValues(NewFlakeGenerator)

// NextFlakeID returns a seed from the process-wide generator.
func NextFlakeID() (int64, error) {
	gen, err := defaultFlake()
	if err != nil {
		return 0, err
	}
	return gen.NextID(), nil
}
