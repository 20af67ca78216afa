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

package pretty

import (
	"fmt"
)

// DefaultAlphabet is the base-23 digit set used for encoded segments. It
// excludes letters that are easily misread (I, O and W).
const DefaultAlphabet = "ABCDEFGHJKLMNPQRSTUVXYZ"

// Alphabet is an ordered set of unique characters defining the digits of a
// base-N numeral system.
type Alphabet struct {
	elements string
	index    map[byte]int
}

// NewAlphabet builds an Alphabet from chars. It returns an error when fewer
// than two characters are supplied or any character repeats; an alphabet
// with ambiguous digit positions would decode inconsistently.
func NewAlphabet(chars string) (Alphabet, error) {
	if len(chars) < 2 {
		return Alphabet{}, fmt.Errorf("alphabet needs at least 2 characters, got %d", len(chars))
	}
	index := make(map[byte]int, len(chars))
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if _, dup := index[c]; dup {
			return Alphabet{}, fmt.Errorf("alphabet contains duplicate character %q", string(c))
		}
		index[c] = i
	}
	return Alphabet{elements: chars, index: index}, nil
}

// MustAlphabet is NewAlphabet for character sets known to be valid.
func MustAlphabet(chars string) Alphabet {
	a, err := NewAlphabet(chars)
	if err != nil {
		panic(err)
	}
	return a
}

// Base returns the number of digits in the alphabet.
func (a Alphabet) Base() int { return len(a.elements) }

func (a Alphabet) String() string { return a.elements }

// valueOf returns the character at ordinal pos. Positions only ever come
// from Encode's own arithmetic, so an out-of-range pos is a caller bug and
// panics rather than being reported as a recoverable error.
func (a Alphabet) valueOf(pos int) byte {
	if pos < 0 || pos >= len(a.elements) {
		panic(fmt.Sprintf("pretty: alphabet position %d out of range for base %d", pos, len(a.elements)))
	}
	return a.elements[pos]
}

// indexOf returns the ordinal of c and whether c belongs to the alphabet.
// Unlike valueOf, membership is driven by external input, so the miss case
// is recoverable.
func (a Alphabet) indexOf(c byte) (int, bool) {
	i, ok := a.index[c]
	return i, ok
}
