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
	"errors"
	"fmt"
)

// ErrInvalidCharacter reports a character outside the codec's alphabet.
var ErrInvalidCharacter = errors.New("character not in alphabet")

// Codec converts non-negative integers to and from a positional string
// representation.
type Codec interface {
	// Encode renders n most-significant digit first, with no extraneous
	// leading digits. Encode(0) is the single character at ordinal 0.
	// n must be non-negative; a negative n is a programming error.
	Encode(n int64) string

	// Decode is the inverse of Encode. Extra leading zero-digit characters
	// are accepted and do not change the value.
	Decode(rep string) (int64, error)
}

// AlphabetCodec is a stateless base-N Codec over an Alphabet.
type AlphabetCodec struct {
	alphabet Alphabet
}

var _ Codec = AlphabetCodec{}

func NewAlphabetCodec(alphabet Alphabet) AlphabetCodec {
	return AlphabetCodec{alphabet: alphabet}
}

// NewDefaultCodec returns an AlphabetCodec over DefaultAlphabet.
func NewDefaultCodec() AlphabetCodec {
	return NewAlphabetCodec(MustAlphabet(DefaultAlphabet))
}

func (c AlphabetCodec) Alphabet() Alphabet { return c.alphabet }

func (c AlphabetCodec) Encode(n int64) string {
	if n < 0 {
		panic(fmt.Sprintf("pretty: cannot encode negative value %d", n))
	}
	base := int64(c.alphabet.Base())
	buf := make([]byte, 0, 16)
	for {
		buf = append(buf, c.alphabet.valueOf(int(n%base)))
		n /= base
		if n == 0 {
			break
		}
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

func (c AlphabetCodec) Decode(rep string) (int64, error) {
	base := int64(c.alphabet.Base())
	var result int64
	placement := int64(1)
	for i := len(rep) - 1; i >= 0; i-- {
		digit, ok := c.alphabet.indexOf(rep[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, string(rep[i]))
		}
		result += int64(digit) * placement
		placement *= base
	}
	return result, nil
}
