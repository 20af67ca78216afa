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
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

const (
	// DefaultPartsSize is the default number of decimal digits per segment.
	DefaultPartsSize = 5

	// DefaultDelimiter joins the converted segments.
	DefaultDelimiter = "-"

	// maxSeedDigits covers the decimal digit count of any positive 64-bit
	// seed plus its check digit, with headroom. Segment lists are padded to
	// ceil(maxSeedDigits / PartsSize) placeholder segments so the output
	// shape is constant for any seed magnitude.
	maxSeedDigits = 20
)

// ErrInvalidID reports a pretty string whose reconstructed digit string
// fails checksum validation, has a malformed segment, or contains a
// character outside the alphabet.
var ErrInvalidID = errors.New("not a valid id")

// Config is the construction surface for a Prettifier.
type Config struct {
	Alphabet     string `mapstructure:"alphabet"`
	PartsSize    int    `mapstructure:"parts_size"`
	Delimiter    string `mapstructure:"delimiter"`
	LeadingZeros bool   `mapstructure:"leading_zeros"`
}

// DefaultConfig returns the stock configuration: base-23 alphabet, five
// digits per segment, dash delimiter, leading zeros on.
func DefaultConfig() Config {
	return Config{
		Alphabet:     DefaultAlphabet,
		PartsSize:    DefaultPartsSize,
		Delimiter:    DefaultDelimiter,
		LeadingZeros: true,
	}
}

// Prettifier converts 64-bit seeds into delimited, checksum-protected
// strings and back. It holds no mutable state; every method is a pure
// function of the configuration and its input.
//
// ZeroChar and MaxEncoderLength are derived from Encoder and PartsSize;
// New and FromAlphabet compute them. The fields are exported so a variant
// can be derived by copying an existing Prettifier and overriding
// individual fields, in which case the derived values are deliberately
// kept.
type Prettifier struct {
	// Encoder converts segment values to and from their encoded form.
	Encoder Codec

	// PartsSize is the number of decimal digits per segment.
	PartsSize int

	// Delimiter joins the converted segments.
	Delimiter string

	// LeadingZeros pads every seed to a constant segment count and width.
	LeadingZeros bool

	// ZeroChar is the first character of Encoder.Encode(0), used to pad
	// encoded segments.
	ZeroChar byte

	// MaxEncoderLength is the width encoded segments are padded to: the
	// length of the longest encoding of a PartsSize-digit decimal value.
	MaxEncoderLength int
}

// New builds a Prettifier from cfg and computes the derived fields.
func New(cfg Config) (*Prettifier, error) {
	if cfg.PartsSize < 1 || cfg.PartsSize > 18 {
		return nil, fmt.Errorf("parts size must be in [1, 18], got %d", cfg.PartsSize)
	}
	if cfg.Delimiter == "" {
		return nil, errors.New("delimiter must not be empty")
	}
	alphabet, err := NewAlphabet(cfg.Alphabet)
	if err != nil {
		return nil, err
	}
	encoder := NewAlphabetCodec(alphabet)
	p := &Prettifier{
		Encoder:      encoder,
		PartsSize:    cfg.PartsSize,
		Delimiter:    cfg.Delimiter,
		LeadingZeros: cfg.LeadingZeros,
	}
	p.ZeroChar = encoder.Encode(0)[0]
	p.MaxEncoderLength = len(encoder.Encode(pow10(cfg.PartsSize) - 1))
	return p, nil
}

// FromAlphabet builds a Prettifier over alphabet with the stock segment
// size, delimiter and padding settings.
func FromAlphabet(alphabet Alphabet) *Prettifier {
	encoder := NewAlphabetCodec(alphabet)
	p := &Prettifier{
		Encoder:      encoder,
		PartsSize:    DefaultPartsSize,
		Delimiter:    DefaultDelimiter,
		LeadingZeros: true,
	}
	p.ZeroChar = encoder.Encode(0)[0]
	p.MaxEncoderLength = len(encoder.Encode(pow10(DefaultPartsSize) - 1))
	return p
}

func pow10(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// Prettify renders seed as a delimited, checksum-protected string. The
// seed must be non-negative; the upstream generators only produce
// non-negative values.
func (p *Prettifier) Prettify(seed int64) string {
	parts := p.divide(EncodeChecksum(strconv.FormatInt(seed, 10)))
	if p.LeadingZeros {
		parts = p.padPartsList(parts)
	}
	return p.convertParts(parts)
}

// ToIDSeed decodes a pretty string back into its seed. It returns an error
// wrapping ErrInvalidID when the checksum does not validate or a segment
// cannot be decoded, and a wrapped strconv error when the validated digit
// string does not parse as a 64-bit integer. It never panics, whatever the
// input.
func (p *Prettifier) ToIDSeed(rep string) (int64, error) {
	checked, err := p.decodeWithCheckDigit(rep)
	if err != nil || checked == "" || !IsValidChecksum(checked) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, rep)
	}
	seed, err := strconv.ParseInt(checked[:len(checked)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing id seed: %w", err)
	}
	return seed, nil
}

// IsValid reports whether rep is a well-formed, untampered pretty string,
// without decoding it to a seed.
func (p *Prettifier) IsValid(rep string) bool {
	checked, err := p.decodeWithCheckDigit(rep)
	return err == nil && checked != "" && IsValidChecksum(checked)
}

// divide chunks rep into PartsSize-character segments counted from the
// least significant (rightmost) end; the leftmost segment may be shorter.
// Segments come back in original left-to-right digit order.
func (p *Prettifier) divide(rep string) []string {
	parts := make([]string, 0, (len(rep)+p.PartsSize-1)/p.PartsSize)
	for end := len(rep); end > 0; end -= p.PartsSize {
		start := max(end-p.PartsSize, 0)
		parts = append(parts, rep[start:end])
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return parts
}

// padPartsList prepends "0" placeholder segments until the segment count
// reaches ceil(maxSeedDigits / PartsSize).
func (p *Prettifier) padPartsList(parts []string) []string {
	maxParts := (maxSeedDigits + p.PartsSize - 1) / p.PartsSize
	if len(parts) >= maxParts {
		return parts
	}
	padded := make([]string, 0, maxParts)
	for i := 0; i < maxParts-len(parts); i++ {
		padded = append(padded, "0")
	}
	return append(padded, parts...)
}

// convertParts renders each segment either directly (zero-padded decimal)
// or through the encoder (padded with ZeroChar), then joins them. The
// alternation parity is anchored on the total segment count, so the
// encoded and direct roles are stable regardless of how many placeholder
// segments padding added.
func (p *Prettifier) convertParts(parts []string) string {
	encodeOdd := len(parts)%2 == 0
	converted := make([]string, len(parts))
	for i, part := range parts {
		if direct := (i%2 != 0) == encodeOdd; direct {
			if p.LeadingZeros {
				part = padLeft(part, '0', p.PartsSize)
			}
			converted[i] = part
			continue
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			// Segments are carved out of a decimal string we rendered
			// ourselves; a non-numeric segment cannot be reached from any
			// input.
			panic(fmt.Sprintf("pretty: internal segment %q is not numeric: %v", part, err))
		}
		encoded := p.Encoder.Encode(n)
		if p.LeadingZeros {
			encoded = padLeft(encoded, p.ZeroChar, p.MaxEncoderLength)
		}
		converted[i] = encoded
	}
	return strings.Join(converted, p.Delimiter)
}

// decodeWithCheckDigit reassembles the checksummed decimal string from a
// pretty string: split on the delimiter, recompute the alternation parity
// from the part count, decode the encoded parts and left-pad their decimal
// value back to PartsSize.
func (p *Prettifier) decodeWithCheckDigit(rep string) (string, error) {
	parts := strings.Split(rep, p.Delimiter)
	keepEven := len(parts)%2 != 0
	var sb strings.Builder
	for i, part := range parts {
		if (i%2 == 0) == keepEven {
			sb.WriteString(part)
			continue
		}
		n, err := p.Encoder.Decode(part)
		if err != nil {
			return "", err
		}
		sb.WriteString(padLeft(strconv.FormatInt(n, 10), '0', p.PartsSize))
	}
	return sb.String(), nil
}

// padLeft pads s on the most-significant side to width.
func padLeft(s string, pad byte, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(pad), width-len(s)) + s
}

var (
	defaultMu         sync.Mutex
	defaultPrettifier atomic.Pointer[Prettifier]
)

// Initialize constructs the process-wide default Prettifier over alphabet.
// The first call wins; concurrent and later calls all observe the same
// fully constructed instance.
func Initialize(alphabet Alphabet) *Prettifier {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if p := defaultPrettifier.Load(); p != nil {
		return p
	}
	p := FromAlphabet(alphabet)
	defaultPrettifier.Store(p)
	return p
}

// Default returns the process-wide Prettifier. It panics when called
// before Initialize.
func Default() *Prettifier {
	p := defaultPrettifier.Load()
	if p == nil {
		panic("pretty: default prettifier is not initialized - call pretty.Initialize first")
	}
	return p
}
