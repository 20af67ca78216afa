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

import "errors"

// ErrChecksum reports a digit string whose Damm check digit does not
// validate.
var ErrChecksum = errors.New("damm checksum mismatch")

// dammTable is the Damm algorithm quasi-group: a 10x10 table with a zero
// diagonal. Scanning a digit string through it detects every single-digit
// substitution and every adjacent-digit transposition.
var dammTable = [10][10]int{
	{0, 3, 1, 7, 5, 9, 8, 6, 4, 2},
	{7, 0, 9, 2, 1, 5, 4, 8, 6, 3},
	{4, 2, 0, 6, 8, 7, 1, 3, 5, 9},
	{1, 7, 5, 0, 9, 8, 3, 4, 2, 6},
	{6, 1, 2, 3, 0, 4, 5, 9, 7, 8},
	{3, 6, 7, 4, 2, 0, 9, 5, 8, 1},
	{5, 8, 6, 9, 7, 2, 0, 1, 3, 4},
	{8, 9, 4, 5, 3, 6, 2, 0, 1, 7},
	{9, 4, 3, 8, 6, 1, 7, 2, 0, 5},
	{2, 5, 8, 1, 4, 3, 6, 7, 9, 0},
}

// Checksum computes the Damm check digit over the ASCII decimal digits of
// rep. Non-digit characters are skipped and leave the interim state
// untouched, so delimiters and alphabet-encoded segments never contribute.
func Checksum(rep string) int {
	interim := 0
	for i := 0; i < len(rep); i++ {
		c := rep[i]
		if c >= '0' && c <= '9' {
			interim = dammTable[interim][c-'0']
		}
	}
	return interim
}

// EncodeChecksum returns rep with its Damm check digit appended.
func EncodeChecksum(rep string) string {
	return rep + string(byte('0'+Checksum(rep)))
}

// IsValidChecksum reports whether rep, including its own trailing check
// digit, scans back to the zero state.
func IsValidChecksum(rep string) bool {
	return Checksum(rep) == 0
}

// DecodeChecksum strips the trailing check digit from rep when it
// validates.
func DecodeChecksum(rep string) (string, error) {
	if rep == "" || !IsValidChecksum(rep) {
		return "", ErrChecksum
	}
	return rep[:len(rep)-1], nil
}
