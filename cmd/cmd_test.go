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

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPrettifyAndParse(t *testing.T) {
	out, err := execute(t, "prettify", "824227036833910784")
	require.NoError(t, err)
	assert.Equal(t, "ARPJ-27036-GVQS-07849\n", out)

	out, err = execute(t, "parse", "ARPJ-27036-GVQS-07849")
	require.NoError(t, err)
	assert.Equal(t, "824227036833910784\n", out)
}

func TestPrettifyRejectsNegative(t *testing.T) {
	_, err := execute(t, "prettify", "-5")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", "ARPJ-27036-GVQS-07849")
	require.NoError(t, err)
	assert.Contains(t, out, "valid")

	_, err = execute(t, "validate", "ARPJ-27036-GVQS-07848")
	assert.Error(t, err)
}

func TestGenerateKinds(t *testing.T) {
	for _, kind := range []string{"flake", "pretty", "ulid", "uuid", "uuid36", "cuid", "short"} {
		t.Run(kind, func(t *testing.T) {
			out, err := execute(t, "generate", "--kind", kind, "--count", "3")
			require.NoError(t, err)
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			assert.Len(t, lines, 3)
			for _, line := range lines {
				assert.NotEmpty(t, line)
			}
		})
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	_, err := execute(t, "generate", "--kind", "bogus")
	assert.Error(t, err)
}
