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
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cardinalhq/tagid/idgen"
)

var (
	generateKind  string
	generateCount int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate fresh ids",
	Long:  `Generate one or more fresh ids. Supported kinds: flake, pretty, ulid, uuid, uuid36, cuid, short.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if generateCount < 1 {
			return fmt.Errorf("count must be positive, got %d", generateCount)
		}

		next, err := generatorFor(generateKind)
		if err != nil {
			return err
		}
		for i := 0; i < generateCount; i++ {
			fmt.Fprintln(cmd.OutOrStdout(), next())
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateKind, "kind", "pretty", "id kind to generate")
	generateCmd.Flags().IntVar(&generateCount, "count", 1, "number of ids to generate")
}

func generatorFor(kind string) (func() string, error) {
	switch kind {
	case "flake":
		gen, err := idgen.NewFlakeGenerator()
		if err != nil {
			return nil, err
		}
		return gen.NextRep, nil
	case "pretty":
		gen, err := idgen.NewFlakeGenerator()
		if err != nil {
			return nil, err
		}
		p, err := loadPrettifier()
		if err != nil {
			return nil, err
		}
		return func() string { return gen.NextPrettyID(p) }, nil
	case "ulid":
		gen := idgen.NewULIDGenerator()
		return gen.NextRep, nil
	case "uuid":
		gen := &idgen.UUIDGenerator{}
		return gen.NextRep, nil
	case "uuid36":
		return func() string { return idgen.UUIDToBase36(uuid.New()) }, nil
	case "cuid":
		gen := &idgen.CUIDGenerator{}
		return gen.NextRep, nil
	case "short":
		gen := &idgen.ShortBase32Generator{}
		return gen.NextRep, nil
	default:
		return nil, fmt.Errorf("unknown id kind %q", kind)
	}
}
