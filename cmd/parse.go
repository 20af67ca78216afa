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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/tagid/internal/logctx"
)

var parseCmd = &cobra.Command{
	Use:   "parse ID...",
	Short: "Recover the numeric seed from a readable id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPrettifier()
		if err != nil {
			return err
		}
		logger := logctx.FromContext(cmd.Context())

		for _, arg := range args {
			seed, err := p.ToIDSeed(arg)
			if err != nil {
				logger.Error("failed to parse id", slog.String("id", arg), slog.Any("error", err))
				return fmt.Errorf("parsing id %q: %w", arg, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), seed)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate ID...",
	Short: "Check readable ids for alphabet and checksum validity",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPrettifier()
		if err != nil {
			return err
		}

		invalid := 0
		for _, arg := range args {
			if p.IsValid(arg) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", arg)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid\n", arg)
				invalid++
			}
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d ids failed validation", invalid, len(args))
		}
		return nil
	},
}
