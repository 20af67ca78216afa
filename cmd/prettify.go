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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/tagid/internal/logctx"
)

var prettifyCmd = &cobra.Command{
	Use:   "prettify SEED...",
	Short: "Convert numeric id seeds to their readable representation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPrettifier()
		if err != nil {
			return err
		}
		logger := logctx.FromContext(cmd.Context())

		for _, arg := range args {
			seed, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("parsing seed %q: %w", arg, err)
			}
			if seed < 0 {
				return fmt.Errorf("seed %d is negative", seed)
			}
			rep := p.Prettify(seed)
			logger.Debug("prettified seed", slog.Int64("seed", seed), slog.String("id", rep))
			fmt.Fprintln(cmd.OutOrStdout(), rep)
		}
		return nil
	},
}
