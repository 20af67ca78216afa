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
	"os"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/tagid/config"
	"github.com/cardinalhq/tagid/internal/logctx"
	"github.com/cardinalhq/tagid/pretty"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tagid",
	Short: "Generate and convert human-friendly identifiers",
	Long:  `Convert numeric id seeds to checksummed, readable representations and back, and generate fresh ids in a variety of formats.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx := logctx.WithLogger(cmd.Context(), logger)
		cmd.SetContext(logctx.With(ctx, slog.String("command", cmd.Name())))
	},
}

func init() {
	rootCmd.AddCommand(prettifyCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadPrettifier builds a prettifier from the effective configuration.
func loadPrettifier() (*pretty.Prettifier, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return pretty.New(cfg.Pretty)
}
