// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vectors

import (
	"fmt"

	root "github.com/BOXFoundation/paircommit/commands/pcscript/root"
	"github.com/BOXFoundation/paircommit/script"
	"github.com/spf13/cobra"
)

var vectorsCmd = &cobra.Command{
	Use:   "vectors <file>",
	Short: "Check a JSON file of PairCommit hash and script vectors.",
	Long: `Check every vector in the file. Hash vectors recompute PairCommitHash and
script vectors run with their own flags on the configured worker pool; the
--flags option does not apply to them.`,
	Args: cobra.ExactArgs(1),
	RunE: runVectors,
}

func init() {
	root.RootCmd.AddCommand(vectorsCmd)
}

func runVectors(cmd *cobra.Command, args []string) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	vectors, err := script.LoadVectors(args[0])
	if err != nil {
		return err
	}
	validator, err := cfg.Script.NewValidator()
	if err != nil {
		return err
	}

	failures := vectors.Run(validator)
	out := cmd.OutOrStdout()
	for _, f := range failures {
		fmt.Fprintf(out, "FAIL %s vector %d: %v\n", f.Kind, f.Index, f.Err)
	}
	fmt.Fprintf(out, "%d hash vectors, %d script vectors, %d failed\n",
		len(vectors.Hash), len(vectors.Script), len(failures))
	if len(failures) > 0 {
		return fmt.Errorf("%d vectors failed", len(failures))
	}
	return nil
}
