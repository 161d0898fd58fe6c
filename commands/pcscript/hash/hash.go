// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hash

import (
	"encoding/hex"
	"fmt"

	root "github.com/BOXFoundation/paircommit/commands/pcscript/root"
	"github.com/BOXFoundation/paircommit/crypto"
	"github.com/spf13/cobra"
)

// Output formats of the hash command.
const (
	FormatHex         = "hex"
	FormatBase58Check = "base58check"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Print the PairCommit domain tag, SHA256(\"" + crypto.PairCommitTagName + "\").",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), crypto.PairCommitTag)
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash <x1> <x2>",
	Short: "Compute PairCommitHash(x1, x2).",
	Long: `Compute the commitment OP_PAIRCOMMIT pushes for the stack x1 x2, where x2
is the top element. Operands are taken as text unless --hex is set.`,
	Args: cobra.ExactArgs(2),
	RunE: runHash,
}

func init() {
	root.RootCmd.AddCommand(tagCmd, hashCmd)

	hashCmd.Flags().Bool("hex", false, "operands are hex encoded")
	hashCmd.Flags().String("format", FormatHex, "output format [hex|base58check]")
}

func runHash(cmd *cobra.Command, args []string) error {
	isHex, err := cmd.Flags().GetBool("hex")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	x1, x2 := []byte(args[0]), []byte(args[1])
	if isHex {
		if x1, err = hex.DecodeString(args[0]); err != nil {
			return fmt.Errorf("invalid x1: %v", err)
		}
		if x2, err = hex.DecodeString(args[1]); err != nil {
			return fmt.Errorf("invalid x2: %v", err)
		}
	}

	digest := crypto.PairCommitHash(x1, x2)
	switch format {
	case FormatHex:
		fmt.Fprintln(cmd.OutOrStdout(), digest)
	case FormatBase58Check:
		fmt.Fprintln(cmd.OutOrStdout(), crypto.Base58CheckEncode(digest[:]))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
