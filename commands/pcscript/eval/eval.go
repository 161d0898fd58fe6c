// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eval

import (
	"encoding/hex"
	"fmt"
	"strings"

	root "github.com/BOXFoundation/paircommit/commands/pcscript/root"
	"github.com/BOXFoundation/paircommit/script"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <asm>...",
	Short: "Run a script and print its result and final stack.",
	Long: `Run a script written in assembly. Arguments are joined by spaces, so the
script may be quoted as a whole or passed as separate tokens. Tokens are
opcode names with or without OP_, hex pushes (0x forces hex), or 'quoted text'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

var disasmCmd = &cobra.Command{
	Use:   "disasm <hex>",
	Short: "Disassemble a hex encoded script.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := script.NewScriptFromHex(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Disasm())
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(evalCmd, disasmCmd)

	evalCmd.Flags().String("sighash", "", "hex encoded 32-byte digest checked by OP_CHECKSIG")
}

func runEval(cmd *cobra.Command, args []string) error {
	if _, err := root.LoadConfig(); err != nil {
		return err
	}
	flags, err := root.ScriptFlags()
	if err != nil {
		return err
	}
	s, err := script.ParseAsm(strings.Join(args, " "))
	if err != nil {
		return err
	}

	var opts []script.EngineOption
	if sigHashHex, _ := cmd.Flags().GetString("sighash"); sigHashHex != "" {
		sigHash, err := hex.DecodeString(sigHashHex)
		if err != nil {
			return fmt.Errorf("invalid sighash: %v", err)
		}
		opts = append(opts, script.WithSigHash(sigHash))
	}

	vm, err := script.NewEngine(s, flags, opts...)
	if err != nil {
		return err
	}
	execErr := vm.Execute()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "script: %s\n", s.Disasm())
	fmt.Fprintf(out, "flags:  %s\n", flags)
	fmt.Fprintf(out, "result: %s\n", script.ErrorName(execErr))
	fmt.Fprintln(out, "stack:")
	for _, item := range vm.Stack() {
		fmt.Fprintf(out, "  %s\n", hex.EncodeToString(item))
	}
	return execErr
}
