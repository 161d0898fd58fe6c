// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pcscript

import (
	"fmt"
	"os"

	_ "github.com/BOXFoundation/paircommit/commands/pcscript/eval" // init eval and disasm cmd
	_ "github.com/BOXFoundation/paircommit/commands/pcscript/hash" // init tag and hash cmd
	root "github.com/BOXFoundation/paircommit/commands/pcscript/root"
	_ "github.com/BOXFoundation/paircommit/commands/pcscript/vectors" // init vectors cmd
)

// Execute is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := root.RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
