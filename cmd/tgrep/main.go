package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/tgrep"
	"github.com/npillmayer/tgrep/parsetree"
	"github.com/spf13/cobra"
)

var (
	showPositions bool
	renderTrees   bool
)

var rootCmd = &cobra.Command{
	Use:   "tgrep PATTERN [FILE...]",
	Short: "tgrep searches parse trees for nodes matching a TGrep2-style pattern",
	Long: `tgrep reads parse trees in bracketed notation, one per non-blank line,
and prints every node matching the given pattern. With no FILE arguments,
trees are read from standard input.`,
	Example: `  echo "(S (NP (DT the) (NN dog)) (VP barks))" | tgrep 'NP < NN'`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&showPositions, "positions", "p", false,
		"print tree addresses instead of subtrees")
	rootCmd.Flags().BoolVarP(&renderTrees, "render", "t", false,
		"render matching subtrees as branch diagrams")
}

func run(cmd *cobra.Command, args []string) error {
	pat, err := tgrep.Compile(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return search(pat, os.Stdin, "-")
	}
	for _, name := range args[1:] {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = search(pat, f, name)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// search reads one bracketed tree per non-blank line and prints the matches.
func search(pat *tgrep.Pattern, r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		root, err := parsetree.Parse(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineno, err)
		}
		if showPositions {
			for _, address := range pat.Positions(root) {
				fmt.Printf("%s:%d: %v\n", name, lineno, address)
			}
			continue
		}
		for _, n := range pat.Nodes(root) {
			if renderTrees {
				fmt.Printf("%s:%d:\n%s", name, lineno, parsetree.Sprint(n))
			} else {
				fmt.Printf("%s:%d: %s\n", name, lineno, n)
			}
		}
	}
	return scanner.Err()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
