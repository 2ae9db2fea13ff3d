//go:build docgen

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newDocGenCommand(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:    "docgen",
		Short:  "Generate documentation",
		Hidden: true,
	}

	var dir string

	man := &cobra.Command{
		Use:   "man",
		Short: "Generate man pages",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			hdr := &doc.GenManHeader{
				Title:   "THERMO",
				Section: "1",
			}
			if err := os.MkdirAll(dir, 0750); err != nil {
				return err
			}
			return doc.GenManTree(root, hdr, dir)
		},
	}
	man.Flags().StringVarP(&dir, "dir", "d", "docs/man", "Output directory")

	cmd.AddCommand(man)

	return cmd
}

func init() {
	subcommands = append(subcommands, newDocGenCommand)
}
