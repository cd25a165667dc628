// Version command for the d4count CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quartic/pkg/quartic"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the d4count version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("d4count", quartic.Version)
	},
}
