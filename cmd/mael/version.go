package main

import (
	"fmt"

	"github.com/aretw0/mael"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mael",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mael version %s\n", mael.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
