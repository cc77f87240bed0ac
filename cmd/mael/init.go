package main

import (
	"fmt"
	"os"

	"github.com/aretw0/mael/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a new project from a template",
	Long:  `Writes a project skeleton (sample document, column schema, variables and ignore list) into the directory.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		template, _ := cmd.Flags().GetString("template")

		_, err := cli.RunInit(cli.InitOptions{
			Dir:         projectDir(cmd, args),
			Template:    template,
			Interactive: term.IsTerminal(int(os.Stdin.Fd())),
			In:          os.Stdin,
			Out:         os.Stdout,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("template", "t", "", "Template to use: normal or test_case")
}
