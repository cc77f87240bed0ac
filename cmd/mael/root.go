package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mael",
	Short: "Markdown to spreadsheet converter",
	Long: `Mael turns a directory of structured markdown documents into a workbook
(one sheet per document) or delimited text files, shaped by a column schema.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the mael project")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

// projectDir resolves the project directory: an explicit --dir wins over the
// first positional argument.
func projectDir(cmd *cobra.Command, args []string) string {
	dir, _ := cmd.Flags().GetString("dir")
	if !cmd.Flags().Changed("dir") && len(args) > 0 {
		dir = args[0]
	}
	return dir
}
