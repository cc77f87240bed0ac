package main

import (
	"fmt"
	"os"

	"github.com/aretw0/mael"
	"github.com/aretw0/mael/internal/cli"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build [dir]",
	Short: "Convert the project's markdown documents",
	Long: `Parses every markdown document of the project, shapes the steps against
config/columns.yml and writes the result under <dir>/output.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env, _ := cmd.Flags().GetString("environment")
		format, _ := cmd.Flags().GetString("format")
		strict, _ := cmd.Flags().GetBool("strict")
		metricsFile, _ := cmd.Flags().GetString("metrics-file")
		debug, _ := cmd.Flags().GetBool("debug")

		_, err := cli.RunBuild(cmd.Context(), cli.BuildOptions{
			RepoPath:    projectDir(cmd, args),
			Environment: env,
			Format:      format,
			Strict:      strict,
			Debug:       debug,
			MetricsFile: metricsFile,
			Out:         os.Stdout,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("environment", "e", "", "Variable environment (reads config/variables_<env>.ini)")
	buildCmd.Flags().StringP("format", "f", mael.DefaultFormat, "Output format: excel, xlsx, csv or tsv")
	buildCmd.Flags().Bool("strict", false, "Fail on documents without a title or summary")
	buildCmd.Flags().String("metrics-file", "", "Write Prometheus metrics of the run to this file")
}
