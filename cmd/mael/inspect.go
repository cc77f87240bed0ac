package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/mael/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [dir]",
	Short: "Browse the shaped documents interactively",
	Long:  `Starts a small REPL to list the project's documents and preview their summary and rows.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env, _ := cmd.Flags().GetString("environment")
		strict, _ := cmd.Flags().GetBool("strict")
		debug, _ := cmd.Flags().GetBool("debug")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		err := cli.RunInspect(sigCtx, cli.InspectOptions{
			RepoPath:    projectDir(cmd, args),
			Environment: env,
			Strict:      strict,
			Debug:       debug,
			In:          os.Stdin,
			Out:         os.Stdout,
		})
		if sig := sigCtx.Signal(); sig != nil {
			fmt.Printf("\n>>> Interrupted (%v).\n", sig)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("environment", "e", "", "Variable environment (reads config/variables_<env>.ini)")
	inspectCmd.Flags().Bool("strict", false, "Fail on documents without a title or summary")
}
