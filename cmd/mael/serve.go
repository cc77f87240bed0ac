package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/mael"
	httpAdapter "github.com/aretw0/mael/pkg/adapters/http"
	"github.com/aretw0/mael/pkg/observability"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Start the read-only HTTP inspection server",
	Long:  `Exposes the project's shaped documents as JSON over HTTP. Every request re-reads the project.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := projectDir(cmd, args)
		port, _ := cmd.Flags().GetString("port")
		env, _ := cmd.Flags().GetString("environment")

		metrics := observability.NewMetrics()
		conv, err := mael.New(dir, mael.WithEnvironment(env), mael.WithMetrics(metrics))
		if err != nil {
			fmt.Printf("Error initializing mael: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(conv, mael.Version(), metrics.Handler())

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting mael server on %s\n", srv.Addr)
			fmt.Printf("Serving documents from: %s\n", conv.Dir())
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("mael server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().StringP("environment", "e", "", "Variable environment (reads config/variables_<env>.ini)")
}
