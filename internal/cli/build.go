package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/mael"
	"github.com/aretw0/mael/pkg/observability"
)

// BuildOptions contains all the configuration for the build command.
type BuildOptions struct {
	RepoPath    string
	Environment string
	Format      string
	Strict      bool
	Debug       bool
	MetricsFile string
	Out         io.Writer
}

// RunBuild converts the project at opts.RepoPath and returns the output path.
func RunBuild(ctx context.Context, opts BuildOptions) (string, error) {
	logger := createLogger(opts.Debug)

	convOpts := []mael.Option{
		mael.WithLogger(logger),
		mael.WithEnvironment(opts.Environment),
		mael.WithStrict(opts.Strict),
	}
	if opts.Format != "" {
		convOpts = append(convOpts, mael.WithFormat(opts.Format))
	}
	if opts.Debug {
		convOpts = append(convOpts, mael.WithLifecycleHooks(createDebugHooks(logger)))
	}

	var metrics *observability.Metrics
	if opts.MetricsFile != "" {
		metrics = observability.NewMetrics()
		convOpts = append(convOpts, mael.WithMetrics(metrics))
	}

	conv, err := mael.New(opts.RepoPath, convOpts...)
	if err != nil {
		return "", fmt.Errorf("error initializing mael: %w", err)
	}

	path, err := conv.Convert(ctx)
	if err != nil {
		return "", err
	}

	if metrics != nil {
		if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
			return path, fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if opts.Out != nil {
		printSystemMessage(opts.Out, "Saved %s", path)
	}
	return path, nil
}
