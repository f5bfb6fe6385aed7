package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/learnsite/internal/config"
	"github.com/ziadkadry99/learnsite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static snapshot of the learning site",
	Long:  `Renders every course, lesson and tutorial page to static HTML files. With --watch, rebuilds whenever the content directory changes.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().Bool("watch", false, "rebuild when content changes")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	watch, _ := cmd.Flags().GetBool("watch")
	if watch && cfg.ContentURL != "" {
		return fmt.Errorf("--watch needs a local content_dir, not content_url")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A snapshot carries no visitor state.
	a, err := newApp(ctx, cfg, config.StoreDisabled)
	if err != nil {
		return err
	}
	defer a.Close()

	builder := site.NewBuilder(outputDir, a.pages, a.renderer, a.assets)
	builder.Reporter = site.NewReporter()
	builder.Log = a.log
	if cfg.MaxConcurrency > 0 {
		builder.Concurrency = cfg.MaxConcurrency
	}

	build := func(ctx context.Context) error {
		n, err := builder.Build(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Built %d pages in %s\n", n, outputDir)
		return nil
	}

	if err := build(ctx); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes (Ctrl+C to stop)\n", cfg.ContentDir)
	return site.Watch(ctx, cfg.ContentDir, site.WatchOptions{
		Ignore: []string{outputDir},
		Log:    a.log,
	}, build)
}
