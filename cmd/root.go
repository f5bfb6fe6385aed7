package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/learnsite/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "learnsite",
	Short: "Serve and build a small learning site of courses and tutorials",
	Long: `learnsite renders courses (ordered lessons with progress tracking) and a
searchable tutorial catalog from JSON content files. It serves them as
server-rendered pages or writes a static snapshot.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
