package cli

import (
	"stegmsg/internal/logging"
	"stegmsg/pkg/config"

	"github.com/spf13/cobra"
)

type globalOpts struct {
	configPath    string
	logLevel      string
	cpuProfile    string
	memProfileDir string

	file config.File
}

// RootCommand builds the full stegmsg command tree. Settings from --config are loaded before any subcommand runs,
// and flags explicitly set on the command line take precedence over them
func RootCommand() *cobra.Command {
	opts := &globalOpts{file: config.DefaultFile()}

	rootCmd := &cobra.Command{
		Use:           "stegmsg",
		Short:         "Hide text messages in images, audio tags and documents",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			StopProfiling()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file with default settings")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(ImageCommands(opts), AudioCommands(opts), DocumentCommands(opts), ServeAppCommand(opts))
	return rootCmd
}

func (o *globalOpts) setup(cmd *cobra.Command) error {
	file, err := config.LoadFile(o.configPath)
	if err != nil {
		return err
	}
	o.file = file

	if cmd.Flags().Changed("log-level") {
		o.file.LogLevel = o.logLevel
	}
	if err = logging.SetLevel(o.file.LogLevel); err != nil {
		return err
	}

	return StartProfiling(o.cpuProfile, o.memProfileDir)
}
