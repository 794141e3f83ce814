package cmd

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd returns the root command. Flags and the config file are
// resolved through v.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "zonelearn",
		Short:        "Learn zone lighting policies with tabular Q-learning",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String("config", "", "Read configuration from a YAML or JSON file")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	cmd.PersistentFlags().Bool("quiet", false, "Do not log to stderr")
	_ = v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("quiet", cmd.PersistentFlags().Lookup("quiet"))

	cmd.AddCommand(NewTrainCmd(v), NewConfigCmd(v))
	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger returns a logger configured from the debug and quiet flags
func newLogger(v *viper.Viper, out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if v.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}
	if v.GetBool("quiet") {
		logger.SetOutput(io.Discard)
	}
	return logger
}
