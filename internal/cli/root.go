package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ik5/wavshift"
	"github.com/ik5/wavshift/internal/prompt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd returns the wavshift command tree bound to app. Each call uses
// its own viper instance.
func NewRootCmd(app *App) *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "wavshift [input] [output]",
		Short: "Bit-shift every sample of a WAV or AIFF file",
		Long: `wavshift shifts every sample of an uncompressed audio file by the same
number of bits and saves the result with the original format.

Negative amounts shift right, toward the least significant bit (quieter).
Positive amounts shift left, toward the most significant bit (louder).
The amount must be non-zero and smaller than the bit depth of the file.

Values that are not given as arguments, flags, WAVSHIFT_* environment
variables or config file entries are asked for interactively.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, cfgFile); err != nil {
				return err
			}
			return app.setup(cmd, v.GetString("log-level"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(optionsFrom(v, args))
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wavshift.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringP("input", "i", "", "audio file to shift")
	rootCmd.Flags().StringP("output", "o", "", "path for the shifted file (must not exist)")
	rootCmd.Flags().IntP("amount", "a", 0, "bits to shift; negative=right (quieter), positive=left (louder)")
	rootCmd.Flags().Bool("no-input", false, "never prompt; fail on missing or invalid values")

	v.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	v.BindPFlag("input", rootCmd.Flags().Lookup("input"))
	v.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	v.BindPFlag("amount", rootCmd.Flags().Lookup("amount"))
	v.BindPFlag("no-input", rootCmd.Flags().Lookup("no-input"))

	rootCmd.AddCommand(newInfoCmd(app))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command line with the default App.
func Execute() error {
	return NewRootCmd(&App{}).Execute()
}

func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("wavshift")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".wavshift")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

func optionsFrom(v *viper.Viper, args []string) Options {
	opts := Options{
		Input:     v.GetString("input"),
		Output:    v.GetString("output"),
		Amount:    v.GetInt("amount"),
		AmountSet: v.IsSet("amount"),
		NoInput:   v.GetBool("no-input"),
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}
	if len(args) > 1 {
		opts.Output = args[1]
	}

	return opts
}

func (a *App) setup(cmd *cobra.Command, level string) error {
	if a.Log == nil {
		a.Log = logrus.New()
		a.Log.SetOutput(cmd.ErrOrStderr())
		a.Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.Log.SetLevel(lvl)

	if a.Registry == nil {
		a.Registry = wavshift.DefaultRegistry()
	}
	if a.Out == nil {
		a.Out = cmd.OutOrStdout()
	}
	if a.Asker == nil {
		a.Asker = &prompt.Terminal{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	}

	return nil
}
