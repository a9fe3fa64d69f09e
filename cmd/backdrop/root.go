package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "backdrop",
	Short: "Animated launcher backgrounds in your terminal",
	Long: `backdrop renders the launcher's decorative background effects
fullscreen in a terminal: a suspendable animation clock driving
procedural renderers. Focus loss freezes the animation on its current
frame; regaining focus resumes it with no time jump.`,

	Example: `
  backdrop run rain
  backdrop run --preset horizon -q low
  backdrop preview voxels -o voxels.png`,
}

// Execute runs the root command; called once from main
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default backdrop.yaml in . or ~/.config/backdrop)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringP("quality", "q", "medium", "quality tier: low, medium, high")
	rootCmd.PersistentFlags().String("accent", "#7aa2f7", "accent color hex")
	rootCmd.PersistentFlags().String("presets", "", "preset file to load in addition to the built-ins")

	viper.BindPFlag("quality", rootCmd.PersistentFlags().Lookup("quality"))
	viper.BindPFlag("accent", rootCmd.PersistentFlags().Lookup("accent"))
	viper.BindPFlag("presets", rootCmd.PersistentFlags().Lookup("presets"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("backdrop")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.config/backdrop")
		}
	}
	viper.SetEnvPrefix("backdrop")
	viper.AutomaticEnv()

	// A missing config file is fine, flags and defaults cover everything
	_ = viper.ReadInConfig()

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
