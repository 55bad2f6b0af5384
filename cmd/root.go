package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "jyotish",
	Short: "Sidereal birth-chart engine",
	Long: "Jyotish computes sidereal (Vedic) birth charts from first principles:\n" +
		"planetary positions from mean orbital elements, ascendant and whole-sign\n" +
		"houses, twenty divisional charts, shadbala, Vimshottari dashas, yogas,\n" +
		"and ashtakavarga.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .jyotish.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("json", false, "emit the result graph as JSON instead of tables")
	rootCmd.PersistentFlags().String("trace", "", "write JSONL telemetry to this path")
	rootCmd.PersistentFlags().String("elements", "", "TOML catalog of orbital element overrides")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".jyotish")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("JYOTISH")
	viper.AutomaticEnv()

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("trace_path", rootCmd.PersistentFlags().Lookup("trace"))
	_ = viper.BindPFlag("elements_file", rootCmd.PersistentFlags().Lookup("elements"))

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
