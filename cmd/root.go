package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	quiet   bool
	output  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "labparse",
	Short: "A CLI tool for extracting biomarker results from lab report PDFs",
	Long: `Labparse ingests lab report PDFs and produces structured candidate
biomarker results ready for review.

Text is read from the document's native text layer when one exists,
with an OCR fallback for scanned reports. Every non-empty line is
scanned for a numeric value, a measurement unit, and a match against
the built-in biomarker catalog (with Hungarian and English aliases);
lines carrying neither a unit nor a catalog match are dropped.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.labparse.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (suppress progress messages)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "human", "output format (human, json)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".labparse")
	}

	viper.SetEnvPrefix("labparse")
	viper.AutomaticEnv()

	viper.SetDefault("ocr.languages", []string{"hun", "eng"})
	viper.SetDefault("ocr.dpi", 300)
	viper.SetDefault("parse.timeout", 120)

	if err := viper.ReadInConfig(); err == nil && !quiet {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
