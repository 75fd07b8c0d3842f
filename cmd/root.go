package cmd

import (
	"errors"
	"log"

	"github.com/da-luce/cvlint/internal/criteria"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "cvlint"

	defaultPassingScore = 70.0
	defaultOutput       = "text"
)

// Config is the viper-backed configuration shared by the commands.
type Config struct {
	PassingScore float64         `mapstructure:"passing-score"`
	Output       string          `mapstructure:"output"`
	Rules        *criteria.Rules `mapstructure:"rules"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cvlint validates a PDF resume against weighted quality criteria",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cvlint.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("passing-score", defaultPassingScore)
	viper.SetDefault("output", defaultOutput)
	viper.SetDefault("rules.max-pages", criteria.DefaultMaxPages)
	viper.SetDefault("rules.max-file-size-kb", criteria.DefaultMaxFileSizeKB)
	viper.SetDefault("rules.max-fonts", criteria.DefaultMaxFonts)
	viper.SetDefault("rules.required-sections", criteria.DefaultRequiredSections())
	viper.SetDefault("rules.require-https", true)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional; a parse error in an existing file is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Output == "" {
		config.Output = defaultOutput
	}

	return config, nil
}
