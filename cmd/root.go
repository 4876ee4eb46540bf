// Copyright (C) 2018. See AUTHORS.

package cmd

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spacemonkeygo/prng"
	"github.com/spacemonkeygo/prng/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prng",
	Short: "Seedable, skippable pseudorandom number generators.",
	Long: `Seedable, skippable pseudorandom number generators.
Generate values, jump through a sequence or split it into independent
sub-streams. For example:
  prng gen --variant parkmiller --seed 1 --count 5
  prng gen --lower 1 --upper 6 --count 10
  prng skip --variant lcg --seed 1 --n=-1000
  prng streams --variant parkmiller --count 4 --take 3
  prng serve --listen 127.0.0.1:6380`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.SetLevel(viper.GetString("log-level"))
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.prng.yaml)")
	flags.String("log-level", "info", "log level [trace,debug,info,warn,error]")
	flags.StringP("variant", "v", "lcg", "generator variant: "+strings.Join(prng.Variants(), ", "))
	flags.Uint32P("seed", "s", 0, "seed, 0 selects the default seed")
	flags.Bool("json", false, "write json instead of one value per line")

	for _, name := range []string{"log-level", "variant", "seed", "json"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".prng")
	}

	viper.SetEnvPrefix("prng")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("file", viper.ConfigFileUsed(), "using config file")
	}
}

// source builds the generator selected by the variant and seed settings.
func source() (prng.Source, error) {
	src, err := prng.New(viper.GetString("variant"))
	if err != nil {
		return nil, err
	}
	src.Seed(viper.GetUint32("seed"))
	return src, nil
}
