package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sceneid",
	Short: "sceneid resolves release names to shows and episodes",
	Long:  `sceneid resolves release names to shows and episodes`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

const (
	defaultBackoff    = time.Second
	defaultMaxRetries = 3
)

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("SCENEID")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.language", "en-US")
	viper.SetDefault("tmdb.backoff", defaultBackoff)
	viper.SetDefault("tmdb.maxRetries", defaultMaxRetries)

	viper.SetDefault("storage.filePath", "sceneid.sqlite")

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("resolver.allowRemoteLookup", false)
	viper.SetDefault("resolver.ezrss", false)
}
