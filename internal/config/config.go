package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Init wires viper to the environment and to the root command's persistent
// flags. The Loco API key is deliberately not a config key: it arrives with
// every tool call, so no ambient credential is ever stored.
func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyAPIURL, "https://localise.biz/api")
	viper.SetDefault(KeyAuthScheme, "Loco")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
}

func APIURL() string     { return viper.GetString(KeyAPIURL) }
func AuthScheme() string { return viper.GetString(KeyAuthScheme) }
func LogLevel() string   { return viper.GetString(KeyLogLevel) }
func Transport() string  { return viper.GetString(KeyTransport) }
func Host() string       { return viper.GetString(KeyHost) }
func Port() int          { return viper.GetInt(KeyPort) }
