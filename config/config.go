package config

import (
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding flag defaults,
// EVMTOOLS_DEBUG=true for example.
const EnvPrefix = "EVMTOOLS"

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds the settings shared by all tools.
type Config struct {
	// Debug enables debug level log output
	Debug bool
	// LogFormat is console or json
	LogFormat string
}

// Validate the config
func (c *Config) Validate() error {
	if c.LogFormat != LogFormatConsole && c.LogFormat != LogFormatJSON {
		return errors.Errorf("The log format has to be %s or %s", LogFormatConsole, LogFormatJSON)
	}
	return nil
}

// BindFlags adds the shared flags to a flag set.
func BindFlags(flags *flag.FlagSet) {
	flags.Bool("debug", false, "sets debug level log output")
	flags.String("log-format", LogFormatConsole, "log output format, console or json")
}

// Load merges flags, the environment and an optional .env file in the working directory.
// Explicitly set flags win over the environment which wins over flag defaults.
func Load(flags *flag.FlagSet) (cfg Config, err error) {
	if err = godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return cfg, errors.Wrap(err, "failed to load .env file")
		}
		err = nil
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err = v.BindPFlags(flags); err != nil {
		return cfg, errors.Wrap(err, "failed to bind flags")
	}

	cfg = Config{
		Debug:     v.GetBool("debug"),
		LogFormat: v.GetString("log-format"),
	}
	err = cfg.Validate()
	return
}

// ConfigureLogger sets up the global zerolog logger to write to w.
func (c *Config) ConfigureLogger(w io.Writer) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if c.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if c.LogFormat == LogFormatJSON {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
}
