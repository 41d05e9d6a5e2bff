package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string         `mapstructure:"log_level"`
	Paths    PathsConfig    `mapstructure:"paths"`
	Frontend FrontendConfig `mapstructure:"frontend"`
	Server   ServerConfig   `mapstructure:"server"`
}

type PathsConfig struct {
	TokensFile     string `mapstructure:"tokens_file"`
	DictionaryFile string `mapstructure:"dictionary_file"`
	OverridesFile  string `mapstructure:"overrides_file"`
}

type FrontendConfig struct {
	ParseProsody        bool `mapstructure:"parse_prosody"`
	ExpandAbbreviations bool `mapstructure:"expand_abbreviations"`
	ExpandNumbers       bool `mapstructure:"expand_numbers"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
	RequestTimeout  int    `mapstructure:"request_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Paths: PathsConfig{
			TokensFile:     "models/tokens.txt",
			DictionaryFile: "models/dictionary.json",
			OverridesFile:  "",
		},
		Frontend: FrontendConfig{
			ParseProsody:        false,
			ExpandAbbreviations: true,
			ExpandNumbers:       true,
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			MaxTextBytes:    4096,
			RequestTimeout:  30,
			ShutdownTimeout: 30,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("paths-tokens-file", defaults.Paths.TokensFile, "Path to vocabulary tokens file")
	fs.String("paths-dictionary-file", defaults.Paths.DictionaryFile, "Path to phoneme dictionary JSON")
	fs.String("paths-overrides-file", defaults.Paths.OverridesFile, "Path to pronunciation overrides file")
	fs.Bool("frontend-parse-prosody", defaults.Frontend.ParseProsody, "Parse inline prosody markup")
	fs.Bool(
		"frontend-expand-abbreviations",
		defaults.Frontend.ExpandAbbreviations,
		"Expand abbreviations during normalization",
	)
	fs.Bool("frontend-expand-numbers", defaults.Frontend.ExpandNumbers, "Expand numeric forms during normalization")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum request text size in bytes")
	fs.Int("server-request-timeout", defaults.Server.RequestTimeout, "Per-request timeout in seconds")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown drain period in seconds")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("PHONETOK")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("phonetok")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("paths.tokens_file", c.Paths.TokensFile)
	v.SetDefault("paths.dictionary_file", c.Paths.DictionaryFile)
	v.SetDefault("paths.overrides_file", c.Paths.OverridesFile)
	v.SetDefault("frontend.parse_prosody", c.Frontend.ParseProsody)
	v.SetDefault("frontend.expand_abbreviations", c.Frontend.ExpandAbbreviations)
	v.SetDefault("frontend.expand_numbers", c.Frontend.ExpandNumbers)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("paths.tokens_file", "paths-tokens-file")
	v.RegisterAlias("paths.dictionary_file", "paths-dictionary-file")
	v.RegisterAlias("paths.overrides_file", "paths-overrides-file")
	v.RegisterAlias("frontend.parse_prosody", "frontend-parse-prosody")
	v.RegisterAlias("frontend.expand_abbreviations", "frontend-expand-abbreviations")
	v.RegisterAlias("frontend.expand_numbers", "frontend-expand-numbers")
	v.RegisterAlias("server.listen_addr", "server-listen-addr")
	v.RegisterAlias("server.max_text_bytes", "server-max-text-bytes")
	v.RegisterAlias("server.request_timeout", "server-request-timeout")
	v.RegisterAlias("server.shutdown_timeout", "server-shutdown-timeout")
}
