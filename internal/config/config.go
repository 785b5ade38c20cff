package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Output
		Database
		Parser
		Log
	}

	Output struct {
		Path string
	}
	Database struct {
		Path string
	}
	Parser struct {
		TagDelimiter string
		SkipArchived bool
	}
	Log struct {
		Level  string
		Pretty bool
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("tag_delimiter", DefaultTagDelimiter)
	v.SetDefault("skip_archived", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", true)

	return &Config{
		Output: Output{
			Path: v.GetString("OUTPUT_PATH"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Parser: Parser{
			TagDelimiter: v.GetString("TAG_DELIMITER"),
			SkipArchived: v.GetBool("SKIP_ARCHIVED"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
	}
}
