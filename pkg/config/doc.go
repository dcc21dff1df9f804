// Package config loads typed configuration structs from environment
// variables, optionally seeded from dotenv files.
//
// Parsing is delegated to github.com/caarlos0/env/v11; dotenv files are read
// with github.com/joho/godotenv and never override variables that are already
// set. Structs implementing Validator are checked after parsing.
//
//	var cfg jwt.Config
//	config.MustLoad(&cfg, config.WithEnvFiles(".env"))
package config
