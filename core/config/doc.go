// Package config provides configuration management for the reconciliation tool.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Pipeline: member/payment sources, cleaned output path and report format
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Database: optional sink for cleaned records (MySQL or SQLite)
//   - Storage: optional S3/MinIO upload of the cleaned dataset
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Pipeline.OutputPath)
package config
