// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	return load(envFile)
}

func load(path string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(path); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal config: %v", entities.ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "logs/insert_manager.log")
	v.SetDefault("logging.max_age_days", 31)
	v.SetDefault("logging.compress", true)

	v.SetDefault("abcp.request_timeout", 30*time.Second)

	v.SetDefault("franchise.source", FranchiseSourceSheets)
	v.SetDefault("franchise.sheet_index", entities.DefaultFranchiseSheetIndex)

	v.SetDefault("assign.lookback", entities.LookbackWindow)
	v.SetDefault("assign.default_manager_id", entities.DefaultManagerID)
	v.SetDefault("assign.employee_name_marker", entities.EmployeeNameMarker)
	v.SetDefault("assign.original_order_marker", entities.OriginalOrderMarker)
	v.SetDefault("assign.missing_note_policy", MissingNoteFail)
	v.SetDefault("assign.call_timeout", 20*time.Second)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.request_timeout", 5*time.Minute)

	v.SetDefault("schedule.enabled", false)
	v.SetDefault("schedule.interval", time.Hour)
	v.SetDefault("schedule.from_hour", 8)
	v.SetDefault("schedule.to_hour", 19)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"logging.file",
		"logging.max_age_days",
		"logging.compress",
		"abcp.host",
		"abcp.login",
		"abcp.password",
		"abcp.request_timeout",
		"sheets.credentials_file",
		"sheets.spreadsheet_key",
		"franchise.source",
		"franchise.sheet_index",
		"franchise.xlsx_path",
		"franchise.overrides_file",
		"assign.lookback",
		"assign.default_manager_id",
		"assign.employee_name_marker",
		"assign.original_order_marker",
		"assign.missing_note_policy",
		"assign.call_timeout",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"server.request_timeout",
		"schedule.enabled",
		"schedule.interval",
		"schedule.from_hour",
		"schedule.to_hour",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
