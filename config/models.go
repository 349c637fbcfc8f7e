package config

import (
	"fmt"
	"time"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
)

// Franchise directory backends.
const (
	FranchiseSourceSheets = "sheets"
	FranchiseSourceXLSX   = "xlsx"
)

// Missing note policies.
const (
	MissingNoteFail    = "fail"
	MissingNoteDefault = "default"
)

// Config holds application configuration.
type Config struct {
	ABCP      ABCPConfig      `mapstructure:"abcp"`
	Sheets    SheetsConfig    `mapstructure:"sheets"`
	Franchise FranchiseConfig `mapstructure:"franchise"`
	Assign    AssignConfig    `mapstructure:"assign"`
	Server    ServerConfig    `mapstructure:"server"`
	Schedule  ScheduleConfig  `mapstructure:"schedule"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.ABCP.Host == "" {
		return fmt.Errorf("%w: abcp.host is required", entities.ErrConfiguration)
	}
	if c.ABCP.Login == "" || c.ABCP.Password == "" {
		return fmt.Errorf("%w: abcp credentials are required", entities.ErrConfiguration)
	}

	switch c.Franchise.Source {
	case FranchiseSourceSheets:
		if c.Sheets.SpreadsheetKey == "" {
			return fmt.Errorf("%w: sheets.spreadsheet_key is required", entities.ErrConfiguration)
		}
		if c.Sheets.CredentialsFile == "" {
			return fmt.Errorf("%w: sheets.credentials_file is required", entities.ErrConfiguration)
		}
	case FranchiseSourceXLSX:
		if c.Franchise.XLSXPath == "" {
			return fmt.Errorf("%w: franchise.xlsx_path is required", entities.ErrConfiguration)
		}
	default:
		return fmt.Errorf("%w: unknown franchise.source %q", entities.ErrConfiguration, c.Franchise.Source)
	}
	if c.Franchise.SheetIndex < 0 {
		return fmt.Errorf("%w: franchise.sheet_index must not be negative", entities.ErrConfiguration)
	}

	switch c.Assign.MissingNotePolicy {
	case MissingNoteFail, MissingNoteDefault:
	default:
		return fmt.Errorf("%w: unknown assign.missing_note_policy %q", entities.ErrConfiguration, c.Assign.MissingNotePolicy)
	}
	if c.Assign.Lookback <= 0 {
		return fmt.Errorf("%w: assign.lookback must be positive", entities.ErrConfiguration)
	}
	if c.Assign.DefaultManagerID == "" {
		return fmt.Errorf("%w: assign.default_manager_id is required", entities.ErrConfiguration)
	}

	if c.Schedule.Enabled {
		if c.Schedule.Interval <= 0 {
			return fmt.Errorf("%w: schedule.interval must be positive", entities.ErrConfiguration)
		}
		if c.Schedule.FromHour < 0 || c.Schedule.ToHour > 23 || c.Schedule.FromHour > c.Schedule.ToHour {
			return fmt.Errorf("%w: schedule hours must satisfy 0 <= from_hour <= to_hour <= 23", entities.ErrConfiguration)
		}
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ABCPConfig contains order platform access settings.
type ABCPConfig struct {
	Host           string        `mapstructure:"host"`
	Login          string        `mapstructure:"login"`
	Password       string        `mapstructure:"password"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// SheetsConfig describes the Google spreadsheet with the franchise directory.
type SheetsConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	SpreadsheetKey  string `mapstructure:"spreadsheet_key"`
}

// FranchiseConfig selects the franchise directory backend.
type FranchiseConfig struct {
	Source        string `mapstructure:"source"`
	SheetIndex    int    `mapstructure:"sheet_index"`
	XLSXPath      string `mapstructure:"xlsx_path"`
	OverridesFile string `mapstructure:"overrides_file"`
}

// AssignConfig contains assignment rule settings.
type AssignConfig struct {
	Lookback            time.Duration `mapstructure:"lookback"`
	DefaultManagerID    string        `mapstructure:"default_manager_id"`
	EmployeeNameMarker  string        `mapstructure:"employee_name_marker"`
	OriginalOrderMarker string        `mapstructure:"original_order_marker"`
	MissingNotePolicy   string        `mapstructure:"missing_note_policy"`
	CallTimeout         time.Duration `mapstructure:"call_timeout"`
}

// ServerConfig contains HTTP trigger options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

// ScheduleConfig contains in-process scheduler options.
type ScheduleConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
	FromHour int           `mapstructure:"from_hour"`
	ToHour   int           `mapstructure:"to_hour"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}
