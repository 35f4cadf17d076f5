package config

import (
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Bounds accepted for catalog entries and run parameters.
const (
	MinDays  = 1
	MaxDays  = 10000
	MinUnits = 1
	MaxUnits = 1000
	MinYears = 1
	MaxYears = 1000
)

// DateLayout is the layout for Config.StartDate.
const DateLayout = "2006-01-02"

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ParseSchedule parses a 5-field cron maintenance schedule
func ParseSchedule(expr string) (cron.Schedule, error) {
	return scheduleParser.Parse(expr)
}

// LoadConfig loads and parses the configuration file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	// Years may be left at 0 in the file and supplied on the command line.
	if config.Years != 0 && (config.Years < MinYears || config.Years > MaxYears) {
		return fmt.Errorf("years must be between %d and %d", MinYears, MaxYears)
	}

	if config.StartDate != "" {
		if _, err := time.Parse(DateLayout, config.StartDate); err != nil {
			return fmt.Errorf("startDate must use the %s layout: %w", DateLayout, err)
		}
	}

	if len(config.MachineTypes) == 0 {
		return fmt.Errorf("at least one machine type must be defined")
	}

	if len(config.AdjusterGroups) == 0 {
		return fmt.Errorf("at least one adjuster group must be defined")
	}

	names := make(map[string]bool)
	for i, mt := range config.MachineTypes {
		if err := ValidateMachineType(mt); err != nil {
			return fmt.Errorf("machine type %d: %w", i, err)
		}
		if names[mt.Name] {
			return fmt.Errorf("machine type %q: name already used", mt.Name)
		}
		names[mt.Name] = true
	}

	ids := make(map[string]bool)
	for i, group := range config.AdjusterGroups {
		if err := ValidateAdjusterGroup(group, names); err != nil {
			return fmt.Errorf("adjuster group %d: %w", i, err)
		}
		if ids[group.ID] {
			return fmt.Errorf("adjuster group %q: id already used", group.ID)
		}
		ids[group.ID] = true
	}

	return nil
}

// ValidateMachineType checks a single catalog entry against the allowed bounds
func ValidateMachineType(mt MachineType) error {
	if mt.Name == "" {
		return fmt.Errorf("name is required")
	}

	if mt.MTTFDays < MinDays || mt.MTTFDays > MaxDays {
		return fmt.Errorf("mttfDays must be between %d and %d", MinDays, MaxDays)
	}

	if mt.RepairDays < MinDays || mt.RepairDays > MaxDays {
		return fmt.Errorf("repairDays must be between %d and %d", MinDays, MaxDays)
	}

	if mt.Quantity < MinUnits || mt.Quantity > MaxUnits {
		return fmt.Errorf("quantity must be between %d and %d", MinUnits, MaxUnits)
	}

	if mt.MaintenanceSchedule != "" {
		if _, err := ParseSchedule(mt.MaintenanceSchedule); err != nil {
			return fmt.Errorf("invalid maintenance schedule: %w", err)
		}
	}

	return nil
}

// ValidateAdjusterGroup checks a group entry. known is the set of declared
// machine type names the group may reference.
func ValidateAdjusterGroup(group AdjusterGroup, known map[string]bool) error {
	if group.ID == "" {
		return fmt.Errorf("id is required")
	}

	if group.Count < MinUnits || group.Count > MaxUnits {
		return fmt.Errorf("count must be between %d and %d", MinUnits, MaxUnits)
	}

	if len(group.Services) == 0 {
		return fmt.Errorf("services must name at least one machine type")
	}

	for _, name := range group.Services {
		if !known[name] {
			return fmt.Errorf("services references unknown machine type %q", name)
		}
	}

	return nil
}
