package config

// Config represents the entire factory catalog plus run parameters
type Config struct {
	Years          int             `yaml:"years"`
	Seed           uint64          `yaml:"seed,omitempty"`
	StartDate      string          `yaml:"startDate,omitempty"`
	MachineTypes   []MachineType   `yaml:"machineTypes"`
	AdjusterGroups []AdjusterGroup `yaml:"adjusterGroups"`
}

// MachineType describes one class of machine on the factory floor
type MachineType struct {
	Name       string `yaml:"name"`
	MTTFDays   int    `yaml:"mttfDays"`
	RepairDays int    `yaml:"repairDays"`
	Quantity   int    `yaml:"quantity"`

	// Optional 5-field cron expression. When set, working machines of
	// this type are serviced on matching days, which restarts their
	// current run segment.
	MaintenanceSchedule string `yaml:"maintenanceSchedule,omitempty"`
}

// AdjusterGroup describes a pool of technicians sharing a skill set
type AdjusterGroup struct {
	ID       string   `yaml:"id"`
	Count    int      `yaml:"count"`
	Services []string `yaml:"services"`
}

// CanService reports whether the group is qualified for the machine type
func (g AdjusterGroup) CanService(machineType string) bool {
	for _, name := range g.Services {
		if name == machineType {
			return true
		}
	}
	return false
}
