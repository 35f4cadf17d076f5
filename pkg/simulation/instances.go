package simulation

// MachineInstance is the runtime state of one physical machine. Instances
// are rebuilt from the catalog on every run.
type MachineInstance struct {
	TypeIndex int
	Ordinal   int

	Working     bool
	RunningDays int

	// RepairDays is set to 1 when a repair begins and cleared when it
	// ends; the advance phases never increment it.
	RepairDays int

	// NextFailureDay is the RunningDays threshold that triggers the next
	// failure. It is redrawn at failure time so the following run segment
	// has its threshold ready when repair completes.
	NextFailureDay int
}

// AdjusterInstance is the runtime state of one technician
type AdjusterInstance struct {
	GroupIndex int
	Ordinal    int

	Busy         bool
	DaysWorked   int
	RequiredDays int

	// TotalBusyDays is credited once at assignment and again by every
	// daily advance, so the first day of each job counts twice.
	TotalBusyDays int

	// machine is valid only while Busy
	machine machineRef
}
