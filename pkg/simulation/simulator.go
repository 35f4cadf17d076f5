package simulation

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sherine-k/fms/pkg/config"
)

// DaysPerYear converts the configured horizon into simulated days.
const DaysPerYear = 365

type runState int

const (
	stateNotInitialized runState = iota
	stateInitialized
	stateRunning
	stateCompleted
)

// Simulator steps the factory day by day. It owns all run state: machine
// and adjuster populations, the repair queue, the timeline, and the random
// source. A single goroutine drives a run from start to finish.
type Simulator struct {
	logger *log.Logger
	clock  *FailureClock

	machineTypes   []config.MachineType
	adjusterGroups []config.AdjusterGroup
	typeNames      map[string]bool

	machines  [][]MachineInstance
	adjusters [][]AdjusterInstance
	queue     repairQueue
	timeline  []Event

	// maintenance[i] holds the precomputed service days for machine type i.
	maintenance []map[int]bool
	startDate   time.Time

	horizonDays   int
	maxQueueDepth int
	state         runState
}

// NewSimulator creates a simulator with an empty catalog. A zero seed picks
// one from the wall clock.
func NewSimulator(logger *log.Logger, seed uint64) *Simulator {
	return &Simulator{
		logger:    logger,
		clock:     NewFailureClock(seed),
		typeNames: make(map[string]bool),
		startDate: defaultStartDate,
	}
}

// NewFromConfig builds a simulator preloaded with a validated catalog
func NewFromConfig(logger *log.Logger, cfg *config.Config) (*Simulator, error) {
	s := NewSimulator(logger, cfg.Seed)

	if cfg.StartDate != "" {
		start, err := time.Parse(config.DateLayout, cfg.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", err)
		}
		s.startDate = start.UTC()
	}

	for _, mt := range cfg.MachineTypes {
		if err := s.AddMachineType(mt); err != nil {
			return nil, err
		}
	}
	for _, group := range cfg.AdjusterGroups {
		if err := s.AddAdjusterGroup(group); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddMachineType registers a machine type. A rejected entry leaves the
// catalog untouched.
func (s *Simulator) AddMachineType(mt config.MachineType) error {
	if err := config.ValidateMachineType(mt); err != nil {
		return err
	}
	if s.typeNames[mt.Name] {
		return fmt.Errorf("machine type %q already exists", mt.Name)
	}
	s.machineTypes = append(s.machineTypes, mt)
	s.typeNames[mt.Name] = true
	return nil
}

// AddAdjusterGroup registers an adjuster group. Its services must reference
// machine types already in the catalog.
func (s *Simulator) AddAdjusterGroup(group config.AdjusterGroup) error {
	if err := config.ValidateAdjusterGroup(group, s.typeNames); err != nil {
		return err
	}
	for _, existing := range s.adjusterGroups {
		if existing.ID == group.ID {
			return fmt.Errorf("adjuster group %q already exists", group.ID)
		}
	}
	s.adjusterGroups = append(s.adjusterGroups, group)
	return nil
}

// Run simulates the given number of years, 365 days each. It builds fresh
// instance populations, then executes one daily step per day in a fixed
// phase order: assignment, machine advance, adjuster advance, queue
// sampling. A started run always completes its full horizon.
func (s *Simulator) Run(years int) error {
	if years < config.MinYears || years > config.MaxYears {
		return fmt.Errorf("years must be between %d and %d", config.MinYears, config.MaxYears)
	}
	if len(s.machineTypes) == 0 {
		return fmt.Errorf("add at least one machine type before running")
	}
	if len(s.adjusterGroups) == 0 {
		return fmt.Errorf("add at least one adjuster group before running")
	}

	days := years * DaysPerYear
	if err := s.initialize(days); err != nil {
		return err
	}

	s.logger.Info("simulation started",
		"years", years, "days", days, "seed", s.clock.Seed(),
	)

	s.state = stateRunning
	for day := 1; day <= days; day++ {
		s.assignAdjusters()
		s.advanceMachines(day)
		s.advanceAdjusters(day)
		s.sampleQueue(day)
	}
	s.state = stateCompleted

	s.logger.Info("simulation finished",
		"days", days, "events", len(s.timeline), "maxQueueDepth", s.maxQueueDepth,
	)
	return nil
}

// initialize builds fresh populations from the catalog: every machine
// working with a freshly drawn failure threshold, every adjuster idle. The
// queue, timeline, and queue-depth counter are cleared; the random source
// is never reseeded.
func (s *Simulator) initialize(days int) error {
	s.horizonDays = days

	s.machines = make([][]MachineInstance, len(s.machineTypes))
	s.maintenance = make([]map[int]bool, len(s.machineTypes))
	for i, mt := range s.machineTypes {
		serviceDays, err := maintenanceDays(mt, s.startDate, days)
		if err != nil {
			return fmt.Errorf("machine type %q: %w", mt.Name, err)
		}
		s.maintenance[i] = serviceDays

		group := make([]MachineInstance, mt.Quantity)
		for q := range group {
			group[q] = MachineInstance{
				TypeIndex:      i,
				Ordinal:        q,
				Working:        true,
				NextFailureDay: s.clock.Draw(mt.MTTFDays),
			}
		}
		s.machines[i] = group
	}

	s.adjusters = make([][]AdjusterInstance, len(s.adjusterGroups))
	for i, group := range s.adjusterGroups {
		instances := make([]AdjusterInstance, group.Count)
		for q := range instances {
			instances[q] = AdjusterInstance{GroupIndex: i, Ordinal: q, machine: noMachine}
		}
		s.adjusters[i] = instances
	}

	s.queue.Reset()
	s.timeline = nil
	s.maxQueueDepth = 0
	s.state = stateInitialized
	return nil
}

// assignAdjusters pairs queued machines with idle qualified adjusters in
// FIFO order. Only the machines queued at phase start are examined, so
// anything pushed back during the pass waits for the next day.
func (s *Simulator) assignAdjusters() {
	pending := s.queue.Len()
	for i := 0; i < pending; i++ {
		if s.queue.Len() == 0 {
			break
		}
		ref := s.queue.Pop()
		m := s.machine(ref)
		mt := s.machineTypes[m.TypeIndex]

		adj := s.findIdleAdjuster(mt.Name)
		if adj == nil {
			// No qualified adjuster is free today; retry tomorrow.
			s.queue.Push(ref)
			continue
		}

		adj.Busy = true
		adj.DaysWorked = 0
		adj.RequiredDays = mt.RepairDays
		adj.machine = ref
		// Assignment-day credit; the daily advance counts this day again.
		adj.TotalBusyDays++

		m.Working = false
		m.RepairDays = 1

		s.addEvent(Event{
			Day:  0,
			Type: EventTypeAdjusterAssigned,
			Message: fmt.Sprintf("Assign adjuster %d of group %s to repair machine %s #%d",
				adj.Ordinal+1, s.adjusterGroups[adj.GroupIndex].ID, mt.Name, m.Ordinal+1),
		})
	}
}

// findIdleAdjuster scans groups in catalog order and returns the first idle
// adjuster qualified for the machine type, or nil.
func (s *Simulator) findIdleAdjuster(machineType string) *AdjusterInstance {
	for g := range s.adjusterGroups {
		if !s.adjusterGroups[g].CanService(machineType) {
			continue
		}
		for i := range s.adjusters[g] {
			if !s.adjusters[g][i].Busy {
				return &s.adjusters[g][i]
			}
		}
	}
	return nil
}

// advanceMachines ages every working machine by one day and fails the ones
// that reached their threshold. Queued and under-repair machines are left
// untouched. Scheduled preventive maintenance runs before aging.
func (s *Simulator) advanceMachines(day int) {
	for g := range s.machines {
		mt := s.machineTypes[g]
		serviceDay := s.maintenance[g][day]
		for i := range s.machines[g] {
			m := &s.machines[g][i]
			if !m.Working {
				continue
			}

			if serviceDay {
				m.RunningDays = 0
				s.addEvent(Event{
					Day:  day,
					Type: EventTypeMaintenance,
					Message: fmt.Sprintf("Preventive maintenance on machine %s #%d",
						mt.Name, m.Ordinal+1),
				})
			}

			m.RunningDays++
			if m.RunningDays >= m.NextFailureDay {
				m.Working = false
				s.addEvent(Event{
					Day:     day,
					Type:    EventTypeMachineFailed,
					Message: fmt.Sprintf("Machine %s #%d failed", mt.Name, m.Ordinal+1),
				})
				m.RunningDays = 0
				m.RepairDays = 0
				// Threshold for the run segment that starts once repair completes.
				m.NextFailureDay = s.clock.Draw(mt.MTTFDays)

				s.queue.Push(machineRef{typeIndex: g, ordinal: i})
			}
		}
	}
}

// advanceAdjusters progresses every busy adjuster by one day and completes
// repairs that reached their required duration.
func (s *Simulator) advanceAdjusters(day int) {
	for g := range s.adjusters {
		for i := range s.adjusters[g] {
			adj := &s.adjusters[g][i]
			if !adj.Busy {
				continue
			}

			adj.DaysWorked++
			adj.TotalBusyDays++
			if adj.DaysWorked < adj.RequiredDays {
				continue
			}

			m := s.machine(adj.machine)
			mt := s.machineTypes[m.TypeIndex]
			s.addEvent(Event{
				Day:  day,
				Type: EventTypeRepairFinished,
				Message: fmt.Sprintf("Adjuster %d of group %s finished repair on machine %s #%d",
					adj.Ordinal+1, s.adjusterGroups[g].ID, mt.Name, m.Ordinal+1),
			})

			adj.Busy = false
			adj.DaysWorked = 0
			adj.RequiredDays = 0

			m.Working = true
			m.RepairDays = 0
			m.RunningDays = 0

			adj.machine = noMachine
		}
	}
}

// sampleQueue records the day's closing queue depth and tracks the maximum
func (s *Simulator) sampleQueue(day int) {
	depth := s.queue.Len()
	if depth > s.maxQueueDepth {
		s.maxQueueDepth = depth
	}
	s.addEvent(Event{
		Day:        day,
		Type:       EventTypeQueueSample,
		Message:    fmt.Sprintf("Queue length: %d", depth),
		QueueDepth: depth,
	})
}

func (s *Simulator) machine(ref machineRef) *MachineInstance {
	return &s.machines[ref.typeIndex][ref.ordinal]
}

// addEvent appends an event to the timeline
func (s *Simulator) addEvent(event Event) {
	s.timeline = append(s.timeline, event)
	s.logger.Debug(event.Message, "day", event.Day, "type", event.Type)
}

// Timeline returns the full event log for the last run
func (s *Simulator) Timeline() []Event {
	return s.timeline
}

// Completed reports whether a run has finished its full horizon
func (s *Simulator) Completed() bool {
	return s.state == stateCompleted
}

// MachineTypeStatus reports a type's catalog entry plus current instance counts.
type MachineTypeStatus struct {
	Type    config.MachineType
	Working int
	Broken  int
}

// AdjusterGroupStatus reports a group's catalog entry plus current instance counts.
type AdjusterGroupStatus struct {
	Group config.AdjusterGroup
	Busy  int
	Idle  int
}

// MachineTypeStatus returns the detail view for one machine type
func (s *Simulator) MachineTypeStatus(name string) (MachineTypeStatus, error) {
	for i, mt := range s.machineTypes {
		if mt.Name != name {
			continue
		}
		status := MachineTypeStatus{Type: mt}
		if i < len(s.machines) {
			for _, m := range s.machines[i] {
				if m.Working {
					status.Working++
				} else {
					status.Broken++
				}
			}
		}
		return status, nil
	}
	return MachineTypeStatus{}, fmt.Errorf("unknown machine type %q", name)
}

// AdjusterGroupStatus returns the detail view for one adjuster group
func (s *Simulator) AdjusterGroupStatus(id string) (AdjusterGroupStatus, error) {
	for i, group := range s.adjusterGroups {
		if group.ID != id {
			continue
		}
		status := AdjusterGroupStatus{Group: group}
		if i < len(s.adjusters) {
			for _, adj := range s.adjusters[i] {
				if adj.Busy {
					status.Busy++
				} else {
					status.Idle++
				}
			}
		}
		return status, nil
	}
	return AdjusterGroupStatus{}, fmt.Errorf("unknown adjuster group %q", id)
}
