package simulation

// EventType defines the type of event in the simulation
type EventType string

const (
	EventTypeMachineFailed    EventType = "machine-failed"
	EventTypeAdjusterAssigned EventType = "adjuster-assigned"
	EventTypeRepairFinished   EventType = "repair-finished"
	EventTypeMaintenance      EventType = "maintenance"
	EventTypeQueueSample      EventType = "queue-sample"
)

// Event is one entry in the run timeline. Assignment events carry day 0;
// every other event carries the simulated day it happened on.
type Event struct {
	Day     int
	Type    EventType
	Message string

	// QueueDepth is populated on queue samples only.
	QueueDepth int
}
