package report

import (
	"fmt"
	"strings"

	"github.com/sherine-k/fms/pkg/simulation"
)

const (
	reportWidth = 80
)

// Generator renders run results and timelines as plain text
type Generator struct {
	width int
}

// NewGenerator creates a new report generator
func NewGenerator() *Generator {
	return &Generator{
		width: reportWidth,
	}
}

// GenerateMachineTable renders the per-type uptime table plus the overall
// machine utilization line
func (g *Generator) GenerateMachineTable(results simulation.Results) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Machine Utilization\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("%-25s%-15s%-20s\n", "Machine Type", "Quantity", "Estimated Uptime(%)"))
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")

	for _, mt := range results.MachineTypes {
		sb.WriteString(fmt.Sprintf("%-25s%-15d%-20.2f\n", mt.Name, mt.Quantity, mt.UptimePercent))
	}

	sb.WriteString(fmt.Sprintf("\nOverall machine utilization: %.2f%%\n", results.OverallMachinePercent))

	return sb.String()
}

// GenerateAdjusterTable renders the per-group utilization table plus the
// overall adjuster utilization line
func (g *Generator) GenerateAdjusterTable(results simulation.Results) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Adjuster Utilization\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("%-15s%-15s%-25s\n", "Adjuster ID", "Count", "Estimated Utilization(%)"))
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")

	for _, group := range results.AdjusterGroups {
		sb.WriteString(fmt.Sprintf("%-15s%-15d%-25.2f\n", group.ID, group.Count, group.UtilizationPercent))
	}

	sb.WriteString(fmt.Sprintf("\nOverall adjuster utilization: %.2f%%\n", results.OverallAdjusterPercent))

	return sb.String()
}

// GenerateQueueChart generates an ASCII chart of repair queue depth over
// the run, one sample per simulated day
func (g *Generator) GenerateQueueChart(events []simulation.Event, maxDepth int) string {
	samples := queueSamples(events)
	if len(samples) == 0 {
		return "No data to display"
	}

	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Repair Queue Depth Over Time\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	if maxDepth == 0 {
		sb.WriteString("The repair queue never backed up.\n")
		return sb.String()
	}

	chartWidth := g.width - 6

	// Draw rows from the deepest observed level down to 1.
	for row := maxDepth; row >= 1; row-- {
		sb.WriteString(fmt.Sprintf("%3d |", row))

		for x := 0; x < len(samples) && x < chartWidth; x++ {
			pointIndex := int(float64(x) / float64(chartWidth) * float64(len(samples)-1))
			if pointIndex >= len(samples) {
				pointIndex = len(samples) - 1
			}

			if samples[pointIndex] >= row {
				sb.WriteString("█")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	// X-axis
	sb.WriteString("    +")
	sb.WriteString(strings.Repeat("-", chartWidth))
	sb.WriteString("\n")

	// X-axis labels - day markers at regular intervals
	totalDays := len(samples)
	stride := totalDays / 8
	if stride < 1 {
		stride = 1
	}

	labelLine := make([]rune, chartWidth)
	for i := range labelLine {
		labelLine[i] = ' '
	}
	for day := 0; day <= totalDays; day += stride {
		position := 0
		if totalDays > 0 {
			position = int(float64(day) / float64(totalDays) * float64(chartWidth))
		}
		marker := fmt.Sprintf("%dd", day)
		if position+len(marker) <= chartWidth {
			for i, ch := range marker {
				labelLine[position+i] = ch
			}
		}
	}
	sb.WriteString("    ")
	sb.WriteString(string(labelLine))
	sb.WriteString("\n")

	sb.WriteString("\n")
	sb.WriteString("Legend:\n")
	sb.WriteString("    █ - Machines waiting for an adjuster\n")
	sb.WriteString("\n")

	return sb.String()
}

// GenerateEventSummary generates a summary of events by type
func (g *Generator) GenerateEventSummary(events []simulation.Event) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Event Summary\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	eventsByType := make(map[simulation.EventType]int)
	for _, event := range events {
		eventsByType[event.Type]++
	}

	sb.WriteString(fmt.Sprintf("Total Events: %d\n", len(events)))
	sb.WriteString(fmt.Sprintf("  - Machine Failures: %d\n", eventsByType[simulation.EventTypeMachineFailed]))
	sb.WriteString(fmt.Sprintf("  - Adjusters Assigned: %d\n", eventsByType[simulation.EventTypeAdjusterAssigned]))
	sb.WriteString(fmt.Sprintf("  - Repairs Finished: %d\n", eventsByType[simulation.EventTypeRepairFinished]))
	sb.WriteString(fmt.Sprintf("  - Preventive Maintenance: %d\n", eventsByType[simulation.EventTypeMaintenance]))
	sb.WriteString(fmt.Sprintf("  - Queue Samples: %d\n", eventsByType[simulation.EventTypeQueueSample]))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateRecentEvents renders the last limit timeline entries
func (g *Generator) GenerateRecentEvents(events []simulation.Event, limit int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Recent Simulation Events (last %d)\n", limit))
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	start := 0
	if len(events) > limit {
		start = len(events) - limit
	}
	for _, event := range events[start:] {
		sb.WriteString(fmt.Sprintf("Day %d: %s\n", event.Day, event.Message))
	}

	return sb.String()
}

// GenerateDetailedTimeline generates a detailed timeline of events
func (g *Generator) GenerateDetailedTimeline(events []simulation.Event, limit int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Detailed Timeline")
	if limit > 0 && limit < len(events) {
		sb.WriteString(fmt.Sprintf(" (showing first %d events)", limit))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	displayCount := len(events)
	if limit > 0 && limit < displayCount {
		displayCount = limit
	}

	for i := 0; i < displayCount; i++ {
		event := events[i]

		typeIcon := " "
		switch event.Type {
		case simulation.EventTypeMachineFailed:
			typeIcon = "!"
		case simulation.EventTypeAdjusterAssigned:
			typeIcon = "+"
		case simulation.EventTypeRepairFinished:
			typeIcon = "-"
		case simulation.EventTypeMaintenance:
			typeIcon = "M"
		case simulation.EventTypeQueueSample:
			typeIcon = "Q"
		}

		sb.WriteString(fmt.Sprintf("[day %4d] %s %s\n", event.Day, typeIcon, event.Message))
	}

	if limit > 0 && limit < len(events) {
		sb.WriteString(fmt.Sprintf("\n... and %d more events\n", len(events)-limit))
	}

	sb.WriteString("\n")

	return sb.String()
}

// GenerateMachineDetails renders the detail view for one machine type
func (g *Generator) GenerateMachineDetails(status simulation.MachineTypeStatus) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\nDetails of machine: %s\n", status.Type.Name))
	sb.WriteString(fmt.Sprintf("MTTF (days): %d\n", status.Type.MTTFDays))
	sb.WriteString(fmt.Sprintf("Repair time (days): %d\n", status.Type.RepairDays))
	sb.WriteString(fmt.Sprintf("Quantity: %d\n", status.Type.Quantity))
	if status.Type.MaintenanceSchedule != "" {
		sb.WriteString(fmt.Sprintf("Maintenance schedule: %s\n", status.Type.MaintenanceSchedule))
	}
	sb.WriteString(fmt.Sprintf("Currently working: %d\n", status.Working))
	sb.WriteString(fmt.Sprintf("Currently broken/repairing: %d\n", status.Broken))

	return sb.String()
}

// GenerateAdjusterDetails renders the detail view for one adjuster group
func (g *Generator) GenerateAdjusterDetails(status simulation.AdjusterGroupStatus) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\nAdjuster Group: %s\n", status.Group.ID))
	sb.WriteString(fmt.Sprintf("Count: %d\n", status.Group.Count))
	sb.WriteString("Services machine types:\n")
	for _, name := range status.Group.Services {
		sb.WriteString(fmt.Sprintf("  - %s\n", name))
	}
	sb.WriteString(fmt.Sprintf("Currently busy: %d\n", status.Busy))
	sb.WriteString(fmt.Sprintf("Currently idle: %d\n", status.Idle))

	return sb.String()
}

// queueSamples extracts the daily queue depth series from the timeline
func queueSamples(events []simulation.Event) []int {
	var samples []int
	for _, event := range events {
		if event.Type == simulation.EventTypeQueueSample {
			samples = append(samples, event.QueueDepth)
		}
	}
	return samples
}
