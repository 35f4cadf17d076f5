package simulation

import (
	"time"

	"github.com/sherine-k/fms/pkg/config"
)

// defaultStartDate anchors simulated day 1 when the catalog does not set one.
var defaultStartDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// maintenanceDays expands a machine type's cron schedule into the set of
// simulated days (1-based) it fires on within the horizon. Types without a
// schedule get a nil set.
func maintenanceDays(mt config.MachineType, start time.Time, horizonDays int) (map[int]bool, error) {
	if mt.MaintenanceSchedule == "" {
		return nil, nil
	}

	schedule, err := config.ParseSchedule(mt.MaintenanceSchedule)
	if err != nil {
		return nil, err
	}

	days := make(map[int]bool)
	end := start.AddDate(0, 0, horizonDays)
	prev := start
	for t := schedule.Next(start); t.Before(end); t = schedule.Next(t) {
		// cron reports a schedule that never fires (such as February 30th)
		// with the zero time, which sorts before end.
		if t.IsZero() || !t.After(prev) {
			break
		}
		prev = t

		day := int(t.Sub(start).Hours()/24) + 1
		if day >= 1 && day <= horizonDays {
			days[day] = true
		}
	}
	return days, nil
}
