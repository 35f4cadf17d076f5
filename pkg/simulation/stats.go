package simulation

// MachineTypeStats holds the end-of-run numbers for one machine type
type MachineTypeStats struct {
	Name          string
	Quantity      int
	UptimePercent float64
}

// AdjusterGroupStats holds the end-of-run numbers for one adjuster group
type AdjusterGroupStats struct {
	ID                 string
	Count              int
	UtilizationPercent float64
}

// Results aggregates a completed run. Uptime percentages are estimates
// based on each machine's current run segment at the end of the horizon,
// not cumulative working days.
type Results struct {
	HorizonDays            int
	MachineTypes           []MachineTypeStats
	AdjusterGroups         []AdjusterGroupStats
	OverallMachinePercent  float64
	OverallAdjusterPercent float64
	MaxQueueDepth          int
}

// Results computes the aggregate statistics for the completed run.
// The numbers are only meaningful once Run has returned; before that the
// counters are zero and every percentage comes back as 0.
func (s *Simulator) Results() Results {
	results := Results{
		HorizonDays:   s.horizonDays,
		MaxQueueDepth: s.maxQueueDepth,
	}

	var totalMachineDays, totalWorkingDays int64
	for g, mt := range s.machineTypes {
		available := int64(mt.Quantity) * int64(s.horizonDays)
		totalMachineDays += available

		var workingDays int64
		// Catalog entries added after the last run have no population yet.
		if g < len(s.machines) {
			for _, m := range s.machines[g] {
				if m.Working {
					workingDays += int64(m.RunningDays)
				}
			}
		}
		totalWorkingDays += workingDays

		results.MachineTypes = append(results.MachineTypes, MachineTypeStats{
			Name:          mt.Name,
			Quantity:      mt.Quantity,
			UptimePercent: percent(workingDays, available),
		})
	}
	results.OverallMachinePercent = percent(totalWorkingDays, totalMachineDays)

	var totalAdjusterDays, totalBusyDays int64
	for g, group := range s.adjusterGroups {
		available := int64(group.Count) * int64(s.horizonDays)
		totalAdjusterDays += available

		var busyDays int64
		if g < len(s.adjusters) {
			for _, adj := range s.adjusters[g] {
				busyDays += int64(adj.TotalBusyDays)
			}
		}
		totalBusyDays += busyDays

		results.AdjusterGroups = append(results.AdjusterGroups, AdjusterGroupStats{
			ID:                 group.ID,
			Count:              group.Count,
			UtilizationPercent: percent(busyDays, available),
		})
	}
	results.OverallAdjusterPercent = percent(totalBusyDays, totalAdjusterDays)

	return results
}

func percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}
