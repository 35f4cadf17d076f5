package simulation

import (
	"testing"
	"time"

	"github.com/sherine-k/fms/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceDaysWeekly(t *testing.T) {
	// 2025-01-01 is a Wednesday, so a Monday schedule first fires on day 6.
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	mt := config.MachineType{
		Name:                "press",
		MTTFDays:            100,
		RepairDays:          2,
		Quantity:            1,
		MaintenanceSchedule: "0 0 * * 1",
	}

	days, err := maintenanceDays(mt, start, 30)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{6: true, 13: true, 20: true, 27: true}, days)
}

func TestMaintenanceDaysDaily(t *testing.T) {
	mt := config.MachineType{MaintenanceSchedule: "0 0 * * *"}

	days, err := maintenanceDays(mt, defaultStartDate, 10)
	require.NoError(t, err)
	require.Len(t, days, 9)
	for day := 2; day <= 10; day++ {
		assert.True(t, days[day], "day %d", day)
	}
}

func TestMaintenanceDaysNoSchedule(t *testing.T) {
	days, err := maintenanceDays(config.MachineType{Name: "press"}, defaultStartDate, 10)
	require.NoError(t, err)
	assert.Nil(t, days)
}

func TestMaintenanceDaysScheduleNeverFires(t *testing.T) {
	// February 30th parses but has no occurrence, so the expansion
	// must come back empty rather than spin on the zero time.
	mt := config.MachineType{
		Name:                "press",
		MTTFDays:            100,
		RepairDays:          2,
		Quantity:            1,
		MaintenanceSchedule: "0 0 30 2 *",
	}
	require.NoError(t, config.ValidateMachineType(mt))

	type expansion struct {
		days map[int]bool
		err  error
	}
	done := make(chan expansion, 1)
	go func() {
		days, err := maintenanceDays(mt, defaultStartDate, 10*DaysPerYear)
		done <- expansion{days: days, err: err}
	}()

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.Empty(t, res.days)
	case <-time.After(3 * time.Second):
		t.Fatal("maintenanceDays did not return for a schedule that never fires")
	}
}

func TestMaintenanceDaysBadSchedule(t *testing.T) {
	mt := config.MachineType{MaintenanceSchedule: "not a schedule"}
	_, err := maintenanceDays(mt, defaultStartDate, 10)
	assert.Error(t, err)
}
