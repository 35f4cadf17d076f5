package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
years: 2
seed: 42
startDate: "2025-03-01"
machineTypes:
  - name: press
    mttfDays: 120
    repairDays: 4
    quantity: 12
  - name: lathe
    mttfDays: 200
    repairDays: 6
    quantity: 5
    maintenanceSchedule: "0 0 * * 1"
adjusterGroups:
  - id: mechanics
    count: 3
    services: [press, lathe]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigValid(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Years)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "2025-03-01", cfg.StartDate)

	require.Len(t, cfg.MachineTypes, 2)
	assert.Equal(t, "press", cfg.MachineTypes[0].Name)
	assert.Equal(t, 120, cfg.MachineTypes[0].MTTFDays)
	assert.Equal(t, "0 0 * * 1", cfg.MachineTypes[1].MaintenanceSchedule)

	require.Len(t, cfg.AdjusterGroups, 1)
	assert.True(t, cfg.AdjusterGroups[0].CanService("lathe"))
	assert.False(t, cfg.AdjusterGroups[0].CanService("mill"))
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "years: [not an int"))
	assert.Error(t, err)
}

func TestLoadConfigRejections(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "years out of range",
			yaml: `
years: 2000
machineTypes:
  - {name: press, mttfDays: 10, repairDays: 2, quantity: 1}
adjusterGroups:
  - {id: crew, count: 1, services: [press]}
`,
			wantErr: "years",
		},
		{
			name:    "no machine types",
			yaml:    "years: 1\nadjusterGroups:\n  - {id: crew, count: 1, services: [press]}\n",
			wantErr: "at least one machine type",
		},
		{
			name:    "no adjuster groups",
			yaml:    "years: 1\nmachineTypes:\n  - {name: press, mttfDays: 10, repairDays: 2, quantity: 1}\n",
			wantErr: "at least one adjuster group",
		},
		{
			name: "duplicate machine type name",
			yaml: `
years: 1
machineTypes:
  - {name: press, mttfDays: 10, repairDays: 2, quantity: 1}
  - {name: press, mttfDays: 20, repairDays: 3, quantity: 1}
adjusterGroups:
  - {id: crew, count: 1, services: [press]}
`,
			wantErr: "name already used",
		},
		{
			name: "duplicate adjuster group id",
			yaml: `
years: 1
machineTypes:
  - {name: press, mttfDays: 10, repairDays: 2, quantity: 1}
adjusterGroups:
  - {id: crew, count: 1, services: [press]}
  - {id: crew, count: 2, services: [press]}
`,
			wantErr: "id already used",
		},
		{
			name: "unknown service reference",
			yaml: `
years: 1
machineTypes:
  - {name: press, mttfDays: 10, repairDays: 2, quantity: 1}
adjusterGroups:
  - {id: crew, count: 1, services: [lathe]}
`,
			wantErr: "unknown machine type",
		},
		{
			name: "empty services",
			yaml: `
years: 1
machineTypes:
  - {name: press, mttfDays: 10, repairDays: 2, quantity: 1}
adjusterGroups:
  - {id: crew, count: 1, services: []}
`,
			wantErr: "services must name at least one",
		},
		{
			name: "quantity out of range",
			yaml: `
years: 1
machineTypes:
  - {name: press, mttfDays: 10, repairDays: 2, quantity: 1001}
adjusterGroups:
  - {id: crew, count: 1, services: [press]}
`,
			wantErr: "quantity",
		},
		{
			name: "mttf out of range",
			yaml: `
years: 1
machineTypes:
  - {name: press, mttfDays: 0, repairDays: 2, quantity: 1}
adjusterGroups:
  - {id: crew, count: 1, services: [press]}
`,
			wantErr: "mttfDays",
		},
		{
			name: "bad maintenance schedule",
			yaml: `
years: 1
machineTypes:
  - {name: press, mttfDays: 10, repairDays: 2, quantity: 1, maintenanceSchedule: "every monday"}
adjusterGroups:
  - {id: crew, count: 1, services: [press]}
`,
			wantErr: "maintenance schedule",
		},
		{
			name: "bad start date",
			yaml: `
years: 1
startDate: "03/01/2025"
machineTypes:
  - {name: press, mttfDays: 10, repairDays: 2, quantity: 1}
adjusterGroups:
  - {id: crew, count: 1, services: [press]}
`,
			wantErr: "startDate",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.yaml))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadConfigYearsMayBeDeferred(t *testing.T) {
	// years left at 0 is accepted; the CLI supplies it via flag.
	yaml := `
machineTypes:
  - {name: press, mttfDays: 10, repairDays: 2, quantity: 1}
adjusterGroups:
  - {id: crew, count: 1, services: [press]}
`
	cfg, err := LoadConfig(writeConfig(t, yaml))
	require.NoError(t, err)
	assert.Zero(t, cfg.Years)
}

func TestValidateMachineType(t *testing.T) {
	assert.Error(t, ValidateMachineType(MachineType{MTTFDays: 10, RepairDays: 2, Quantity: 1}))
	assert.Error(t, ValidateMachineType(MachineType{Name: "press", MTTFDays: 10, RepairDays: 10001, Quantity: 1}))
	assert.NoError(t, ValidateMachineType(MachineType{Name: "press", MTTFDays: 10, RepairDays: 2, Quantity: 1}))
}

func TestValidateAdjusterGroup(t *testing.T) {
	known := map[string]bool{"press": true}
	assert.Error(t, ValidateAdjusterGroup(AdjusterGroup{Count: 1, Services: []string{"press"}}, known))
	assert.Error(t, ValidateAdjusterGroup(AdjusterGroup{ID: "crew", Count: 0, Services: []string{"press"}}, known))
	assert.NoError(t, ValidateAdjusterGroup(AdjusterGroup{ID: "crew", Count: 1, Services: []string{"press"}}, known))
}
