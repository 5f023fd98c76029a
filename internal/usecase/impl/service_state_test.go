package impl

import (
	"testing"

	"georemind/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceStateMachine_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		path     []entity.ServiceStatus
		target   entity.ServiceStatus
		changed  bool
		wantErr  bool
		tracking bool
		paused   bool
	}{
		{name: "stopped to running", target: entity.ServiceStatusRunning, changed: true, tracking: true},
		{name: "stopped to paused is illegal", target: entity.ServiceStatusPaused, wantErr: true},
		{name: "stopped to stopped is a no-op", target: entity.ServiceStatusStopped},
		{
			name:     "running to paused",
			path:     []entity.ServiceStatus{entity.ServiceStatusRunning},
			target:   entity.ServiceStatusPaused,
			changed:  true,
			tracking: true,
			paused:   true,
		},
		{
			name:     "running to running is a no-op",
			path:     []entity.ServiceStatus{entity.ServiceStatusRunning},
			target:   entity.ServiceStatusRunning,
			tracking: true,
		},
		{
			name:     "paused to running",
			path:     []entity.ServiceStatus{entity.ServiceStatusRunning, entity.ServiceStatusPaused},
			target:   entity.ServiceStatusRunning,
			changed:  true,
			tracking: true,
		},
		{
			name:    "paused to stopped",
			path:    []entity.ServiceStatus{entity.ServiceStatusRunning, entity.ServiceStatusPaused},
			target:  entity.ServiceStatusStopped,
			changed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			machine := newServiceStateMachine()
			for _, step := range tt.path {
				_, err := machine.Transition(step)
				require.NoError(t, err)
			}
			before := machine.Status()

			changed, err := machine.Transition(tt.target)
			if tt.wantErr {
				require.ErrorIs(t, err, errIllegalTransition)
				assert.Equal(t, before, machine.Status())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.target, machine.Status())
			assert.Equal(t, tt.tracking, machine.IsTracking())
			assert.Equal(t, tt.paused, machine.IsPaused())
		})
	}
}

func TestServiceStateMachine_SnapshotIsDetached(t *testing.T) {
	machine := newServiceStateMachine()
	machine.SetLastLocation(entity.Position{Latitude: 1, Longitude: 2})
	machine.SetActiveRemindersCount(3)

	snapshot := machine.Snapshot()
	require.NotNil(t, snapshot.LastLocation)
	snapshot.LastLocation.Latitude = 99

	again := machine.Snapshot()
	assert.InDelta(t, 1.0, again.LastLocation.Latitude, 0)
	assert.Equal(t, 3, again.ActiveRemindersCount)
}

func TestServiceStateMachine_Reset(t *testing.T) {
	machine := newServiceStateMachine()
	_, err := machine.Transition(entity.ServiceStatusRunning)
	require.NoError(t, err)
	machine.SetLastLocation(entity.Position{Latitude: 1})

	machine.reset()

	assert.Equal(t, entity.ServiceState{Status: entity.ServiceStatusStopped}, machine.Snapshot())
}
