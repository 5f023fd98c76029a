package impl

import (
	"georemind/internal/domain/entity"
	"georemind/internal/errors"
)

var errIllegalTransition = errors.New("illegal service transition")

// legalTransitions lists every status change the engine may make.
// Staying in the current status is always allowed and is a no-op.
var legalTransitions = map[entity.ServiceStatus][]entity.ServiceStatus{
	entity.ServiceStatusStopped: {entity.ServiceStatusRunning},
	entity.ServiceStatusRunning: {entity.ServiceStatusPaused, entity.ServiceStatusStopped},
	entity.ServiceStatusPaused:  {entity.ServiceStatusRunning, entity.ServiceStatusStopped},
}

// serviceStateMachine owns the engine's ServiceState and keeps Status consistent
// with Tracking and Paused. Like the registry it relies on the engine's lock.
type serviceStateMachine struct {
	state entity.ServiceState
}

func newServiceStateMachine() *serviceStateMachine {
	m := &serviceStateMachine{}
	m.reset()

	return m
}

func (m *serviceStateMachine) Status() entity.ServiceStatus {
	return m.state.Status
}

func (m *serviceStateMachine) IsTracking() bool {
	return m.state.Tracking
}

func (m *serviceStateMachine) IsPaused() bool {
	return m.state.Paused
}

// Transition moves to the target status. It reports whether anything changed;
// a transition to the current status is a no-op.
func (m *serviceStateMachine) Transition(target entity.ServiceStatus) (bool, error) {
	current := m.state.Status
	if current == target {
		return false, nil
	}

	allowed := false
	for _, next := range legalTransitions[current] {
		if next == target {
			allowed = true

			break
		}
	}
	if !allowed {
		return false, errors.Wrapf(errIllegalTransition, "%s -> %s", current, target)
	}

	switch target {
	case entity.ServiceStatusRunning:
		m.state.Tracking, m.state.Paused = true, false
	case entity.ServiceStatusPaused:
		m.state.Tracking, m.state.Paused = true, true
	case entity.ServiceStatusStopped:
		m.state.Tracking, m.state.Paused = false, false
	}
	m.state.Status = target

	return true, nil
}

func (m *serviceStateMachine) SetLastLocation(position entity.Position) {
	m.state.LastLocation = &position
}

func (m *serviceStateMachine) SetActiveRemindersCount(count int) {
	m.state.ActiveRemindersCount = count
}

// Snapshot returns a copy of the current state.
func (m *serviceStateMachine) Snapshot() entity.ServiceState {
	snapshot := m.state
	if m.state.LastLocation != nil {
		location := *m.state.LastLocation
		snapshot.LastLocation = &location
	}

	return snapshot
}

// reset restores the initial state: stopped, no location, no active reminders.
func (m *serviceStateMachine) reset() {
	m.state = entity.ServiceState{Status: entity.ServiceStatusStopped}
}
