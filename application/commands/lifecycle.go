package commands

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"eventdeck/pkg/observability"
)

// Phase is a mutation's position in its lifecycle. Every mutation moves
// Validating → Resolving → Submitting and terminates in Succeeded or
// Failed; validation failures never reach Submitting.
type Phase string

const (
	PhaseValidating Phase = "validating"
	PhaseResolving  Phase = "resolving"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// mutation tracks one in-flight mutation request for logging and metrics
type mutation struct {
	id      string
	command string
	phase   Phase
	logger  *zap.Logger
	metrics *observability.Metrics
}

func newMutation(command string, logger *zap.Logger, metrics *observability.Metrics) *mutation {
	return &mutation{
		id:      uuid.New().String(),
		command: command,
		logger:  logger,
		metrics: metrics,
	}
}

// enter moves the mutation into the given phase
func (m *mutation) enter(phase Phase) {
	m.phase = phase
	m.logger.Debug("mutation phase",
		zap.String("mutationID", m.id),
		zap.String("command", m.command),
		zap.String("phase", string(phase)),
	)
}

// fail terminates the mutation, recording the phase it died in
func (m *mutation) fail(err error) error {
	failedIn := m.phase
	m.phase = PhaseFailed
	m.logger.Warn("mutation failed",
		zap.String("mutationID", m.id),
		zap.String("command", m.command),
		zap.String("phase", string(failedIn)),
		zap.Error(err),
	)
	if m.metrics != nil {
		m.metrics.RecordMutation(m.command, string(PhaseFailed))
	}
	return err
}

// succeed terminates the mutation successfully
func (m *mutation) succeed() {
	m.phase = PhaseSucceeded
	m.logger.Info("mutation succeeded",
		zap.String("mutationID", m.id),
		zap.String("command", m.command),
	)
	if m.metrics != nil {
		m.metrics.RecordMutation(m.command, string(PhaseSucceeded))
	}
}
