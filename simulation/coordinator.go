// Package simulation drives a DEVS model tree through the root
// coordinator loop. It is the sole caller of Start, Stop, Collection,
// Transition, and ClearPorts at the root of the tree; everything below
// the root is driven transitively by the modeling package's Coupled and
// AtomicSimulator implementations of Simulator.
package simulation

import (
	"github.com/google/uuid"
	"github.com/sarchlab/xdevs/modeling"
	"github.com/sirupsen/logrus"
)

// RootCoordinator drives a top-level DEVS model through repeated
// collection/transition cycles, always advancing to the model's minimum
// tNext. It owns the top-level model outright.
type RootCoordinator struct {
	model modeling.Simulator
	runID uuid.UUID
	log   *logrus.Entry
}

// NewRootCoordinator wraps model for simulation. model is typically the
// top-level Coupled returned by a fixture builder, but a lone Atomic
// wrapped with modeling.Wrap is equally valid.
func NewRootCoordinator(model modeling.Simulator) *RootCoordinator {
	runID := uuid.New()
	return &RootCoordinator{
		model: model,
		runID: runID,
		log: logrus.WithFields(logrus.Fields{
			"run_id": runID.String(),
			"model":  model.Name(),
		}),
	}
}

// Model returns the top-level model being simulated.
func (rc *RootCoordinator) Model() modeling.Simulator {
	return rc.model
}

// TNext returns the top-level model's next scheduled event time.
func (rc *RootCoordinator) TNext() float64 {
	return rc.model.TNext()
}

// SimulateTime runs the simulation from t=0 until the model's next
// event time reaches or exceeds tEnd.
func (rc *RootCoordinator) SimulateTime(tEnd float64) {
	rc.model.Start(0)
	tNext := rc.model.TNext()
	cycles := 0
	for tNext < tEnd {
		rc.model.Collection(tNext)
		rc.model.Transition(tNext)
		rc.model.ClearPorts()
		tNext = rc.model.TNext()
		cycles++
	}
	rc.log.WithFields(logrus.Fields{"cycles": cycles, "t_end": tEnd}).Debug("simulation complete")
	rc.model.Stop(tNext)
}

// SimulateSteps runs the simulation from t=0 for at most nSteps cycles,
// stopping earlier if the model reaches quiescence (tNext == +Inf).
func (rc *RootCoordinator) SimulateSteps(nSteps int) {
	rc.model.Start(0)
	tNext := rc.model.TNext()
	remaining := nSteps
	for tNext < modeling.PositiveInfinity() && remaining > 0 {
		rc.model.Collection(tNext)
		rc.model.Transition(tNext)
		rc.model.ClearPorts()
		tNext = rc.model.TNext()
		remaining--
	}
	rc.log.WithFields(logrus.Fields{
		"requested_steps": nSteps,
		"remaining_steps": remaining,
	}).Debug("simulation complete")
	rc.model.Stop(tNext)
}
