package workflow

import (
	"fmt"

	"github.com/shrimpsizemoose/trekker/logger"
)

// Step is one compensable unit of a multi-call workflow.
type Step struct {
	Name string
	Run  func() error
	Undo func() error
}

// Saga runs steps in order. When a step fails, the Undo actions of every
// already-completed step run in reverse order, so the store is never left
// with a half-applied workflow.
type Saga struct {
	steps []Step
}

func NewSaga(steps ...Step) *Saga {
	return &Saga{steps: steps}
}

func (s *Saga) Execute() error {
	for i, step := range s.steps {
		if err := step.Run(); err != nil {
			s.compensate(i - 1)
			return fmt.Errorf("step %s failed: %w", step.Name, err)
		}
	}
	return nil
}

func (s *Saga) compensate(from int) {
	for i := from; i >= 0; i-- {
		step := s.steps[i]
		if step.Undo == nil {
			continue
		}
		if err := step.Undo(); err != nil {
			// nothing left to do but record it; the operator has to reconcile
			logger.Error.Printf("Failed to undo step %s: %v", step.Name, err)
		}
	}
}
