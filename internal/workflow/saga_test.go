package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaga_AllStepsRun(t *testing.T) {
	var ran []string

	saga := NewSaga(
		Step{
			Name: "first",
			Run:  func() error { ran = append(ran, "first"); return nil },
			Undo: func() error { ran = append(ran, "undo-first"); return nil },
		},
		Step{
			Name: "second",
			Run:  func() error { ran = append(ran, "second"); return nil },
		},
	)

	err := saga.Execute()
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, ran)
}

func TestSaga_UndoRunsInReverseOnFailure(t *testing.T) {
	var ran []string

	saga := NewSaga(
		Step{
			Name: "first",
			Run:  func() error { ran = append(ran, "first"); return nil },
			Undo: func() error { ran = append(ran, "undo-first"); return nil },
		},
		Step{
			Name: "second",
			Run:  func() error { ran = append(ran, "second"); return nil },
			Undo: func() error { ran = append(ran, "undo-second"); return nil },
		},
		Step{
			Name: "third",
			Run:  func() error { return errors.New("boom") },
		},
	)

	err := saga.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "step third failed")
	assert.Equal(t, []string{"first", "second", "undo-second", "undo-first"}, ran)
}

func TestSaga_FirstStepFailureUndoesNothing(t *testing.T) {
	undone := false

	saga := NewSaga(
		Step{
			Name: "only",
			Run:  func() error { return errors.New("boom") },
			Undo: func() error { undone = true; return nil },
		},
	)

	err := saga.Execute()
	assert.Error(t, err)
	assert.False(t, undone)
}
