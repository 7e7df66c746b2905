package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rawwerks/sysoverview/internal/model"
)

func procList(n int) []model.Process {
	procs := make([]model.Process, n)
	for i := range procs {
		procs[i] = model.Process{PID: int32(100 + i), Name: "proc"}
	}
	return procs
}

func TestSelectorEnterKillFromNormal(t *testing.T) {
	var s Selector
	s.EnterKill(5)
	assert.Equal(t, ModeKill, s.Mode)
	assert.Equal(t, 0, s.Index)
}

func TestSelectorEnterKillEmptyListIsNoop(t *testing.T) {
	var s Selector
	s.EnterKill(0)
	assert.Equal(t, ModeNormal, s.Mode)
}

func TestSelectorMoveClampsWithoutWraparound(t *testing.T) {
	var s Selector
	s.EnterKill(3)

	s.Move(-1, 3)
	assert.Equal(t, 0, s.Index, "no wrap below zero")

	s.Move(1, 3)
	s.Move(1, 3)
	s.Move(1, 3)
	assert.Equal(t, 2, s.Index, "no wrap past the end")
}

func TestSelectorMoveIgnoredOutsideKillMode(t *testing.T) {
	var s Selector
	s.Move(1, 5)
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, ModeNormal, s.Mode)
}

func TestSelectorIndexAlwaysInBounds(t *testing.T) {
	var s Selector
	s.EnterKill(5)
	moves := []int{1, 1, 1, 1, 1, 1, -1, -1, -1, -1, -1, -1, 1}
	for _, d := range moves {
		s.Move(d, 5)
		assert.GreaterOrEqual(t, s.Index, 0)
		assert.Less(t, s.Index, 5)
	}
}

func TestSelectorResizeShrinkingListClamps(t *testing.T) {
	var s Selector
	s.EnterKill(10)
	s.Move(9, 10)
	assert.Equal(t, 9, s.Index)

	s.Resize(4)
	assert.Equal(t, 3, s.Index)
}

func TestSelectorResizeEmptyListResetsAndExitsKillMode(t *testing.T) {
	var s Selector
	s.EnterKill(5)
	s.Move(3, 5)

	s.Resize(0)
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, ModeNormal, s.Mode)
}

func TestSelectorCaptureFixesTargetAtTransitionTime(t *testing.T) {
	procs := procList(5)

	var s Selector
	s.EnterKill(len(procs))
	s.Move(1, len(procs))
	s.Move(1, len(procs))
	s.Capture(procs)

	assert.Equal(t, ModeConfirm, s.Mode)
	pid, _ := s.Target()
	assert.Equal(t, int32(102), pid, "pid captured from index 2")

	// The list reorders before the user answers; the target must not move.
	reordered := []model.Process{procs[4], procs[3], procs[2], procs[1], procs[0]}
	s.Resize(len(reordered))
	pid, _ = s.Target()
	assert.Equal(t, int32(102), pid)
}

func TestSelectorConfirmSurvivesListEmptying(t *testing.T) {
	procs := procList(2)

	var s Selector
	s.EnterKill(len(procs))
	s.Capture(procs)
	s.Resize(0)

	assert.Equal(t, ModeConfirm, s.Mode, "pending confirmation is not dropped by sampling")
	pid, _ := s.Target()
	assert.Equal(t, int32(100), pid)
}

func TestSelectorCancelClearsTarget(t *testing.T) {
	procs := procList(3)

	var s Selector
	s.EnterKill(len(procs))
	s.Capture(procs)
	s.Cancel()

	assert.Equal(t, ModeNormal, s.Mode)
	pid, name := s.Target()
	assert.Zero(t, pid)
	assert.Empty(t, name)
}
