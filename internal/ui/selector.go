package ui

import "github.com/rawwerks/sysoverview/internal/model"

// SelectorMode is the interactive process-control state.
type SelectorMode int

const (
	// ModeNormal is the passive dashboard view.
	ModeNormal SelectorMode = iota
	// ModeKill lets the user move the highlight across the process table.
	ModeKill
	// ModeConfirm waits for y/n on a captured target.
	ModeConfirm
)

// Selector tracks kill-mode state across ticks. Transitions happen only on
// key events; sampling merely re-clamps the index against the fresh list.
type Selector struct {
	Mode       SelectorMode
	Index      int
	TargetPID  int32
	TargetName string
}

// Resize clamps the highlight to the current process list. An empty list
// resets the index and drops back out of kill mode, since there is nothing
// left to select. A pending confirmation keeps its captured target: the
// pid was fixed at capture time and may legitimately be gone already.
func (s *Selector) Resize(listLen int) {
	if listLen == 0 {
		s.Index = 0
		if s.Mode == ModeKill {
			s.Mode = ModeNormal
		}
		return
	}
	if s.Index > listLen-1 {
		s.Index = listLen - 1
	}
	if s.Index < 0 {
		s.Index = 0
	}
}

// EnterKill switches Normal -> KillMode, keeping the previous index when it
// is still in bounds. No-op on an empty list.
func (s *Selector) EnterKill(listLen int) {
	if s.Mode != ModeNormal || listLen == 0 {
		return
	}
	s.Mode = ModeKill
	s.Resize(listLen)
}

// Move shifts the highlight by delta, clamped to the list bounds without
// wraparound. Only meaningful in kill mode.
func (s *Selector) Move(delta, listLen int) {
	if s.Mode != ModeKill {
		return
	}
	s.Index += delta
	s.Resize(listLen)
}

// Capture switches KillMode -> ConfirmKill, fixing the target at the row
// currently under the highlight. The pid is not re-read later, so the
// confirmation applies to the process the user saw even if the list
// reorders before they answer.
func (s *Selector) Capture(procs []model.Process) {
	if s.Mode != ModeKill || s.Index >= len(procs) {
		return
	}
	target := procs[s.Index]
	s.Mode = ModeConfirm
	s.TargetPID = target.PID
	s.TargetName = target.Name
}

// Target returns the captured pid and name for the pending confirmation.
func (s *Selector) Target() (int32, string) { return s.TargetPID, s.TargetName }

// Cancel aborts kill or confirm mode with no side effect.
func (s *Selector) Cancel() {
	s.Mode = ModeNormal
	s.TargetPID = 0
	s.TargetName = ""
}
