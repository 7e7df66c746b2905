// Package ui renders live snapshots as a colored panel dashboard and
// handles the interactive kill flow.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rawwerks/sysoverview/internal/config"
	"github.com/rawwerks/sysoverview/internal/model"
	"github.com/rawwerks/sysoverview/internal/proc"
	"github.com/rawwerks/sysoverview/internal/sampler"
)

// pollInterval is how often the UI drains the snapshot stream. It is much
// shorter than the sampling interval so key presses stay responsive even
// while a sampler is stuck on a slow system call.
const pollInterval = 200 * time.Millisecond

// Model renders live snapshots from the sampler engine. All selector
// mutation happens inside Update; Bubble Tea's single event queue is the
// serialization point, so the loop never observes a torn state.
type Model struct {
	cfg    config.Config
	latest model.Snapshot
	stream <-chan model.Snapshot
	cancel context.CancelFunc
	log    *zap.Logger

	sel          Selector
	keys         keyMap
	help         help.Model
	gpuAvailable bool

	statusText string
	statusErr  bool

	width  int
	height int

	// terminate is swappable in tests.
	terminate func(pid int32) (killed bool, err error)
}

// New builds the dashboard model on top of a running engine stream.
func New(cfg config.Config, eng *sampler.Engine, gpuAvailable bool, log *zap.Logger) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		cfg:          cfg,
		stream:       eng.Stream(ctx),
		cancel:       cancel,
		log:          log,
		keys:         newKeyMap(),
		help:         help.New(),
		gpuAvailable: gpuAvailable,
		width:        120,
		height:       40,
		terminate:    proc.Terminate,
	}
}

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) Init() tea.Cmd { return tickCmd() }

// Run starts the Bubble Tea program in the alt screen and blocks until the
// user quits or the context is interrupted. The terminal is restored on
// the way out by Bubble Tea regardless of how the loop ends.
func Run(cfg config.Config, eng *sampler.Engine, gpuAvailable bool, log *zap.Logger) error {
	prog := tea.NewProgram(New(cfg, eng, gpuAvailable, log), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
