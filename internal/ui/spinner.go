package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Spinner wraps a Bubbletea spinner for fire-and-forget progress display
// during a blocking operation. When the terminal is not a TTY the spinner
// degrades to a no-op so command output stays clean in scripts and CI.
//
// All rendering goes to stderr: stdout is reserved for primary data and
// must stay clean for piping (e.g. cd "$(bosk new x -q)").
type Spinner struct {
	out     io.Writer
	message string

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// spinnerModel is the internal Bubbletea model
type spinnerModel struct {
	spinner spinner.Model
	message string
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.message == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// NewSpinner creates a new spinner with the given message.
func NewSpinner(message string) *Spinner {
	return &Spinner{out: os.Stderr, message: message}
}

// Start begins the spinner animation. No-op outside a terminal.
func (s *Spinner) Start() {
	if !IsInteractive() {
		return
	}
	s.start()
}

// start runs the program regardless of terminal state.
func (s *Spinner) start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program != nil {
		return
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AccentStyle

	// Signal handling belongs to the command dispatcher; the program must
	// not install its own. Rendering targets s.out, never stdout.
	s.program = tea.NewProgram(
		spinnerModel{spinner: sp, message: s.message},
		tea.WithoutSignalHandler(),
		tea.WithOutput(s.out),
		tea.WithInput(nil),
	)
	s.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		_, _ = p.Run()
		close(done)
	}(s.program, s.done)
}

// Stop stops the spinner and clears its line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	program, done := s.program, s.done
	s.program = nil
	s.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
	}

	fmt.Fprint(s.out, "\r\033[K")
}
