package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
	"github.com/tessro/playbar/internal/controls"
	"github.com/tessro/playbar/internal/core"
	"github.com/tessro/playbar/internal/logging"
	"github.com/tessro/playbar/internal/playback"
	"github.com/tessro/playbar/internal/tui/components"
	"github.com/tessro/playbar/internal/tui/styles"
)

// Settings tunes the TUI
type Settings struct {
	Theme        string
	DisableMouse bool
	SeekStep     float64       // seconds
	VolumeStep   float64       // percent
	SeekGuard    time.Duration // 0 disables
	SyncInterval time.Duration
}

func (s *Settings) applyDefaults() {
	if s.Theme == "" {
		s.Theme = styles.ThemeAuto
	}
	if s.SeekStep <= 0 {
		s.SeekStep = 5
	}
	if s.VolumeStep <= 0 {
		s.VolumeStep = 10
	}
	if s.SyncInterval <= 0 {
		s.SyncInterval = 250 * time.Millisecond
	}
}

// App holds the TUI application state
type App struct {
	player   *playback.Player
	controls *controls.Controls
	tracks   []core.Track
	relay    *relay
	settings Settings
	log      *log.Entry
}

// NewApp creates a new TUI application around player. Resource
// notifications reach the event loop through the program once Run starts.
func NewApp(player *playback.Player, tracks []core.Track, settings Settings, logger *log.Logger) *App {
	settings.applyDefaults()

	app := &App{
		player:   player,
		tracks:   tracks,
		relay:    newRelay(),
		settings: settings,
		log:      logging.Component(logger, "tui"),
	}
	app.controls = controls.New(player,
		controls.WithDispatcher(app.relay.post),
		controls.WithSeekGuard(settings.SeekGuard),
		controls.WithLogger(logger),
	)
	return app
}

// Controls returns the control surface
func (a *App) Controls() *controls.Controls {
	return a.controls
}

// Model is the main TUI model
type Model struct {
	app    *App
	width  int
	height int
	layout Layout

	keys   KeyMap
	help   help.Model
	styles styles.Styles

	// Components
	nowPlaying *components.NowPlaying
	transport  *components.Transport
	volume     *components.Volume
	trackList  *components.Tracks

	// Overlays
	showHelp bool

	// Error handling
	lastError   error
	errorExpiry time.Time

	quitting bool
}

// NewModel creates a new TUI model
func NewModel(app *App) Model {
	s := styles.New(app.settings.Theme)

	h := help.New()
	h.Styles.ShortKey = s.Highlight
	h.Styles.ShortDesc = s.Dim
	h.Styles.ShortSeparator = s.Dim
	h.Styles.FullKey = s.Highlight
	h.Styles.FullDesc = s.Dim
	h.Styles.FullSeparator = s.Dim

	return Model{
		app:        app,
		keys:       DefaultKeyMap,
		help:       h,
		styles:     s,
		nowPlaying: components.NewNowPlaying(s),
		transport:  components.NewTransport(s),
		volume:     components.NewVolume(s),
		trackList:  components.NewTracks(s),
	}
}

// Messages
type tickMsg time.Time
type errMsg error

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.app.settings.SyncInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = NewLayout(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case dispatchMsg:
		msg()
		return m, nil

	case tickMsg:
		if time.Now().After(m.errorExpiry) {
			m.lastError = nil
		}
		m.app.controls.Sync()
		return m, m.tick()

	case errMsg:
		m.lastError = msg
		m.errorExpiry = time.Now().Add(5 * time.Second)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.app.controls
	step := m.app.settings

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.PlayPause):
		c.TogglePlayPause()
	case key.Matches(msg, m.keys.SeekBack):
		c.SeekBy(-step.SeekStep)
	case key.Matches(msg, m.keys.SeekForward):
		c.SeekBy(step.SeekStep)
	case key.Matches(msg, m.keys.VolUp):
		c.AdjustVolume(step.VolumeStep)
	case key.Matches(msg, m.keys.VolDown):
		c.AdjustVolume(-step.VolumeStep)
	case key.Matches(msg, m.keys.Mute):
		c.ClickVolumeIcon()
	case key.Matches(msg, m.keys.Popover):
		c.ToggleVolumePopover()

	case key.Matches(msg, m.keys.Up):
		m.trackList.SelectPrev()
	case key.Matches(msg, m.keys.Down):
		m.trackList.SelectNext(len(m.app.tracks))
	case key.Matches(msg, m.keys.Select):
		return m, m.playSelected()
	}

	return m, nil
}

// handleMouse routes left-button presses to the control under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	c := m.app.controls
	l := m.layout
	x, y := msg.X, msg.Y

	switch {
	case l.Play.Contains(x, y):
		c.TogglePlayPause()
	case l.Prev.Contains(x, y):
		c.SkipBack()
	case l.Next.Contains(x, y):
		c.SkipForward()
	case l.Progress.Contains(x, y):
		c.ClickProgress(float64(x), l.Progress.Bar())
	case l.VolumeIcon.Contains(x, y):
		c.ClickVolumeIcon()
	case c.Snapshot().PopoverOpen && l.Popover.Contains(x, y):
		c.ClickVolume(float64(x), l.Popover.Bar())
	}
	return m, nil
}

// playSelected makes the track under the cursor current and starts it.
func (m Model) playSelected() tea.Cmd {
	i := m.trackList.Selected()
	if i < 0 || i >= len(m.app.tracks) {
		return nil
	}
	track := m.app.tracks[i]

	if err := m.app.player.Select(track); err != nil {
		m.app.log.WithError(err).WithField("track", track.Path).Warn("select failed")
		return func() tea.Msg { return errMsg(err) }
	}
	m.app.controls.TogglePlayPause()
	return nil
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	l := m.layout
	snap := m.app.controls.Snapshot()

	var body string
	switch {
	case l.Body.H >= 3 && m.showHelp:
		body = m.styles.Panel(true).
			Width(l.Body.W - 2).
			Height(l.Body.H - 2).
			Render(m.styles.PanelTitle("Keys", true) + "\n\n" + m.help.FullHelpView(m.keys.FullHelp()))
	case l.Body.H >= 3:
		body = m.trackList.Render(m.app.tracks, snap.Track, l.Body.W-2, l.Body.H-2, true)
	default:
		body = strings.Repeat("\n", max(l.Body.H-1, 0))
	}

	popover := strings.Repeat(" ", l.Popover.X) + m.volume.Popover(snap, l.Popover.W)

	bar := m.nowPlaying.Render(snap.Track, l.NowPlaying.W) +
		m.transport.Render(snap, l.Transport.W) +
		m.volume.Render(snap, l.Volume.W)

	rows := []string{popover, bar, m.renderStatusBar()}
	if l.Body.H > 0 {
		rows = append([]string{body}, rows...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderStatusBar() string {
	status := m.help.ShortHelpView(m.keys.ShortHelp())

	if m.lastError != nil {
		status = m.styles.Error.Render("Error: " + m.lastError.Error())
	}

	return lipgloss.NewStyle().
		Width(m.width).
		MaxWidth(m.width).
		MaxHeight(1).
		Render(status)
}

// Run starts the TUI with tracks[start] selected, or nothing selected when
// start is out of range.
func Run(app *App, start int) error {
	app.controls.Mount()
	defer app.controls.Unmount()

	model := NewModel(app)
	if start >= 0 && start < len(app.tracks) {
		if err := app.player.Select(app.tracks[start]); err != nil {
			return err
		}
		model.trackList.SetSelected(start)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !app.settings.DisableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	go app.relay.run(p.Send)
	defer app.relay.stop()

	app.log.WithField("tracks", len(app.tracks)).Info("starting")
	_, err := p.Run()
	return err
}
