package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"swipefeed/internal/domain"
	"swipefeed/internal/eventbus"
	"swipefeed/internal/feed"
	"swipefeed/internal/logging"
	"swipefeed/internal/ui/views"
)

// FeedEventMsg wraps a domain event forwarded into the program
type FeedEventMsg struct {
	Event eventbus.DomainEvent
}

type animTickMsg time.Time
type clearStatusMsg struct{}

const (
	animFrame       = 16 * time.Millisecond
	doubleTapWindow = 400 * time.Millisecond
	statusTimeout   = 3 * time.Second
)

// Options configure the feed view
type Options struct {
	Filter            domain.FeedFilter
	PrefetchLookahead int
	GestureThreshold  float64
	AnimationDuration time.Duration
	ShareBaseURL      string
}

// dragState tracks an active pointer drag. Intermediate positions only feed
// the elastic follow effect; the navigation decision happens once, at
// release.
type dragState struct {
	active   bool
	anchorY  int
	lastY    int
	lastAt   time.Time
	velocity float64 // rows per second, positive = upward
}

// Model is the feed view. It owns the buffer, navigator, gesture recognizer,
// transition controller and engagement store for its own lifetime; mounting a
// new feed view starts from scratch.
type Model struct {
	bus  eventbus.EventBus
	opts Options

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	renderer *views.Renderer

	buffer     *feed.Buffer
	nav        *feed.Navigator
	gesture    *feed.Recognizer
	transition *feed.Transition
	likes      *feed.Store

	width  int
	height int

	loading  bool
	loadErr  error
	status   string
	showHelp bool

	drag        dragState
	lastClickAt time.Time

	now func() time.Time // swapped out in tests
}

// NewModel creates a new feed view model
func NewModel(bus eventbus.EventBus, opts Options) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		bus:        bus,
		opts:       opts,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    sp,
		renderer:   views.NewRenderer(),
		buffer:     feed.NewBuffer(),
		nav:        feed.NewNavigator(opts.PrefetchLookahead),
		gesture:    feed.NewRecognizer(opts.GestureThreshold),
		transition: feed.NewTransition(opts.AnimationDuration),
		likes:      feed.NewStore(),
		now:        time.Now,
	}
}

// Init requests the first feed page
func (m *Model) Init() tea.Cmd {
	m.loading = true
	m.buffer.BeginInitial()
	m.bus.Publish(domain.FeedLoadRequestedEvent{Filter: m.opts.Filter})
	return m.spinner.Tick
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FeedEventMsg:
		return m.handleEvent(msg.Event)

	case animTickMsg:
		m.transition.Step(animFrame)
		if m.transition.Animating() {
			return m, animTick()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.buffer.Fetching() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

// handleKey processes key presses. Advance/retreat keys hit the navigator
// directly, bypassing the gesture recognizer.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Retry):
		return m, m.retry()
	case key.Matches(msg, m.keys.Advance):
		return m, m.advance()
	case key.Matches(msg, m.keys.Retreat):
		return m, m.retreat()
	case key.Matches(msg, m.keys.Like):
		return m, m.toggleLike()
	case key.Matches(msg, m.keys.Share):
		return m, m.share()
	case key.Matches(msg, m.keys.Remix):
		return m, m.remix()
	}
	return m, nil
}

// handleMouse tracks drags for the swipe gesture, detects double-taps, and
// maps the wheel to navigation
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		return m, m.retreat()
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		return m, m.advance()

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.drag = dragState{active: true, anchorY: msg.Y, lastY: msg.Y, lastAt: m.now()}

	case msg.Action == tea.MouseActionMotion:
		if !m.drag.active {
			break
		}
		now := m.now()
		if dt := now.Sub(m.drag.lastAt).Seconds(); dt > 0 {
			// Positive velocity = pointer moving up the screen, toward the
			// next post
			m.drag.velocity = float64(m.drag.lastY-msg.Y) / dt
		}
		m.drag.lastY = msg.Y
		m.drag.lastAt = now

	case msg.Action == tea.MouseActionRelease:
		if !m.drag.active {
			break
		}
		offset := float64(m.drag.anchorY - msg.Y)
		velocity := m.drag.velocity
		m.drag = dragState{}

		if offset == 0 && velocity == 0 {
			return m, m.handleClick()
		}

		// The one place a gesture can commit navigation
		switch m.gesture.Resolve(offset, velocity) {
		case feed.DecideAdvance:
			return m, m.advance()
		case feed.DecideRetreat:
			return m, m.retreat()
		}
		// Below threshold: the card snaps back, nothing committed
	}
	return m, nil
}

// handleClick turns two clicks inside the double-tap window into a
// double-tap like
func (m *Model) handleClick() tea.Cmd {
	now := m.now()
	if !m.lastClickAt.IsZero() && now.Sub(m.lastClickAt) <= doubleTapWindow {
		m.lastClickAt = time.Time{}
		return m.doubleTap()
	}
	m.lastClickAt = now
	return nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch event := event.(type) {
	case domain.FeedPageLoadedEvent:
		m.buffer.CompleteFetch(event.Page)
		if event.Initial {
			m.loading = false
			m.nav.Reset(m.buffer.Len())
		}
		return m, nil

	case domain.FeedLoadFailedEvent:
		m.buffer.FailFetch()
		if event.Initial {
			m.loading = false
			m.loadErr = event.Err
			return m, nil
		}
		// The visible post is untouched; just surface a notice
		m.status = "Couldn't load more posts"
		return m, clearStatusLater()

	case domain.LikeUpdatedEvent:
		m.likes.Confirm(event.PostID, event.Seq, event.State)
		return m, nil

	case domain.LikeFailedEvent:
		if m.likes.Fail(event.PostID, event.Seq) {
			m.status = "Like didn't go through"
			return m, clearStatusLater()
		}
		return m, nil

	case domain.ShareReadyEvent:
		return m, m.copyLink(event.URL)

	case domain.ShareFailedEvent:
		// Non-fatal: fall back to the canonical post link
		return m, m.copyLink(m.opts.ShareBaseURL + "/p/" + event.PostID)
	}

	return m, nil
}

// advance moves to the next post. At the end of the loaded buffer this is a
// boundary no-op: no transition starts and the view keeps showing the last
// post (with an end-of-feed notice once no more pages exist).
func (m *Model) advance() tea.Cmd {
	fromID := m.currentID()
	if !m.nav.Advance(m.buffer.Len()) {
		return nil
	}
	m.transition.Start(fromID, m.currentID(), feed.Forward)

	cmds := []tea.Cmd{animTick()}
	if m.nav.ShouldPrefetch(m.buffer.Len(), m.buffer.HasMore(), m.buffer.Fetching()) && m.buffer.BeginFetch() {
		m.bus.Publish(domain.FeedMoreRequestedEvent{Cursor: m.buffer.Cursor(), Filter: m.opts.Filter})
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// retreat moves to the previous post; the first post is a boundary no-op
func (m *Model) retreat() tea.Cmd {
	fromID := m.currentID()
	if !m.nav.Retreat() {
		return nil
	}
	m.transition.Start(fromID, m.currentID(), feed.Backward)
	return animTick()
}

// toggleLike is the like-button path: always toggles
func (m *Model) toggleLike() tea.Cmd {
	post, ok := m.buffer.Post(m.nav.Index())
	if !ok {
		return nil
	}
	mut := m.likes.Toggle(post)
	m.bus.Publish(domain.LikeToggleRequestedEvent{PostID: mut.PostID, Seq: mut.Seq})
	return nil
}

// doubleTap likes the current post if it isn't liked yet; it never unlikes
func (m *Model) doubleTap() tea.Cmd {
	post, ok := m.buffer.Post(m.nav.Index())
	if !ok {
		return nil
	}
	mut, issued := m.likes.DoubleTap(post)
	if !issued {
		return nil
	}
	m.bus.Publish(domain.LikeToggleRequestedEvent{PostID: mut.PostID, Seq: mut.Seq})
	return nil
}

// share asks the server for a share link; the result lands on the clipboard
func (m *Model) share() tea.Cmd {
	post, ok := m.buffer.Post(m.nav.Index())
	if !ok {
		return nil
	}
	m.bus.Publish(domain.ShareRequestedEvent{PostID: post.ID})
	return nil
}

// remix hands the current post off to the remix flow
func (m *Model) remix() tea.Cmd {
	post, ok := m.buffer.Post(m.nav.Index())
	if !ok {
		return nil
	}
	m.bus.Publish(domain.RemixRequestedEvent{PostID: post.ID})
	m.status = "Remix requested"
	return clearStatusLater()
}

// retry re-requests the first page after a failed initial load
func (m *Model) retry() tea.Cmd {
	if m.loadErr == nil {
		return nil
	}
	m.loadErr = nil
	m.loading = true
	m.buffer.BeginInitial()
	m.bus.Publish(domain.FeedLoadRequestedEvent{Filter: m.opts.Filter})
	return m.spinner.Tick
}

// copyLink puts a share URL on the clipboard
func (m *Model) copyLink(url string) tea.Cmd {
	if err := clipboard.WriteAll(url); err != nil {
		logging.Warn("clipboard copy failed", "error", err)
		m.status = "Share link: " + url
	} else {
		m.status = "Link copied to clipboard"
	}
	return clearStatusLater()
}

// currentID returns the id of the post the navigator points at
func (m *Model) currentID() string {
	if p, ok := m.buffer.Post(m.nav.Index()); ok {
		return p.ID
	}
	return ""
}

// card builds the renderable projection of the post at index i
func (m *Model) card(i int) (views.Card, bool) {
	p, ok := m.buffer.Post(i)
	if !ok {
		return views.Card{}, false
	}
	liked, count := m.likes.View(p)
	return views.Card{
		ID:           p.ID,
		Title:        p.Title,
		Author:       p.Author,
		ImageURL:     p.ImageURL,
		Liked:        liked,
		LikeCount:    count,
		CommentCount: p.CommentCount,
		RemixCount:   p.RemixCount,
	}, true
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:    m.width,
		Height:   m.height,
		Loading:  m.loading,
		Spinner:  m.spinner.View(),
		LoadErr:  m.loadErr,
		Empty:    !m.loading && m.loadErr == nil && m.buffer.Len() == 0,
		Index:    m.nav.Index(),
		Total:    m.buffer.Len(),
		HasMore:  m.buffer.HasMore(),
		Fetching: m.buffer.Fetching(),
		Status:   m.status,
		ShowHelp: m.showHelp,
		HelpView: m.help.View(m.keys),
	}

	if card, ok := m.card(m.nav.Index()); ok {
		state.HasPost = true
		state.Current = card
		state.AtEnd = m.nav.Index() == m.buffer.Len()-1 && !m.buffer.HasMore()
	}

	if m.transition.Animating() {
		// The index was committed at transition start; the outgoing card sits
		// one step back along the travel direction
		outIdx := m.nav.Index() - int(m.transition.Direction())
		if out, ok := m.card(outIdx); ok {
			state.Animating = true
			state.Forward = m.transition.Direction() == feed.Forward
			state.Progress = m.transition.Progress()
			state.Outgoing = out
		}
	} else if m.drag.active {
		// Elastic follow: the card trails the pointer at half distance
		state.DragOffset = (m.drag.anchorY - m.drag.lastY) / 2
	}

	return m.renderer.Render(state)
}
