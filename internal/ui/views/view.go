package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card is the renderable projection of one post, with the engagement
// store's optimistic like state already applied
type Card struct {
	ID           string
	Title        string
	Author       string
	ImageURL     string
	Liked        bool
	LikeCount    int
	CommentCount int
	RemixCount   int
}

// ViewState contains all the state needed for rendering one frame
type ViewState struct {
	Width  int
	Height int

	Loading bool
	Spinner string
	LoadErr error
	Empty   bool

	HasPost bool
	Current Card
	Index   int // zero-based
	Total   int
	HasMore bool
	AtEnd   bool

	// Transition: when Animating, Outgoing is the card sliding away and
	// Current is the one sliding in. Forward means the incoming card enters
	// from the bottom edge.
	Animating bool
	Forward   bool
	Progress  float64
	Outgoing  Card

	// Elastic follow while a drag is in progress, in rows; positive moves
	// the card up. Cosmetic only.
	DragOffset int

	Fetching bool
	Status   string
	ShowHelp bool
	HelpView string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	header := r.renderHeader(state)
	footer := r.renderFooter(state)
	bodyHeight := state.Height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch {
	case state.Loading:
		body = r.center(state.Width, bodyHeight, state.Spinner+" Loading feed…")
	case state.LoadErr != nil:
		msg := r.styles.Error.Render("Couldn't load the feed") + "\n\n" +
			r.styles.Dim.Render(state.LoadErr.Error()) + "\n\n" +
			"Press R to retry"
		body = r.center(state.Width, bodyHeight, msg)
	case state.Empty:
		body = r.center(state.Width, bodyHeight, r.styles.Dim.Render("Nothing here yet"))
	case !state.HasPost:
		body = r.center(state.Width, bodyHeight, "")
	default:
		body = r.renderPostArea(state, bodyHeight)
	}

	return header + "\n" + body + "\n" + footer
}

// renderHeader renders the title bar with the position indicator
func (r *Renderer) renderHeader(state ViewState) string {
	title := r.styles.Title.Render(" swipefeed")
	pos := ""
	if state.HasPost {
		suffix := ""
		if state.HasMore {
			suffix = "+"
		}
		pos = r.styles.Position.Render(fmt.Sprintf("%d/%d%s ", state.Index+1, state.Total, suffix))
	}
	gap := state.Width - lipgloss.Width(title) - lipgloss.Width(pos)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + pos
}

// renderFooter renders the status line and help
func (r *Renderer) renderFooter(state ViewState) string {
	var line string
	switch {
	case state.Status != "":
		line = r.styles.Status.Render(" " + state.Status)
	case state.AtEnd:
		line = r.styles.EndOfFeed.Render(" You've reached the end of the feed")
	case state.Fetching:
		line = r.styles.Dim.Render(" " + state.Spinner + " loading more…")
	default:
		line = " "
	}

	helpLine := r.styles.Help.Render(state.HelpView)
	return line + "\n" + helpLine
}

// renderPostArea renders the current card, applying the transition slide or
// the elastic drag offset
func (r *Renderer) renderPostArea(state ViewState, bodyHeight int) string {
	current := r.renderCard(state.Current)
	cardH := lipgloss.Height(current)
	centerTop := (bodyHeight - cardH) / 2
	if centerTop < 0 {
		centerTop = 0
	}

	if state.Animating {
		outgoing := r.renderCard(state.Outgoing)
		step := cardH + 1
		var strip string
		var top int
		if state.Forward {
			// Outgoing above, incoming below; the strip slides up
			strip = outgoing + "\n" + current
			top = centerTop - int(state.Progress*float64(step))
		} else {
			// Incoming above, outgoing below; the strip slides down
			strip = current + "\n" + outgoing
			top = centerTop - step + int(state.Progress*float64(step))
		}
		return r.canvas(strip, state.Width, bodyHeight, top)
	}

	return r.canvas(current, state.Width, bodyHeight, centerTop-state.DragOffset)
}

// renderCard renders one post card
func (r *Renderer) renderCard(card Card) string {
	heart := r.styles.Unliked.Render("♡")
	if card.Liked {
		heart = r.styles.Liked.Render("♥")
	}
	counts := fmt.Sprintf("%s %d   %s %d   %s %d",
		heart, card.LikeCount,
		r.styles.Counts.Render("💬"), card.CommentCount,
		r.styles.Counts.Render("⟳"), card.RemixCount,
	)

	content := strings.Join([]string{
		r.styles.CardTitle.Render(card.Title),
		r.styles.Author.Render("by " + card.Author),
		"",
		r.styles.Image.Render("[" + card.ImageURL + "]"),
		"",
		counts,
	}, "\n")

	return r.styles.Card.Render(content)
}

// canvas paints content onto a fixed-height area with its first line at row
// top; rows that fall outside the area are clipped
func (r *Renderer) canvas(content string, width, height, top int) string {
	lines := strings.Split(content, "\n")
	rowStyle := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		idx := row - top
		if idx >= 0 && idx < len(lines) {
			out = append(out, rowStyle.Render(lines[idx]))
		} else {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}

// center places content in the middle of the area
func (r *Renderer) center(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
