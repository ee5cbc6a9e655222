package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/rexora-cms/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type reviewsModel struct {
	items   []models.Review
	idx     int
	loading bool
	status  string
}

func (m reviewsModel) selected() (models.Review, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Review{}, false
	}
	return m.items[m.idx], true
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > models.MaxStarRating {
		n = models.MaxStarRating
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", models.MaxStarRating-n)
}

func (m reviewsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString("No reviews yet.")
	default:
		for i, r := range m.items {
			line := fmt.Sprintf("%s  %-20s  %s", stars(r.StarRating), fitText(r.ClientName, 20), fitText(r.ReviewText, 40))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString(statusLine(m.status, ""))

	return renderPage("REVIEWS", strings.TrimRight(b.String(), "\n"), "d: delete │ esc: back")
}

func (m appModel) updateReviews(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.up):
		if m.reviews.idx > 0 {
			m.reviews.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.reviews.idx < len(m.reviews.items)-1 {
			m.reviews.idx++
		}
	case key.Matches(keyMsg, keys.delete):
		r, ok := m.reviews.selected()
		if !ok {
			return m, nil
		}
		m.askDelete(deleteReview, r.ID, r.ClientName)
	}

	return m, nil
}
