package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("hawker")}

	switch m.currentView {
	case ViewWishlist:
		parts = append(parts, styles.AccentText.Render("Wishlist"))
		parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%d saved", m.cache.Len())))
	default:
		parts = append(parts, styles.AccentText.Render("Browse"))
		if m.snapshot.HasPage {
			parts = append(parts, styles.MutedText.Render(fmt.Sprintf(
				"%d listings · page %d/%d",
				m.snapshot.Page.Total, m.filter.Page, m.snapshot.TotalPages(),
			)))
		}
		if m.fetching {
			parts = append(parts, styles.WarningText.Render("fetching…"))
		}
	}

	if m.creds.Authenticated() {
		parts = append(parts, styles.SuccessText.Render("signed in"))
	} else {
		parts = append(parts, styles.FaintText.Render("guest"))
	}

	content := strings.Join(parts, styles.FaintText.Render("  │  "))
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Render(" " + content)
}

// renderCommandBar renders the active filter summary and key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	var filters []string
	if m.searchMode {
		filters = append(filters, styles.AccentText.Render("/")+m.searchInput.View())
	} else if m.filter.Search != "" {
		filters = append(filters, styles.Text.Render("search:")+styles.WarningText.Render(m.filter.Search))
	}
	if m.filter.Category != "" {
		filters = append(filters, styles.Text.Render("category:")+styles.WarningText.Render(m.filter.Category))
	}
	if m.filter.Condition != "" {
		filters = append(filters, styles.Text.Render("condition:")+styles.WarningText.Render(m.filter.Condition))
	}
	if len(filters) == 0 {
		filters = append(filters, styles.FaintText.Render("no filters"))
	}

	hints := styles.FaintText.Render("/ search  c category  n condition  s save  tab wishlist  ? help")
	gap := m.width - lipgloss.Width(strings.Join(filters, "  ")) - lipgloss.Width(hints) - 2
	if gap < 2 {
		return " " + strings.Join(filters, "  ")
	}
	return " " + strings.Join(filters, "  ") + strings.Repeat(" ", gap) + hints
}

// renderStatusLine renders the one-line note under the content.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()

	switch m.statusKind {
	case statusError:
		return " " + styles.DangerText.Render(m.statusText)
	case statusAuth:
		return " " + styles.WarningText.Render(m.statusText)
	case statusInfo:
		return " " + styles.SuccessText.Render(m.statusText)
	default:
		if m.snapshot.Err != nil && m.currentView == ViewBrowse {
			return " " + styles.DangerText.Render("couldn't load listings - press r to retry")
		}
		return ""
	}
}
