package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hawkerdev/hawker/internal/bazaar"
)

// Column widths for the product table.
const (
	colSaved     = 1
	colName      = 32
	colPrice     = 10
	colCondition = 10
	colCategory  = 22
	colAge       = 10
)

// renderBrowse renders the product table next to the detail pane.
func (m Model) renderBrowse() string {
	products := m.snapshot.Page.Products

	table := m.renderProductTable(products, m.selectedRow, m.emptyBrowseNote())

	var detail string
	if item, ok := m.selectedProduct(); ok {
		detail = m.renderDetail(item)
	}

	return m.joinPanes(table, detail)
}

func (m Model) emptyBrowseNote() string {
	switch {
	case !m.snapshot.HasPage && m.fetching:
		return "Loading listings…"
	case !m.snapshot.HasPage:
		return "No listings yet."
	default:
		return "Nothing matches these filters."
	}
}

// renderProductTable renders product rows as Cards with a cursor.
func (m Model) renderProductTable(products []bazaar.Product, selected int, emptyNote string) string {
	styles := m.theme.Styles()

	var b strings.Builder
	header := " " + padRight("", colSaved) +
		" " + padRight("NAME", colName) +
		" " + padRight("PRICE", colPrice) +
		" " + padRight("COND", colCondition) +
		" " + padRight("CATEGORY", colCategory) +
		" " + padRight("AGE", colAge)
	b.WriteString(styles.MutedText.Bold(true).Render(header))
	b.WriteString("\n")

	if len(products) == 0 {
		b.WriteString(styles.FaintText.Render(" " + emptyNote))
		return b.String()
	}

	for i, p := range products {
		card := newCard(p, m.cache)

		name := truncate(card.Name, colName)
		if card.Sold {
			name = truncate(card.Name, colName-7) + " [SOLD]"
		}
		row := " " + padRight(card.SavedMarker(), colSaved) +
			" " + padRight(name, colName) +
			" " + padRight(card.Price, colPrice) +
			" " + padRight(card.Condition, colCondition) +
			" " + padRight(truncate(card.Category, colCategory), colCategory) +
			" " + padRight(card.Age, colAge)

		switch {
		case i == selected:
			b.WriteString(styles.Selected.Render(row))
		case card.Saved:
			b.WriteString(styles.AccentText.Render(row))
		default:
			b.WriteString(styles.Text.Render(row))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderDetail renders the detail pane for one product.
func (m Model) renderDetail(p bazaar.Product) string {
	styles := m.theme.Styles()
	card := newCard(p, m.cache)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(card.Name))
	b.WriteString("\n")
	b.WriteString(styles.WarningText.Render(card.Price))
	if card.Sold {
		b.WriteString("  ")
		b.WriteString(styles.DangerText.Render("SOLD"))
	}
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styles.MutedText.Render(padRight(label, 11)))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}
	writeField("Category", card.Category)
	writeField("Condition", card.Condition)
	writeField("Seller", card.Seller)
	writeField("Listed", card.Age)
	if card.Images > 0 {
		writeField("Photos", plural(card.Images, "photo"))
	}

	b.WriteString("\n")
	if card.Saved {
		b.WriteString(styles.SuccessText.Render("♥ saved"))
		b.WriteString(styles.FaintText.Render("  (s to remove)"))
	} else {
		b.WriteString(styles.FaintText.Render("s to save"))
	}

	if desc := strings.TrimSpace(p.Description); desc != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render(truncate(desc, 400)))
	}

	return b.String()
}

// joinPanes lays the table and detail pane side by side, or stacks the
// table alone on narrow terminals.
func (m Model) joinPanes(table, detail string) string {
	styles := m.theme.Styles()

	detailWidth := 44
	tableWidth := m.width - detailWidth - 6
	if tableWidth < 40 || detail == "" {
		return styles.Pane.Width(max(m.width-4, 20)).Render(table)
	}

	left := styles.PaneFocus.Width(tableWidth).Render(table)
	right := styles.Pane.Width(detailWidth).Render(detail)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
