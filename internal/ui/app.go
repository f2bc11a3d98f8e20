package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hawkerdev/hawker/internal/bazaar"
	"github.com/hawkerdev/hawker/internal/catalog"
	"github.com/hawkerdev/hawker/internal/credential"
	"github.com/hawkerdev/hawker/internal/filter"
	"github.com/hawkerdev/hawker/internal/prefs"
	"github.com/hawkerdev/hawker/internal/wishlist"
)

// View represents the current active view.
type View int

const (
	ViewBrowse View = iota
	ViewWishlist
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   *catalog.Fetcher
	Cache     *wishlist.Cache
	Creds     *credential.Provider
	Filter    filter.State
	ThemeName string
	PrefsPath string
}

// statusKind classifies the one-line status note under the content.
type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusError
	statusAuth
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   *catalog.Fetcher
	cache     *wishlist.Cache
	creds     *credential.Provider
	prefsPath string

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Browse state
	filter      filter.State
	snapshot    catalog.Snapshot
	fetching    bool
	selectedRow int

	// Wishlist state
	wishRow int

	// Search input
	searchMode  bool
	searchInput textinput.Model

	// Status line
	statusText string
	statusKind statusKind

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "search listings"
	input.CharLimit = 80
	input.SetValue(opts.Filter.Search)

	return Model{
		ctx:         ctx,
		fetcher:     opts.Fetcher,
		cache:       opts.Cache,
		creds:       opts.Creds,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		currentView: ViewBrowse,
		filter:      opts.Filter,
		searchInput: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.fetchCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case fetchDoneMsg:
		return m.handleFetchDone(msg)

	case toggleDoneMsg:
		return m.handleToggleDone(msg)

	case wishlistRefreshedMsg:
		if msg.err != nil {
			m.statusText = "wishlist out of sync: " + msg.err.Error()
			m.statusKind = statusError
		}
		m.clampWishRow()
		return m, nil

	case detailDoneMsg:
		return m.handleDetailDone(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch m.currentView {
	case ViewWishlist:
		b.WriteString(m.renderWishlist())
	default:
		b.WriteString(m.renderBrowse())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay: any key closes it.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searchMode {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.saveLocation()
		return m, nil

	case "tab":
		if m.currentView == ViewBrowse {
			m.currentView = ViewWishlist
		} else {
			m.currentView = ViewBrowse
		}
		return m, nil

	case "w":
		m.currentView = ViewWishlist
		return m, nil

	case "b", "esc":
		m.currentView = ViewBrowse
		return m, nil

	case "X":
		return m.signOut()

	case "r":
		// Retry: refetch the catalog and resync the wishlist.
		m.statusText = ""
		m.statusKind = statusNone
		m.fetching = true
		return m, tea.Batch(m.fetchCmd(), m.refreshCmd())
	}

	switch m.currentView {
	case ViewWishlist:
		return m.handleWishlistKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// handleBrowseKey processes keyboard input for the browse view.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searchMode = true
		m.searchInput.SetValue(m.filter.Search)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case "c":
		return m.applyFilter(m.filter.WithCategory(cycleValue(m.filter.Category, bazaar.Categories)))

	case "n":
		return m.applyFilter(m.filter.WithCondition(cycleValue(m.filter.Condition, bazaar.Conditions)))

	case "C":
		if m.filter.IsDefault() {
			return m, nil
		}
		m.searchInput.SetValue("")
		return m.applyFilter(filter.New())

	case "left", "[":
		if m.filter.Page > 1 {
			return m.applyFilter(m.filter.WithPage(m.filter.Page - 1))
		}
		return m, nil

	case "right", "]":
		if m.filter.Page < m.snapshot.TotalPages() {
			return m.applyFilter(m.filter.WithPage(m.filter.Page + 1))
		}
		return m, nil

	case "j", "down":
		if m.selectedRow < len(m.snapshot.Page.Products)-1 {
			m.selectedRow++
		}
		return m, nil

	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case "g", "home":
		m.selectedRow = 0
		return m, nil

	case "G", "end":
		if n := len(m.snapshot.Page.Products); n > 0 {
			m.selectedRow = n - 1
		}
		return m, nil

	case "s", " ":
		if item, ok := m.selectedProduct(); ok {
			return m, m.toggleCmd(item)
		}
		return m, nil

	case "enter":
		// Re-fetch the selected listing so the detail pane shows the
		// latest record (notably sold status).
		if item, ok := m.selectedProduct(); ok {
			return m, m.detailCmd(item.ID)
		}
		return m, nil
	}

	return m, nil
}

// handleWishlistKey processes keyboard input for the wishlist view.
func (m Model) handleWishlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.cache.Products()

	switch msg.String() {
	case "j", "down":
		if m.wishRow < len(products)-1 {
			m.wishRow++
		}
	case "k", "up":
		if m.wishRow > 0 {
			m.wishRow--
		}
	case "g", "home":
		m.wishRow = 0
	case "G", "end":
		if len(products) > 0 {
			m.wishRow = len(products) - 1
		}
	case "s", " ":
		if m.wishRow < len(products) {
			return m, m.toggleCmd(products[m.wishRow])
		}
	}

	return m, nil
}

// handleSearchKey routes keys to the search input. Every edit applies the
// new search text immediately; the fetcher's fencing keeps rapid edits safe.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		next, cmd := m.applyFilter(m.filter.WithSearch(""))
		return next, cmd
	}

	before := m.searchInput.Value()
	var inputCmd tea.Cmd
	m.searchInput, inputCmd = m.searchInput.Update(msg)
	if value := m.searchInput.Value(); value != before {
		next, cmd := m.applyFilter(m.filter.WithSearch(value))
		return next, tea.Batch(inputCmd, cmd)
	}
	return m, inputCmd
}

// applyFilter commits a filter transition: persist the new location and
// kick off a fetch for it.
func (m Model) applyFilter(next filter.State) (Model, tea.Cmd) {
	if next == m.filter {
		return m, nil
	}
	m.filter = next
	m.selectedRow = 0
	m.fetching = true
	m.saveLocation()
	return m, m.fetchCmd()
}

// saveLocation writes the current view's shareable encoding (and theme) to
// the prefs file. Failures are ignored; prefs are a convenience.
func (m Model) saveLocation() {
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		Location: m.filter.Encode(),
	})
}

func (m Model) handleFetchDone(msg fetchDoneMsg) (Model, tea.Cmd) {
	if msg.outcome == catalog.Stale {
		// A newer fetch is still in flight; leave the view alone.
		return m, nil
	}
	m.fetching = false
	m.snapshot = m.fetcher.Snapshot()
	if msg.outcome == catalog.Failed {
		m.statusText = "couldn't load listings - press r to retry"
		m.statusKind = statusError
		return m, nil
	}
	m.statusText = ""
	m.statusKind = statusNone
	if n := len(m.snapshot.Page.Products); m.selectedRow >= n {
		m.selectedRow = max(0, n-1)
	}
	return m, nil
}

func (m Model) handleToggleDone(msg toggleDoneMsg) (Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		m.statusText = ternary(m.cache.Contains(msg.productID), "saved to wishlist", "removed from wishlist")
		m.statusKind = statusInfo
	case errors.Is(msg.err, wishlist.ErrNoCredential), errors.Is(msg.err, bazaar.ErrUnauthorized):
		m.statusText = "sign in required - set HAWKER_TOKEN or the token file"
		m.statusKind = statusAuth
	default:
		m.statusText = "couldn't update wishlist - try again"
		m.statusKind = statusError
	}
	m.clampWishRow()
	return m, nil
}

func (m Model) handleDetailDone(msg detailDoneMsg) (Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		// The snapshot slice is already a private copy; patch the row in
		// place so the detail pane picks up the fresh record.
		for i, p := range m.snapshot.Page.Products {
			if p.ID == msg.product.ID {
				m.snapshot.Page.Products[i] = msg.product
				break
			}
		}
	case errors.Is(msg.err, bazaar.ErrNotFound):
		m.statusText = "that listing is gone - press r to reload"
		m.statusKind = statusError
	default:
		m.statusText = "couldn't load listing details"
		m.statusKind = statusError
	}
	return m, nil
}

func (m *Model) clampWishRow() {
	if n := m.cache.Len(); m.wishRow >= n {
		m.wishRow = max(0, n-1)
	}
}

func (m Model) signOut() (Model, tea.Cmd) {
	if !m.creds.Authenticated() {
		return m, nil
	}
	m.statusText = "signed out"
	m.statusKind = statusInfo
	m.wishRow = 0
	ctx, creds, cache := m.ctx, m.creds, m.cache
	return m, func() tea.Msg {
		if err := creds.Clear(); err != nil {
			return wishlistRefreshedMsg{err: err}
		}
		// With no credential this empties the cache without a network call.
		return wishlistRefreshedMsg{err: cache.Refresh(ctx)}
	}
}

// selectedProduct returns the product under the browse cursor.
func (m Model) selectedProduct() (bazaar.Product, bool) {
	products := m.snapshot.Page.Products
	if m.selectedRow < 0 || m.selectedRow >= len(products) {
		return bazaar.Product{}, false
	}
	return products[m.selectedRow], true
}

// cycleValue steps through unset -> values... -> unset.
func cycleValue(current string, values []string) string {
	if current == "" {
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i+1 < len(values) {
				return values[i+1]
			}
			return ""
		}
	}
	return ""
}

// Messages

type fetchDoneMsg struct {
	outcome catalog.Outcome
}

type toggleDoneMsg struct {
	productID string
	err       error
}

type wishlistRefreshedMsg struct {
	err error
}

type detailDoneMsg struct {
	product bazaar.Product
	err     error
}

// Commands

func (m Model) fetchCmd() tea.Cmd {
	ctx, fetcher, state := m.ctx, m.fetcher, m.filter
	return func() tea.Msg {
		return fetchDoneMsg{outcome: fetcher.Fetch(ctx, state)}
	}
}

func (m Model) toggleCmd(item bazaar.Product) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		err := cache.Toggle(ctx, item)
		if err == nil {
			// Keep the saved records current after a settled mutation.
			_ = cache.Refresh(ctx)
		}
		return toggleDoneMsg{productID: item.ID, err: err}
	}
}

func (m Model) detailCmd(productID string) tea.Cmd {
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		p, err := fetcher.Product(ctx, productID)
		return detailDoneMsg{product: p, err: err}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		return wishlistRefreshedMsg{err: cache.Refresh(ctx)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
