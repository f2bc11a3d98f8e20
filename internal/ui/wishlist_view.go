package ui

// renderWishlist renders saved items with the same table layout as browse.
func (m Model) renderWishlist() string {
	products := m.cache.Products()

	note := "Nothing saved yet. Press s on a listing to save it."
	if !m.creds.Authenticated() {
		note = "Sign in to keep a wishlist. Set HAWKER_TOKEN or the token file."
	}

	table := m.renderProductTable(products, m.wishRow, note)

	var detail string
	if m.wishRow >= 0 && m.wishRow < len(products) {
		detail = m.renderDetail(products[m.wishRow])
	}

	return m.joinPanes(table, detail)
}
