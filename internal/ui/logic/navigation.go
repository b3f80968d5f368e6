package logic

// Navigator handles navigation and viewport management over a flat list of rows
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// GetViewportHeight returns the number of rows the table may use
func (n *Navigator) GetViewportHeight() int {
	return n.viewportHeight
}

// SetViewportHeight updates the visible row count after a resize
func (n *Navigator) SetViewportHeight(height, total int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.Clamp(total)
}

// Navigate moves the selection. Direction is one of up, down, pageup,
// pagedown, home, end.
func (n *Navigator) Navigate(direction string, total int) {
	switch direction {
	case "up":
		n.selectedIndex--
	case "down":
		n.selectedIndex++
	case "pageup":
		n.selectedIndex -= n.pageSize()
	case "pagedown":
		n.selectedIndex += n.pageSize()
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = total - 1
	}
	n.Clamp(total)
}

// Clamp keeps the selection inside [0, total) and the viewport around it.
// Called whenever the row count changes (dismiss, new page, new search).
func (n *Navigator) Clamp(total int) {
	if n.selectedIndex >= total {
		n.selectedIndex = total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	n.ensureSelectedVisible(total)
}

// Reset moves to the top of the list
func (n *Navigator) Reset() {
	n.selectedIndex = 0
	n.viewportOffset = 0
}

func (n *Navigator) pageSize() int {
	if n.viewportHeight > 2 {
		return n.viewportHeight - 2
	}
	return 1
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible(total int) {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	needsTopIndicator := n.viewportOffset > 0
	needsBottomIndicator := n.viewportOffset+n.viewportHeight < total

	effectiveHeight := n.viewportHeight
	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	if n.selectedIndex >= n.viewportOffset+effectiveHeight {
		n.viewportOffset = n.selectedIndex - effectiveHeight + 1
	}

	maxOffset := total - effectiveHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
