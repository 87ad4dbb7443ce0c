package geometry

// Inset shrinks r by paddingPx on all sides.
func (r Rect) Inset(paddingPx int) Rect {
	return r.InsetXY(paddingPx, paddingPx)
}

// InsetXY shrinks r by dx on the left and right and dy on the top and bottom.
// The result collapses to a zero-sized rectangle at the center when the
// padding is larger than r.
func (r Rect) InsetXY(dx, dy int) Rect {
	if dx < 0 {
		dx = 0
	}
	if dy < 0 {
		dy = 0
	}
	w := r.Width - 2*dx
	h := r.Height - 2*dy
	if w < 0 {
		dx = r.Width / 2
		w = 0
	}
	if h < 0 {
		dy = r.Height / 2
		h = 0
	}
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: w, Height: h}
}

// SplitTop splits r into a top part of topHeightPx and the remainder.
// topHeightPx is clamped to [0, r.Height].
func (r Rect) SplitTop(topHeightPx int) (top Rect, rest Rect) {
	topHeightPx = Clamp(topHeightPx, 0, r.Height)
	top = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: topHeightPx}
	rest = Rect{X: r.X, Y: r.Y + topHeightPx, Width: r.Width, Height: r.Height - topHeightPx}
	return top, rest
}

// SplitBottom splits r into the remainder and a bottom part of bottomHeightPx.
func (r Rect) SplitBottom(bottomHeightPx int) (rest Rect, bottom Rect) {
	bottomHeightPx = Clamp(bottomHeightPx, 0, r.Height)
	return r.SplitTop(r.Height - bottomHeightPx)
}

// SplitLeft splits r into a left part of leftWidthPx and the remainder.
func (r Rect) SplitLeft(leftWidthPx int) (left Rect, rest Rect) {
	leftWidthPx = Clamp(leftWidthPx, 0, r.Width)
	left = Rect{X: r.X, Y: r.Y, Width: leftWidthPx, Height: r.Height}
	rest = Rect{X: r.X + leftWidthPx, Y: r.Y, Width: r.Width - leftWidthPx, Height: r.Height}
	return left, rest
}

// AnchorTopLeft returns a rectangle of the given size placed in the top-left of r.
func (r Rect) AnchorTopLeft(widthPx, heightPx int) Rect {
	return Rect{X: r.X, Y: r.Y, Width: Clamp(widthPx, 0, r.Width), Height: Clamp(heightPx, 0, r.Height)}
}

// AnchorCenter returns a rectangle of the given size centered in r.
func (r Rect) AnchorCenter(widthPx, heightPx int) Rect {
	w := Clamp(widthPx, 0, r.Width)
	h := Clamp(heightPx, 0, r.Height)
	return Rect{X: r.X + (r.Width-w)/2, Y: r.Y + (r.Height-h)/2, Width: w, Height: h}
}

// FitSquare returns the largest square that fits into r, centered.
func (r Rect) FitSquare() Rect {
	size := min(r.Width, r.Height)
	return r.AnchorCenter(size, size)
}
