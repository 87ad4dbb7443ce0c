package geometry

import (
	"image"
	"testing"
)

func TestNewRectClampsNegativeSize(t *testing.T) {
	r := NewRect(3, 4, -5, 7)
	if r.Width != 0 || r.Height != 7 {
		t.Errorf("NewRect = %+v, want width 0 height 7", r)
	}
	if !r.Empty() {
		t.Error("expected zero-width rect to be empty")
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 3, 4, 4), NewRect(2, 3, 4, 4)},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 5, 5), Rect{}},
		{"disjoint", NewRect(0, 0, 2, 2), NewRect(50, 50, 2, 2), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("Intersect (swapped) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", NewRect(0, 0, 2, 2), NewRect(8, 8, 2, 2), NewRect(0, 0, 10, 10)},
		{"empty left", Rect{X: 100, Y: 100}, NewRect(1, 1, 2, 2), NewRect(1, 1, 2, 2)},
		{"empty right", NewRect(1, 1, 2, 2), Rect{X: -40}, NewRect(1, 1, 2, 2)},
		{"both empty", Rect{}, Rect{}, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	screen := NewRect(0, 0, 240, 240)
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"whole screen", screen, true},
		{"inner", NewRect(10, 10, 100, 100), true},
		{"past right edge", NewRect(200, 0, 41, 10), false},
		{"negative origin", NewRect(-1, 0, 10, 10), false},
		{"empty outside", NewRect(500, 500, 0, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screen.Contains(tt.r); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestImageRoundTrip(t *testing.T) {
	r := NewRect(5, 6, 7, 8)
	if got := r.Image(); got != image.Rect(5, 6, 12, 14) {
		t.Errorf("Image() = %v", got)
	}
	if got := FromImage(image.Rect(12, 14, 5, 6)); got != r {
		t.Errorf("FromImage = %+v, want %+v", got, r)
	}
}

func TestSplitTopClamps(t *testing.T) {
	r := NewRect(0, 0, 100, 50)
	top, rest := r.SplitTop(80)
	if top != r || !rest.Empty() {
		t.Errorf("SplitTop(80) = %+v, %+v", top, rest)
	}
	top, rest = r.SplitTop(20)
	if top != NewRect(0, 0, 100, 20) || rest != NewRect(0, 20, 100, 30) {
		t.Errorf("SplitTop(20) = %+v, %+v", top, rest)
	}
	rest, bottom := r.SplitBottom(10)
	if bottom != NewRect(0, 40, 100, 10) || rest != NewRect(0, 0, 100, 40) {
		t.Errorf("SplitBottom(10) = %+v, %+v", rest, bottom)
	}
}

func TestInsetCollapses(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if got := r.Inset(2); got != NewRect(2, 2, 6, 6) {
		t.Errorf("Inset(2) = %+v", got)
	}
	if got := r.Inset(20); !got.Empty() {
		t.Errorf("Inset(20) = %+v, want empty", got)
	}
}

func TestFitSquare(t *testing.T) {
	if got := NewRect(0, 0, 100, 40).FitSquare(); got != NewRect(30, 0, 40, 40) {
		t.Errorf("FitSquare = %+v", got)
	}
}
