package model

import (
	"testing"

	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/model/mercury"
	"github.com/rook-computer/fwdisplay/internal/model/one"
	"github.com/rook-computer/fwdisplay/internal/model/tt"
)

var (
	_ UIFeaturesCommon = tt.Features{}
	_ UIFeaturesCommon = mercury.Features{}
	_ UIFeaturesCommon = one.Features{}
)

func TestVariantScreens(t *testing.T) {
	tests := []struct {
		name    string
		variant UIFeaturesCommon
		want    geometry.Rect
	}{
		{"tt", tt.Features{}, geometry.Rect{Width: 240, Height: 240}},
		{"mercury", mercury.Features{}, geometry.Rect{Width: 240, Height: 240}},
		{"one", one.Features{}, geometry.Rect{Width: 128, Height: 64}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.variant.Screen(); got != tc.want {
				t.Errorf("Screen() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCurrentMatchesName(t *testing.T) {
	want := map[string]geometry.Rect{
		"tt":      tt.Screen,
		"mercury": mercury.Screen,
		"one":     one.Screen,
	}[Name]
	if got := Current().Screen(); got != want || Screen() != want {
		t.Errorf("%s: Screen() = %+v, want %+v", Name, got, want)
	}
}
