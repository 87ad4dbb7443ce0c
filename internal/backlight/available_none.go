//go:build nobacklight

package backlight

const Available = false
