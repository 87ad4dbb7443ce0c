//go:build !nobacklight

package backlight

// Available reports whether the build drives a backlight. Builds tagged
// nobacklight turn every guarded call into dead code.
const Available = true
