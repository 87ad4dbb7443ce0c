//go:build !linux

package display

func setGraphicsMode() error { return nil }
func restoreTextMode() error { return nil }
