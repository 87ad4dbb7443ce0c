// Package assets exposes the font data compiled into the binary.
package assets

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	FontRegularTTF = goregular.TTF
	FontBoldTTF    = gobold.TTF
	FontMonoTTF    = gomono.TTF
)
