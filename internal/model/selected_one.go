//go:build model_one

package model

import "github.com/rook-computer/fwdisplay/internal/model/one"

const Name = "one"

type Features = one.Features
