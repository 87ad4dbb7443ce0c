//go:build !model_mercury && !model_one

package model

import "github.com/rook-computer/fwdisplay/internal/model/tt"

const Name = "tt"

type Features = tt.Features
