//go:build model_mercury && !model_one

package model

import "github.com/rook-computer/fwdisplay/internal/model/mercury"

const Name = "mercury"

type Features = mercury.Features
