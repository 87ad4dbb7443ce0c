package input

import (
	"encoding/binary"
	"testing"
)

const tvSize = 16

func event(typ, code uint16, value int32) []byte {
	rec := make([]byte, tvSize+8)
	binary.LittleEndian.PutUint16(rec[tvSize:], typ)
	binary.LittleEndian.PutUint16(rec[tvSize+2:], code)
	binary.LittleEndian.PutUint32(rec[tvSize+4:], uint32(value))
	return rec
}

func concat(records ...[]byte) []byte {
	var out []byte
	for _, r := range records {
		out = append(out, r...)
	}
	return out
}

func TestPressed(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want bool
	}{
		{"key down", event(evKey, KeyF4, 1), true},
		{"key up", event(evKey, KeyF4, 0), false},
		{"repeat", event(evKey, KeyF4, 2), false},
		{"other key", event(evKey, KeyEsc, 1), false},
		{"sync then key", concat(event(0, 0, 0), event(evKey, KeyF4, 1)), true},
		{"truncated", event(evKey, KeyF4, 1)[:tvSize+4], false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pressed(tt.buf, tvSize, KeyF4); got != tt.want {
				t.Errorf("pressed() = %v, want %v", got, tt.want)
			}
		})
	}
}
