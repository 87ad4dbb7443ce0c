// Package input watches Linux evdev keyboards. Development builds use it to
// leave a halted screen and give the console back.
package input

import "encoding/binary"

const (
	evKey = 0x01

	// Linux input-event-codes.h
	KeyEsc = 1
	KeyF4  = 62
)

// pressed reports whether buf, a sequence of input_event records whose
// timeval is tvSize bytes, holds a key-down event for code.
func pressed(buf []byte, tvSize int, code uint16) bool {
	eventSize := tvSize + 2 + 2 + 4
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		c := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && c == code && value == 1 {
			return true
		}
	}
	return false
}
