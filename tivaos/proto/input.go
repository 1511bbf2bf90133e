package proto

import "encoding/binary"

// KeyInputPayload encodes a key transition.
//
// Layout (little-endian):
//   - u16: key code (hal.KeyCode)
//   - u8:  1 on press, 0 on release
func KeyInputPayload(code uint16, press bool) []byte {
	buf := make([]byte, 3)
	binary.LittleEndian.PutUint16(buf[0:2], code)
	if press {
		buf[2] = 1
	}
	return buf
}

func DecodeKeyInputPayload(b []byte) (code uint16, press bool, ok bool) {
	if len(b) != 3 {
		return 0, false, false
	}
	return binary.LittleEndian.Uint16(b[0:2]), b[2] != 0, true
}
