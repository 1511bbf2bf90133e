package proto

// LogLinePayload encodes a MsgLogLine payload.
//
// Convention:
// - Payload is UTF-8 bytes without a trailing newline.
// - Delivery is best-effort; callers may drop on overflow.
// - Lines longer than limit bytes are cut.
func LogLinePayload(b []byte, limit int) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	if limit >= 0 && len(b) > limit {
		b = b[:limit]
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}
