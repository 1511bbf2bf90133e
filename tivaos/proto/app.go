package proto

// AppID identifies a foreground app.
type AppID uint8

const (
	AppNone AppID = iota
	AppSnake
	AppDimmer
	AppSensors
)

// Apps lists the selectable apps in launcher cycle order.
var Apps = [...]AppID{AppSnake, AppDimmer, AppSensors}

func (id AppID) String() string {
	switch id {
	case AppNone:
		return "none"
	case AppSnake:
		return "snake"
	case AppDimmer:
		return "dimmer"
	case AppSensors:
		return "sensors"
	default:
		return "unknown"
	}
}

// ParseAppID maps an app name to its ID.
func ParseAppID(name string) (AppID, bool) {
	for _, id := range Apps {
		if id.String() == name {
			return id, true
		}
	}
	return AppNone, false
}

// AppControlPayload encodes an activate/deactivate command.
//
// Payload format:
//
//	b[0] == 0 => deactivate
//	b[0] != 0 => activate
func AppControlPayload(active bool) []byte {
	if active {
		return []byte{1}
	}
	return []byte{0}
}

func DecodeAppControlPayload(b []byte) (active bool, ok bool) {
	if len(b) != 1 {
		return false, false
	}
	return b[0] != 0, true
}

// AppSelectPayload encodes an app selection request.
//
// Payload format:
//
//	b[0] : AppID
func AppSelectPayload(id AppID) []byte {
	return []byte{byte(id)}
}

func DecodeAppSelectPayload(b []byte) (id AppID, ok bool) {
	if len(b) != 1 {
		return AppNone, false
	}
	return AppID(b[0]), true
}
