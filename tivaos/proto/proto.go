// Package proto defines the IPC message kinds exchanged between tasks and
// their payload encodings.
package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
	MsgAppControl
	MsgAppSelect
	MsgKeyInput
)

func (k Kind) String() string {
	switch k {
	case MsgLogLine:
		return "log_line"
	case MsgAppControl:
		return "app_control"
	case MsgAppSelect:
		return "app_select"
	case MsgKeyInput:
		return "key_input"
	default:
		return "unknown"
	}
}
