package kernel

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// maxStackBytes bounds the stack kept in a PanicInfo. The panel fits a
// few dozen lines at most.
const maxStackBytes = 4 << 10

// PanicInfo describes a task panic recovered by the kernel.
type PanicInfo struct {
	TaskID TaskID
	Tick   uint64
	Value  any
	Stack  []byte
}

func (p PanicInfo) String() string {
	return fmt.Sprintf("task %d panic at tick %d: %v", p.TaskID, p.Tick, p.Value)
}

type panicLatch struct {
	once    sync.Once
	tripped atomic.Bool
	handler atomic.Pointer[func(PanicInfo)]
}

var latch panicLatch

// InPanicMode reports whether any task has panicked.
func InPanicMode() bool { return latch.tripped.Load() }

// SetPanicHandler installs the process-wide panic handler; nil removes it.
// The handler sees the first panic only and must not panic itself.
func SetPanicHandler(fn func(PanicInfo)) {
	if fn == nil {
		latch.handler.Store(nil)
		return
	}
	latch.handler.Store(&fn)
}

func (l *panicLatch) trip(info PanicInfo) {
	l.once.Do(func() {
		l.tripped.Store(true)
		info.Stack = captureStack(maxStackBytes)
		if fn := l.handler.Load(); fn != nil {
			(*fn)(info)
		}
	})
}
