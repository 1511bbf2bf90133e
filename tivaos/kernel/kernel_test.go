package kernel

import (
	"testing"
	"time"
)

func recvWithTimeout[T any](t *testing.T, ch <-chan T, d time.Duration) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(d):
		t.Fatalf("timed out after %s", d)
		var zero T
		return zero
	}
}

func TestRestrict(t *testing.T) {
	k := New()
	c := k.NewEndpoint(RightSend | RightRecv)

	send := c.Restrict(RightSend)
	if !send.canSend() || send.canRecv() {
		t.Fatalf("send-only cap has rights %b", send.rights)
	}
	if got := send.Restrict(RightRecv); got.Valid() {
		t.Fatal("restricting to a missing right produced a valid capability")
	}
	if got := (Capability{}).Restrict(RightSend); got.Valid() {
		t.Fatal("restricting the zero capability produced a valid capability")
	}
}

func TestEndpointLimit(t *testing.T) {
	k := New()
	for i := 0; i < maxEndpoints; i++ {
		if !k.NewEndpoint(RightSend).Valid() {
			t.Fatalf("endpoint %d invalid", i)
		}
	}
	if k.NewEndpoint(RightSend).Valid() {
		t.Fatal("endpoint beyond the limit is valid")
	}
}

func TestSendRights(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	if res := ctx.SendToCapResult(ep.Restrict(RightRecv), 1, nil, Capability{}); res != SendErrToNoSendRight {
		t.Fatalf("send on recv-only cap = %s", res)
	}
	if res := ctx.SendToCapResult(Capability{}, 1, nil, Capability{}); res != SendErrInvalidToCap {
		t.Fatalf("send on zero cap = %s", res)
	}
	if res := ctx.Send(ep.Restrict(RightRecv), ep, 1, nil); res != SendErrFromNoSendRight {
		t.Fatalf("send from recv-only cap = %s", res)
	}
	if _, ok := ctx.RecvChan(ep.Restrict(RightSend)); ok {
		t.Fatal("recv channel granted to send-only cap")
	}
	big := make([]byte, MaxMessageBytes+1)
	if res := ctx.SendToCapResult(ep, 1, big, Capability{}); res != SendErrPayloadTooLarge {
		t.Fatalf("oversized send = %s", res)
	}
}

func TestSendDeliversPayloadAndSender(t *testing.T) {
	k := New()
	from := k.NewEndpoint(RightSend | RightRecv)
	to := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	if res := ctx.Send(from, to.Restrict(RightSend), 7, []byte("hello")); res != SendOK {
		t.Fatalf("Send = %s", res)
	}
	msg, ok := ctx.TryRecv(to.Restrict(RightRecv))
	if !ok {
		t.Fatal("no message")
	}
	if msg.Kind != 7 || string(msg.Payload()) != "hello" || msg.From != from.ep || msg.To != to.ep {
		t.Fatalf("msg = kind %d payload %q from %d to %d", msg.Kind, msg.Payload(), msg.From, msg.To)
	}
}

func TestAddTaskRuns(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	done := make(chan string, 1)

	k.AddTask(taskFunc(func(ctx *Context) {
		msg, ok := ctx.Recv(ep.Restrict(RightRecv))
		if !ok {
			done <- ""
			return
		}
		done <- string(msg.Payload())
	}))

	ctx := &Context{k: k}
	if !ctx.SendTo(ep.Restrict(RightSend), 1, []byte("ping")) {
		t.Fatal("SendTo failed")
	}
	if got := recvWithTimeout(t, done, time.Second); got != "ping" {
		t.Fatalf("task received %q, want ping", got)
	}
}

func TestTaskPanicReachesHandler(t *testing.T) {
	got := make(chan PanicInfo, 1)
	SetPanicHandler(func(info PanicInfo) { got <- info })
	defer SetPanicHandler(nil)

	k := New()
	k.AddTask(taskFunc(func(ctx *Context) {}))
	id := k.AddTask(taskFunc(func(ctx *Context) { panic("boom") }))

	info := recvWithTimeout(t, got, time.Second)
	if info.TaskID != id || info.Value != "boom" {
		t.Fatalf("panic info = %v", info)
	}
	if !InPanicMode() {
		t.Fatal("InPanicMode() = false after a task panic")
	}
	if len(info.Stack) > maxStackBytes {
		t.Fatalf("stack len = %d, want <= %d", len(info.Stack), maxStackBytes)
	}
}

func TestWaitTick(t *testing.T) {
	k := New()
	ctx := &Context{k: k}
	got := make(chan uint64, 1)
	go func() { got <- ctx.WaitTick(0) }()

	time.Sleep(5 * time.Millisecond)
	k.TickTo(3)
	if v := recvWithTimeout(t, got, time.Second); v != 3 {
		t.Fatalf("WaitTick = %d, want 3", v)
	}

	k.TickTo(2)
	if v := ctx.NowTick(); v != 3 {
		t.Fatalf("TickTo moved the clock backwards to %d", v)
	}
	k.Tick()
	if v := ctx.NowTick(); v != 4 {
		t.Fatalf("NowTick after Tick = %d, want 4", v)
	}
}

func TestSleep(t *testing.T) {
	k := New()
	ctx := &Context{k: k}
	done := make(chan uint64, 1)
	go func() {
		ctx.Sleep(5)
		done <- ctx.NowTick()
	}()

	go func() {
		for i := uint64(1); i <= 10; i++ {
			k.TickTo(i)
			time.Sleep(time.Millisecond)
		}
	}()
	if v := recvWithTimeout(t, done, time.Second); v < 5 {
		t.Fatalf("Sleep(5) returned at tick %d", v)
	}
}

func TestTickChan(t *testing.T) {
	k := New()
	ctx := &Context{k: k}
	done := make(chan struct{})
	defer close(done)

	ticks := ctx.TickChan(done)
	time.Sleep(5 * time.Millisecond)
	k.TickTo(7)
	if v := recvWithTimeout(t, ticks, time.Second); v != 7 {
		t.Fatalf("tick = %d, want 7", v)
	}
	k.Tick()
	if v := recvWithTimeout(t, ticks, time.Second); v != 8 {
		t.Fatalf("tick = %d, want 8", v)
	}
}

func TestSendResultString(t *testing.T) {
	if got := SendErrQueueFull.String(); got != "queue full" {
		t.Fatalf("String() = %q", got)
	}
	if got := SendResult(200).String(); got != "unknown" {
		t.Fatalf("String() = %q", got)
	}
}

type taskFunc func(*Context)

func (f taskFunc) Run(ctx *Context) { f(ctx) }
