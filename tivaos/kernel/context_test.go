package kernel

import "testing"

func closedEndpoint(t *testing.T) (*Context, Capability) {
	t.Helper()
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	if !ep.Valid() {
		t.Fatal("NewEndpoint returned an invalid capability")
	}
	k.CloseEndpoint(ep)
	k.CloseEndpoint(ep) // second close is a no-op
	return &Context{k: k, taskID: 1}, ep
}

func TestClosedEndpointOps(t *testing.T) {
	tests := []struct {
		name string
		op   func(ctx *Context, ep Capability) bool
	}{
		{"Recv", func(ctx *Context, ep Capability) bool {
			_, ok := ctx.Recv(ep.Restrict(RightRecv))
			return ok
		}},
		{"TryRecv", func(ctx *Context, ep Capability) bool {
			_, ok := ctx.TryRecv(ep.Restrict(RightRecv))
			return ok
		}},
		{"Send", func(ctx *Context, ep Capability) bool {
			return ctx.SendToCapResult(ep.Restrict(RightSend), 1, []byte("x"), Capability{}) != SendErrNoEndpoint
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, ep := closedEndpoint(t)
			if tt.op(ctx, ep) {
				t.Fatalf("%s on a closed endpoint succeeded", tt.name)
			}
		})
	}
}

func TestQueuedMessageSurvivesClose(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}
	if res := ctx.SendToCapResult(ep, 1, []byte("x"), Capability{}); res != SendOK {
		t.Fatalf("send = %s", res)
	}
	k.CloseEndpoint(ep)

	if msg, ok := ctx.Recv(ep); !ok || string(msg.Payload()) != "x" {
		t.Fatalf("Recv after close = %q, %v", msg.Payload(), ok)
	}
	if _, ok := ctx.Recv(ep); ok {
		t.Fatal("Recv on a drained closed endpoint succeeded")
	}
}
