package kernel

// Context gives a task access to kernel operations.
type Context struct {
	k      *Kernel
	taskID TaskID
}

func (c *Context) TaskID() TaskID { return c.taskID }

// RecvChan returns the inbound message channel for an endpoint capability.
func (c *Context) RecvChan(epCap Capability) (<-chan Message, bool) {
	if c.k == nil || !epCap.valid() || !epCap.canRecv() {
		return nil, false
	}

	c.k.mu.Lock()
	defer c.k.mu.Unlock()
	if epCap.ep >= c.k.endpointCount {
		return nil, false
	}
	ch := c.k.endpoints[epCap.ep].ch
	if ch == nil {
		return nil, false
	}
	return ch, true
}

// Recv blocks until a message arrives. It reports false once the endpoint
// is closed and drained.
func (c *Context) Recv(epCap Capability) (Message, bool) {
	ch, ok := c.RecvChan(epCap)
	if !ok {
		return Message{}, false
	}
	msg, ok := <-ch
	return msg, ok
}

// TryRecv reads one message without blocking.
func (c *Context) TryRecv(epCap Capability) (Message, bool) {
	ch, ok := c.RecvChan(epCap)
	if !ok {
		return Message{}, false
	}
	select {
	case msg, ok := <-ch:
		return msg, ok
	default:
		return Message{}, false
	}
}

// Send sends a message stamped with the sender endpoint of fromCap.
func (c *Context) Send(fromCap, toCap Capability, kind uint16, payload []byte) SendResult {
	if !fromCap.valid() {
		return SendErrInvalidFromCap
	}
	if !fromCap.canSend() {
		return SendErrFromNoSendRight
	}
	if !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return c.k.send(fromCap.ep, toCap.ep, kind, payload, Capability{})
}

// SendTo sends a message without a sender.
func (c *Context) SendTo(toCap Capability, kind uint16, payload []byte) bool {
	return c.SendToCapResult(toCap, kind, payload, Capability{}) == SendOK
}

// SendToCapResult sends a message and transfers an optional capability.
//
// The message From field is set to 0 (unknown).
func (c *Context) SendToCapResult(toCap Capability, kind uint16, payload []byte, xfer Capability) SendResult {
	if !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return c.k.send(0, toCap.ep, kind, payload, xfer)
}

// SendToCapRetry is SendToCapResult that waits one tick and retries while
// the destination queue is full, at most limit times.
func (c *Context) SendToCapRetry(toCap Capability, kind uint16, payload []byte, xfer Capability, limit int) SendResult {
	res := c.SendToCapResult(toCap, kind, payload, xfer)
	for i := 0; i < limit && res == SendErrQueueFull; i++ {
		c.BlockOnTick()
		res = c.SendToCapResult(toCap, kind, payload, xfer)
	}
	return res
}

// NewEndpoint allocates a new endpoint and returns a capability for it.
func (c *Context) NewEndpoint(rights Rights) Capability {
	if c.k == nil {
		return Capability{}
	}
	return c.k.NewEndpoint(rights)
}

// NowTick returns the last observed tick value.
func (c *Context) NowTick() uint64 {
	if c.k == nil {
		return 0
	}
	return c.k.nowTick()
}

// WaitTick blocks until tick advances past after and returns the new tick.
func (c *Context) WaitTick(after uint64) uint64 {
	if c.k == nil {
		return 0
	}
	return c.k.waitTick(after)
}

// BlockOnTick blocks until the next tick.
func (c *Context) BlockOnTick() {
	c.WaitTick(c.NowTick())
}

// Sleep blocks for at least n ticks.
func (c *Context) Sleep(n uint64) {
	if c.k == nil || n == 0 {
		return
	}
	deadline := c.NowTick() + n
	for now := c.NowTick(); now < deadline; {
		now = c.WaitTick(now)
	}
}

// TickChan delivers tick values from a helper goroutine until done is
// closed. Ticks are dropped while the receiver lags behind.
func (c *Context) TickChan(done <-chan struct{}) <-chan uint64 {
	out := make(chan uint64, 16)
	if c.k == nil {
		return out
	}
	go func() {
		last := c.NowTick()
		for {
			select {
			case <-done:
				return
			default:
			}
			last = c.WaitTick(last)
			select {
			case out <- last:
			default:
			}
		}
	}()
	return out
}
