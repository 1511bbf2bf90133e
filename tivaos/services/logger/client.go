package logger

import (
	"fmt"
	"sync/atomic"

	"tivalab/tivaos/kernel"
	"tivalab/tivaos/proto"
)

// Client sends tagged log lines to the logger service. Sends never block:
// a line is dropped when the logger mailbox is full.
type Client struct {
	ctx    *kernel.Context
	to     kernel.Capability
	prefix string

	dropped atomic.Uint32
}

func NewClient(ctx *kernel.Context, to kernel.Capability, tag string) *Client {
	c := &Client{ctx: ctx, to: to}
	if tag != "" {
		c.prefix = tag + ": "
	}
	return c
}

func (c *Client) Printf(format string, args ...any) {
	if c == nil || c.ctx == nil || !c.to.Valid() {
		return
	}
	line := c.prefix + fmt.Sprintf(format, args...)
	payload := proto.LogLinePayload([]byte(line), kernel.MaxMessageBytes)
	if res := c.ctx.SendToCapResult(c.to, uint16(proto.MsgLogLine), payload, kernel.Capability{}); res != kernel.SendOK {
		c.dropped.Add(1)
	}
}

// Dropped returns the number of lines lost so far.
func (c *Client) Dropped() uint32 {
	if c == nil {
		return 0
	}
	return c.dropped.Load()
}
