package hackchat

import "time"

// StartKeepAlive starts the background ping loop that keeps the
// connection from being treated as idle. It is not started
// automatically; deployments behind infrastructure that already keeps
// the transport warm can skip it. Calling it more than once is a no-op.
func (c *Client) StartKeepAlive() {
	c.keepAliveOnce.Do(func() {
		c.wg.Add(1)
		go c.keepAlive()
	})
}

// keepAlive shares nothing with the consumer but the transport's
// serialized write path. It never reads and never reconnects.
func (c *Client) keepAlive() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.config.KeepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			if err := c.sendIntent(Ping{}); err != nil {
				// The session is gone; terminating quietly is the
				// contract, reconnection is the caller's call.
				return
			}
		}
	}
}
