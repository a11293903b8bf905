package hubspot

import "time"

func (c *Client) SetNow(now func() time.Time) {
	c.now = now
}

func (m *Mock) SetNow(now func() time.Time) {
	m.now = now
}
