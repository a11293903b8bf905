package widget

import "time"

func (c *Controller) SetRefreshDelay(d time.Duration) {
	c.refreshDelay = d
}

func (c *Controller) SetNow(now func() time.Time) {
	c.now = now
}
