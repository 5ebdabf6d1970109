package client

import "time"

// SetAfterFunc replaces the timer constructor used for message auto-clears.
func (c *RatingController) SetAfterFunc(f func(time.Duration, func()) *time.Timer) {
	c.afterFunc = f
}
