//go:build unit

package middleware

import "time"

func (rl *RateLimiter) SetClock(now func() time.Time) { rl.now = now }

func (rl *RateLimiter) VisitorCount() int { return rl.visitorCount() }
