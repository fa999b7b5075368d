package ui

import "time"

// Pacer spaces ticks evenly by sleeping out the rest of each interval. When a
// tick overruns, the schedule restarts from now instead of bursting to catch up.
type Pacer struct {
	now   func() time.Time
	sleep func(time.Duration)
	next  time.Time
}

func NewPacer() *Pacer {
	return &Pacer{now: time.Now, sleep: time.Sleep}
}

func (p *Pacer) WaitForNextTick(rate int) {
	if rate < 1 {
		rate = 1
	}
	interval := time.Second / time.Duration(rate)

	now := p.now()
	if p.next.IsZero() {
		p.next = now
	}
	p.next = p.next.Add(interval)

	if wait := p.next.Sub(now); wait > 0 {
		p.sleep(wait)
		return
	}
	p.next = now
}
