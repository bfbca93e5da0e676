package window

import "time"

// Uncapped disables the framerate cap; presentation then relies on vsync.
const Uncapped = -1

// framePacer holds the framerate cap and the time of the previous
// presentation.
type framePacer struct {
	framerate int
	prevSwap  float64
}

func newFramePacer() framePacer {
	return framePacer{framerate: Uncapped}
}

// setFramerate stores the cap. It reports changed=true only when the cap
// switches between enabled and Uncapped, together with the swap interval to
// use from now on: 1 (vsync) when uncapped, 0 (immediate) when capped.
func (p *framePacer) setFramerate(framerate int) (interval int, changed bool) {
	changed = (framerate != Uncapped) != (p.framerate != Uncapped)
	p.framerate = framerate
	if framerate == Uncapped {
		return 1, changed
	}
	return 0, changed
}

// delay returns how long to sleep after presenting at now.
func (p *framePacer) delay(now float64) time.Duration {
	return frameDelay(p.framerate, now-p.prevSwap)
}

// frameDelay returns the remaining frame budget for the given cap and the
// time elapsed since the previous presentation, both in seconds.
// It is zero when the cap is disabled or the budget is already spent.
func frameDelay(framerate int, elapsed float64) time.Duration {
	if framerate <= 0 {
		return 0
	}
	frameTime := 1.0 / float64(framerate)
	if elapsed >= frameTime {
		return 0
	}
	return time.Duration((frameTime - elapsed) * float64(time.Second))
}
