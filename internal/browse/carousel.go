package browse

import "time"

// Carousel is the self-rotating banner index.
//
// The timer is modelled as generation-tagged ticks: each Start, Stop or manual
// navigation bumps the generation, and ticks from an older generation are
// ignored. Manual navigation therefore restarts the countdown instead of
// being overwritten by a tick already in flight.
type Carousel struct {
	slides   []string
	interval time.Duration
	index    int
	gen      int
	running  bool
}

// NewCarousel creates a stopped carousel at slide 0.
func NewCarousel(slides []string, interval time.Duration) *Carousel {
	s := make([]string, len(slides))
	copy(s, slides)
	return &Carousel{slides: s, interval: interval}
}

// Interval returns the rotation period.
func (c *Carousel) Interval() time.Duration { return c.interval }

// Len returns the number of slides.
func (c *Carousel) Len() int { return len(c.slides) }

// Index returns the current slide index.
func (c *Carousel) Index() int { return c.index }

// Current returns the current slide, or FallbackImage when there are none.
func (c *Carousel) Current() string {
	if len(c.slides) == 0 {
		return FallbackImage
	}
	return c.slides[c.index]
}

// Running reports whether the timer is active.
func (c *Carousel) Running() bool { return c.running }

// Gen returns the current timer generation.
func (c *Carousel) Gen() int { return c.gen }

// Start activates the timer and returns the generation the next tick must carry.
func (c *Carousel) Start() int {
	c.running = true
	c.gen++
	return c.gen
}

// Stop releases the timer; every outstanding tick becomes stale.
func (c *Carousel) Stop() {
	c.running = false
	c.gen++
}

// Tick advances one slide if gen is current. It returns false for stale ticks,
// which must not be rescheduled.
func (c *Carousel) Tick(gen int) bool {
	if !c.running || gen != c.gen || len(c.slides) == 0 {
		return false
	}
	c.index = (c.index + 1) % len(c.slides)
	return true
}

// Next moves forward one slide, wrapping, and returns the new timer generation.
func (c *Carousel) Next() int {
	if len(c.slides) > 0 {
		c.index = (c.index + 1) % len(c.slides)
	}
	return c.restart()
}

// Prev moves back one slide, wrapping, and returns the new timer generation.
func (c *Carousel) Prev() int {
	if n := len(c.slides); n > 0 {
		c.index = (c.index - 1 + n) % n
	}
	return c.restart()
}

// Jump selects slide i. Out-of-range indexes are ignored (ok=false).
func (c *Carousel) Jump(i int) (gen int, ok bool) {
	if i < 0 || i >= len(c.slides) {
		return c.gen, false
	}
	c.index = i
	return c.restart(), true
}

func (c *Carousel) restart() int {
	c.gen++
	return c.gen
}
