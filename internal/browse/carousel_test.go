package browse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCarousel_TickWraps(t *testing.T) {
	c := NewCarousel(CarouselSlides, 3*time.Second)
	gen := c.Start()

	got := []int{}
	for range 4 {
		assert.True(t, c.Tick(gen))
		got = append(got, c.Index())
	}
	assert.Equal(t, []int{1, 2, 0, 1}, got)
	assert.Equal(t, 3*time.Second, c.Interval())
}

func TestCarousel_StaleTickIgnored(t *testing.T) {
	c := NewCarousel(CarouselSlides, time.Second)
	old := c.Start()

	gen := c.Next()
	assert.Equal(t, 1, c.Index())
	assert.False(t, c.Tick(old), "tick scheduled before manual navigation")
	assert.Equal(t, 1, c.Index())
	assert.True(t, c.Tick(gen))
	assert.Equal(t, 2, c.Index())
}

func TestCarousel_StopReleasesTimer(t *testing.T) {
	c := NewCarousel(CarouselSlides, time.Second)
	gen := c.Start()
	c.Stop()

	assert.False(t, c.Running())
	assert.False(t, c.Tick(gen))
	assert.Equal(t, 0, c.Index())
}

func TestCarousel_PrevWraps(t *testing.T) {
	c := NewCarousel(CarouselSlides, time.Second)
	c.Prev()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, "/banners/carousel3.jpg", c.Current())
}

func TestCarousel_Jump(t *testing.T) {
	c := NewCarousel(CarouselSlides, time.Second)

	_, ok := c.Jump(2)
	assert.True(t, ok)
	assert.Equal(t, 2, c.Index())

	for _, i := range []int{-1, 3, 100} {
		_, ok = c.Jump(i)
		assert.False(t, ok)
		assert.Equal(t, 2, c.Index())
	}
}

func TestCarousel_NoSlides(t *testing.T) {
	c := NewCarousel(nil, time.Second)
	gen := c.Start()
	assert.False(t, c.Tick(gen))
	assert.Equal(t, FallbackImage, c.Current())
	c.Next()
	c.Prev()
	assert.Equal(t, 0, c.Index())
}
