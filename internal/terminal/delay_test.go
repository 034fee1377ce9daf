package terminal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJitter_Bounds(t *testing.T) {
	delay := Jitter(20 * time.Millisecond)
	for i := 0; i < 200; i++ {
		d := delay(30 * time.Millisecond)
		assert.GreaterOrEqual(t, d, 30*time.Millisecond)
		assert.Less(t, d, 50*time.Millisecond)
	}
}

func TestJitter_DisabledIsExact(t *testing.T) {
	assert.Equal(t, 30*time.Millisecond, Jitter(0)(30*time.Millisecond))
	assert.Equal(t, 30*time.Millisecond, NoJitter(30*time.Millisecond))
}

func TestVirtualClock_Advances(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewVirtualClock(start)

	got := <-c.After(150 * time.Millisecond)
	<-c.After(300 * time.Millisecond)

	assert.Equal(t, start.Add(150*time.Millisecond), got)
	assert.Equal(t, 450*time.Millisecond, c.Elapsed())
	assert.Equal(t, 2, c.Waits())
}
