package syncutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMutexSerializesCriticalSection(t *testing.T) {
	t.Parallel()

	var mu Mutex
	inside := 0
	maxInside := 0
	done := make(chan struct{})

	for range 4 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 50 {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				time.Sleep(10 * time.Microsecond)
				inside--
				mu.Unlock()
			}
		}()
	}
	for range 4 {
		<-done
	}

	assert.Equal(t, 1, maxInside)
}
