package lock_test

import (
	"sync"
	"testing"

	"innkeep/shared/lock"

	"github.com/stretchr/testify/assert"
)

func TestKeyed_SerializesSameKey(t *testing.T) {
	keyed := lock.NewKeyed()

	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			keyed.Lock("101")
			defer keyed.Unlock("101")
			counter++
		}()
	}

	wg.Wait()
	assert.Equal(t, 100, counter)
}

func TestKeyed_DifferentKeysDoNotBlock(t *testing.T) {
	keyed := lock.NewKeyed()

	keyed.Lock("101")
	defer keyed.Unlock("101")

	done := make(chan struct{})
	go func() {
		keyed.Lock("102")
		keyed.Unlock("102")
		close(done)
	}()

	<-done
}
