package commands

import (
	"log"
	"os"
	"os/signal"
	"sync"
)

// cleanup releases the currently-open source when the process is
// interrupted mid-scan.
type cleanup struct {
	mu   sync.Mutex
	work map[int]func()
	next int
}

func newCleanup() *cleanup {
	clean := &cleanup{
		work: map[int]func(){},
	}

	signalsCh := make(chan os.Signal, 1)
	signal.Notify(signalsCh, os.Interrupt)

	go func() {
		<-signalsCh
		log.SetFlags(0)
		log.Println("\ncleaning up...")
		clean.exit(ExitError)
	}()

	return clean
}

// register adds fn to the interrupt work and returns a release func that
// undoes the registration once the resource is closed normally.
func (c *cleanup) register(fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.next
	c.next++
	c.work[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.work, id)
	}
}

func (c *cleanup) exit(status int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, w := range c.work {
		w()
	}

	os.Exit(status)
}
