package neopixel

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Queue hands a device between animations. Taking the queue marks the current owner as interrupted and blocks until
// it lets go; a running animation SHOULD check Interrupted between frames and return when it is set.
type Queue struct {
	waiting int
	owner   sync.Mutex
	state   sync.Mutex
}

type Unlocker func()

// Take waits for the current owner to finish and returns the function that releases ownership again.
func (q *Queue) Take() Unlocker {
	q.enqueue()
	q.owner.Lock()
	q.dequeue()

	var once sync.Once
	return func() {
		once.Do(q.owner.Unlock)
	}
}

func (q *Queue) enqueue() {
	q.state.Lock()
	defer q.state.Unlock()

	q.waiting++
	log.Tracef("Queued for the LEDs, %d waiting", q.waiting)
}

func (q *Queue) dequeue() {
	q.state.Lock()
	defer q.state.Unlock()

	q.waiting--
	if q.waiting < 0 {
		log.Warn("number waiting in queue less than zero")
		q.waiting = 0
	}
}

// Interrupted reports whether someone is waiting to take over.
func (q *Queue) Interrupted() bool {
	q.state.Lock()
	defer q.state.Unlock()

	return q.waiting != 0
}
