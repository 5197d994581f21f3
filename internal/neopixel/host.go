package neopixel

import (
	"sync"

	log "github.com/sirupsen/logrus"
	"periph.io/x/host/v3"
)

var hostInit struct {
	once sync.Once
	err  error
}

// initHost loads the periph host drivers once per process.
func initHost() error {
	hostInit.once.Do(func() {
		state, err := host.Init()
		if err != nil {
			hostInit.err = err
			return
		}
		log.Debugf("periph host initialized with %d drivers", len(state.Loaded))
	})
	return hostInit.err
}
