// Command daycarectl inspects and maintains a daycare's persisted state
// without starting the server.
package main

import (
	"os"

	"github.com/osse101/DogDaycare_Go/internal/config"
)

func main() {
	if err := newRootCmd(config.Load).Execute(); err != nil {
		os.Exit(1)
	}
}
