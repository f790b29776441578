package common

import (
	"os"
	"os/signal"
	"syscall"
)

func SignalHandler() chan os.Signal {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	return sig
}
