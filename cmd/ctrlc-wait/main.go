package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"ctrlc"
	palSignal "ctrlc/infrastructure/PAL/signal"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	stop := newStopGate()
	var received atomic.Int32
	handle, err := ctrlc.SetHandlerWithConfig(func() bool {
		n := int(received.Add(1))
		fmt.Printf("\nInterrupt %d/%d received\n", n, cfg.MaxSignals)
		if n < cfg.MaxSignals {
			return true
		}
		stop.close()
		return false
	}, cfg.handlerConfig())
	if err != nil {
		log.Fatalf("failed to set interrupt handler: %v", err)
	}

	fmt.Println("Waiting for Ctrl-C...")

	var eg errgroup.Group
	eg.Go(func() error {
		return work(stop, cfg.Tick)
	})
	eg.Go(handle.Join)
	if cfg.RaiseAfter > 0 {
		eg.Go(func() error {
			return raiseEvery(stop, cfg.RaiseAfter)
		})
	}

	if err := eg.Wait(); err != nil {
		log.Fatalf("interrupt handling failed: %v", err)
	}
	fmt.Println("Got it! Exiting...")
}

func work(stop *stopGate, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop.done:
			return nil
		case <-ticker.C:
			fmt.Print(".")
		}
	}
}

// raiseEvery interrupts the process on every tick until the handler stops.
func raiseEvery(stop *stopGate, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-stop.done:
			return nil
		case <-ticker.C:
			if err := stop.whileOpen(func() error { return palSignal.Raise(os.Interrupt) }); err != nil {
				return err
			}
		}
	}
}

// stopGate orders self-raised signals before the handler's stop. A raise that completes
// after the handler unsubscribed would hit the default disposition.
type stopGate struct {
	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

func newStopGate() *stopGate {
	return &stopGate{done: make(chan struct{})}
}

func (g *stopGate) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.closed {
		g.closed = true
		close(g.done)
	}
}

func (g *stopGate) whileOpen(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	return fn()
}
