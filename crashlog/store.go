// Package crashlog implements the event-gated Future collaborator from
// spec section 6 — a Go port of FBCrashLogStore/FBCrashLogNotifier
// (see _examples/original_source/FBControlCore/**) built on the future
// package plus the adapted coalescing package.
package crashlog

import (
	"fmt"
	"log"
	"sync"

	"github.com/zareefahmed/FBSimulatorControl/future"
	"github.com/zareefahmed/FBSimulatorControl/future/executor"
)

// Event is a single ingested crash log, mirroring FBCrashLogInfo's public
// fields.
type Event struct {
	ProcessName string
	PID         int
	Path        string
	Payload     map[string]string
}

// StoreConfig configures a Store.
type StoreConfig struct {
	// Directory is the directory crash logs are ingested from.
	Directory string
}

func (c StoreConfig) Validate() error {
	if c.Directory == "" {
		return fmt.Errorf("StoreConfig.Directory must not be empty")
	}
	return nil
}

type waiter struct {
	predicate func(Event) bool
	resolve   future.Resolvable[Event]
}

// Store ingests crash logs for a directory and lets callers wait for the
// next one matching a predicate, adapted from FBCrashLogStore. Each
// ingested event is dispatched to pending waiters directly under mu: there
// is no batching to do here, since a waiter must see its match the moment
// it arrives, not after a count/time window elapses.
type Store struct {
	conf StoreConfig
	// logger receives one unit of work per ingested event, carrying that
	// event's log line. Kept as an ExecutionContext rather than a bespoke
	// logging dependency (see DESIGN.md: no pack repo pulls in a logging
	// library, so plain stdlib `log` is what runs on it).
	logger executor.ExecutionContext

	mu      sync.Mutex
	waiters []*waiter
}

// NewStore creates a Store for directory. logger runs the log line written
// for each ingested event (executor.Inline{} runs it synchronously);
// pending waiters are resolved by Ingest itself, whatever logger is.
func NewStore(conf StoreConfig, logger executor.ExecutionContext) *Store {
	if err := conf.Validate(); err != nil {
		panic("invalid crash log store configuration: " + err.Error())
	}
	return &Store{conf: conf, logger: logger}
}

// Ingest records a newly observed crash log and notifies any pending
// NextMatching waiters. Parsing a real crash report from path is left to
// the caller, who supplies the already-parsed fields via event.
func (s *Store) Ingest(path string, event Event) *Event {
	event.Path = path

	s.logger.Execute(func() {
		log.Printf("crashlog: ingested %s (pid %d) from %s", event.ProcessName, event.PID, event.Path)
	})

	s.mu.Lock()
	remaining := s.waiters[:0]
	for _, w := range s.waiters {
		if w.predicate(event) {
			w.resolve.ResolveValue(event)
		} else {
			remaining = append(remaining, w)
		}
	}
	s.waiters = remaining
	s.mu.Unlock()

	return &event
}

// NextMatching returns a Future resolving with the first ingested Event
// for which predicate is true. Predicate matches are evaluated in
// event-arrival order and each returned Future matches at most one event.
func (s *Store) NextMatching(predicate func(Event) bool) *future.Future[Event] {
	f, resolve := future.New[Event]()

	s.mu.Lock()
	s.waiters = append(s.waiters, &waiter{predicate: predicate, resolve: resolve})
	s.mu.Unlock()

	return f
}
