package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the background cadences: the reconciliation cron and the
// payment watcher ticker. It is constructed explicitly and injected where
// needed rather than living as package state, and exposes a Start/Stop
// lifecycle. Job errors terminate at a log statement; there is no caller to
// propagate them to.
type Scheduler struct {
	reconciler *Reconciler
	watcher    *Watcher

	cronSpec        string
	watcherInterval time.Duration

	cron     *cron.Cron
	stopCh   chan struct{}
	wg       sync.WaitGroup
	pollBusy sync.Mutex
}

// NewScheduler validates the reconciliation cron expression up front; a
// malformed cadence is a configuration error, not something to discover at
// the first missed tick.
func NewScheduler(reconciler *Reconciler, watcher *Watcher, cronSpec string, watcherInterval time.Duration) (*Scheduler, error) {
	if _, err := cron.ParseStandard(cronSpec); err != nil {
		return nil, fmt.Errorf("invalid reconciliation cron expression %q: %v", cronSpec, err)
	}
	if watcherInterval <= 0 {
		return nil, fmt.Errorf("watcher interval must be positive, got %v", watcherInterval)
	}
	return &Scheduler{
		reconciler:      reconciler,
		watcher:         watcher,
		cronSpec:        cronSpec,
		watcherInterval: watcherInterval,
	}, nil
}

// Start launches both cadences. SkipIfStillRunning guarantees a new
// reconciliation run never overlaps an in-flight one.
func (s *Scheduler) Start() error {
	s.cron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	_, err := s.cron.AddFunc(s.cronSpec, func() {
		if err := s.reconciler.Run(); err != nil {
			log.Printf("Fee reconciliation run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reconciliation: %v", err)
	}
	s.cron.Start()

	s.stopCh = make(chan struct{})
	s.wg.Add(1)
	go s.watchLoop()

	log.Printf("Scheduler started: reconciliation %q, watcher every %v", s.cronSpec, s.watcherInterval)
	return nil
}

func (s *Scheduler) watchLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.watcherInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			// Skip the tick if the previous poll is still running.
			if !s.pollBusy.TryLock() {
				continue
			}
			if err := s.watcher.Poll(); err != nil {
				log.Printf("Error in payment watcher: %v", err)
			}
			s.pollBusy.Unlock()
		}
	}
}

// Stop halts both cadences and waits for in-flight work to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	if s.stopCh != nil {
		close(s.stopCh)
	}
	s.wg.Wait()
	log.Println("Scheduler stopped")
}
