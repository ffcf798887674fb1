package jobs

import (
	"context"
	"log"
	"sync"
	"time"
)

// OverdueNotifier emits overdue events and reports how many were sent
type OverdueNotifier interface {
	NotifyOverdue(ctx context.Context) (int, error)
}

// OverdueJob periodically announces pending complaints that passed their deadline
type OverdueJob struct {
	notifier OverdueNotifier
	interval time.Duration
	stopChan chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewOverdueJob creates a new overdue job
func NewOverdueJob(notifier OverdueNotifier, interval time.Duration) *OverdueJob {
	return &OverdueJob{
		notifier: notifier,
		interval: interval,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the overdue job
func (j *OverdueJob) Start() {
	go j.run()
	log.Printf("🚀 Overdue job started (every %s)", j.interval)
}

// Stop stops the overdue job and waits for the current check to finish
func (j *OverdueJob) Stop() {
	j.once.Do(func() {
		close(j.stopChan)
		<-j.done
		log.Println("🛑 Overdue job stopped")
	})
}

func (j *OverdueJob) run() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-j.stopChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-ticker.C:
			j.CheckOnce(ctx)
		case <-j.stopChan:
			return
		}
	}
}

// CheckOnce runs a single overdue scan
func (j *OverdueJob) CheckOnce(ctx context.Context) int {
	sent, err := j.notifier.NotifyOverdue(ctx)
	if err != nil {
		log.Printf("❌ Error checking overdue complaints: %v", err)
		return 0
	}
	if sent > 0 {
		log.Printf("⏰ Announced %d overdue complaints", sent)
	}
	return sent
}
