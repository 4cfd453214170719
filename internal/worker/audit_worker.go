package worker

import (
	"context"
	"log"

	"user-admin-service/internal/metrics"
)

type StatusEvent struct {
	UserID    string
	NewStatus string
}

// AuditWorker drains status-change events emitted by the toggle endpoint and
// records them in the log and the toggle counter. Events are best-effort:
// the sender drops them when the channel is full.
type AuditWorker struct {
	Ch <-chan StatusEvent
}

func NewAuditWorker(ch <-chan StatusEvent) *AuditWorker {
	return &AuditWorker{Ch: ch}
}

func (w *AuditWorker) Run(ctx context.Context) {
	log.Println("audit worker started")
	for {
		select {
		case <-ctx.Done():
			log.Println("audit worker stopped")
			return
		case ev := <-w.Ch:
			metrics.IncStatusToggle(ev.NewStatus)
			log.Printf("user status changed: user=%s status=%s\n", ev.UserID, ev.NewStatus)
		}
	}
}
