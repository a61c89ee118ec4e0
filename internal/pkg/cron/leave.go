package cron

import (
	"context"
	"fmt"
	"sync"

	"github.com/ems-suite/ems-backend-go/internal/domain/leave"
	"github.com/ems-suite/ems-backend-go/internal/pkg/sse"
)

// LeaveJobs pushes pending-leave counts to dashboard subscribers. The admin
// UI used to poll this number on an interval; the job inverts that into a
// periodic broadcast over the SSE hub.
type LeaveJobs struct {
	leaveRepo leave.LeaveRepository
	hub       *sse.Hub

	mu        sync.Mutex
	lastCount int64
	primed    bool
}

func NewLeaveJobs(leaveRepo leave.LeaveRepository, hub *sse.Hub) *LeaveJobs {
	return &LeaveJobs{
		leaveRepo: leaveRepo,
		hub:       hub,
	}
}

// RefreshPendingCount broadcasts the pending-leave count when it changes,
// or on the first run after startup.
func (j *LeaveJobs) RefreshPendingCount(ctx context.Context) error {
	if j.hub.SubscriberCount() == 0 {
		return nil
	}

	count, err := j.leaveRepo.CountByStatus(ctx, leave.StatusPending)
	if err != nil {
		return fmt.Errorf("count pending leaves: %w", err)
	}

	j.mu.Lock()
	changed := !j.primed || count != j.lastCount
	j.lastCount = count
	j.primed = true
	j.mu.Unlock()

	if changed {
		j.hub.Broadcast(sse.Event{
			Event: "pending_leaves",
			Data:  map[string]int64{"pending": count},
		})
	}
	return nil
}
