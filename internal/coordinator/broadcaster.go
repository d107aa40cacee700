package coordinator

import "time"

// WebSocketBroadcaster is the narrow interface a Hub must satisfy to
// receive job events. Defined here, not in the websocket package, so
// this package has no import on gorilla/websocket.
type WebSocketBroadcaster interface {
	BroadcastMessage(messageType string, data interface{})
}

// JobBroadcaster relays job lifecycle events to a WebSocketBroadcaster.
// A nil hub is valid and makes every method a no-op, so a JobBroadcaster
// built without a hub can always be called unconditionally.
type JobBroadcaster struct {
	hub WebSocketBroadcaster
}

// NewJobBroadcaster creates a broadcaster around hub, which may be nil.
func NewJobBroadcaster(hub WebSocketBroadcaster) *JobBroadcaster {
	return &JobBroadcaster{hub: hub}
}

// BroadcastProgress sends a live count update for a running job.
func (b *JobBroadcaster) BroadcastProgress(jobID string, p Progress) {
	if b.hub == nil {
		return
	}
	b.hub.BroadcastMessage("job_progress", map[string]interface{}{
		"job_id":     jobID,
		"rank":       p.Rank,
		"local":      p.Local,
		"task_index": p.TaskIndex,
		"updated_at": time.Now(),
	})
}

// BroadcastCompleted sends a job completion event.
func (b *JobBroadcaster) BroadcastCompleted(jobID string, result Result, duration time.Duration) {
	if b.hub == nil {
		return
	}
	b.hub.BroadcastMessage("job_completed", map[string]interface{}{
		"job_id":       jobID,
		"completed_at": time.Now(),
		"duration":     duration,
		"total":        result.Total,
		"task_count":   result.TaskCount,
	})
}

// BroadcastFailed sends a job failure event.
func (b *JobBroadcaster) BroadcastFailed(jobID string, err error) {
	if b.hub == nil {
		return
	}
	b.hub.BroadcastMessage("job_failed", map[string]interface{}{
		"job_id":    jobID,
		"error":     err.Error(),
		"failed_at": time.Now(),
	})
}
