package match

import "time"

// ResolveStage maps a lifecycle status to its UI-visible stage. It is
// total and deterministic: now is injected, a nil startAt never yields
// live or finished for a confirmed record, and no input panics.
func ResolveStage(status Status, startAt *time.Time, now time.Time, duration time.Duration) Stage {
	switch status {
	case StatusMatched, StatusRequested, StatusAccepted:
		return StagePending
	case StatusFinished, StatusCancelled:
		return StageFinished
	case StatusConfirmed:
		return resolveConfirmedStage(startAt, now, duration)
	default:
		return StagePending
	}
}

func resolveConfirmedStage(startAt *time.Time, now time.Time, duration time.Duration) Stage {
	if startAt == nil || startAt.IsZero() {
		// Kickoff still TBD: never report live/finished on a guess.
		return StageUpcoming
	}
	if duration <= 0 {
		duration = DefaultDuration
	}

	start := *startAt
	if now.Before(start) {
		return StageUpcoming
	}
	if now.Before(start.Add(duration)) {
		return StageLive
	}
	return StageFinished
}

// StageAt is the read-time selector: stages are recomputed against a
// live clock on every read, never cached on the entity.
func (m Match) StageAt(now time.Time, duration time.Duration) Stage {
	return ResolveStage(m.Status, m.StartAt, now, duration)
}
