package redis

import "context"

// Promote runs one poll of due schedules.
func (x *Scheduler) Promote(ctx context.Context) error {
	return x.promote(ctx)
}

func (x *Scheduler) KeyNext() string { return x.keyNext() }
