package digest

import "context"

// Marker records that a named digest went out on a given day. MarkSent
// returns false when the day was already claimed, which lets a restarted
// process skip re-sending the same digest. A nil Marker disables the guard.
type Marker interface {
	MarkSent(ctx context.Context, job, day string) (bool, error)
}
