package ratelimit

import (
	"context"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Result is the outcome of consuming one request slot.
type Result struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// PerUser is a sliding-window limiter keyed by user id. The underlying store
// increments atomically, so concurrent requests for the same user never
// undercount.
type PerUser struct {
	limiter *limiter.Limiter
}

// NewPerUser builds a limiter from a formatted rate such as "1000-H".
func NewPerUser(rate string) (*PerUser, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	return &PerUser{limiter: limiter.New(memory.NewStore(), r)}, nil
}

// Take consumes one slot for the user and reports whether the request may
// proceed. RetryAfter is populated when the window is exhausted.
func (p *PerUser) Take(ctx context.Context, userID string) (Result, error) {
	lctx, err := p.limiter.Get(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Allowed:   !lctx.Reached,
		Remaining: lctx.Remaining,
	}
	if lctx.Reached {
		res.RetryAfter = time.Until(time.Unix(lctx.Reset, 0))
	}
	return res, nil
}
