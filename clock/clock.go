// Package clock provides the tick sources that drive the emulator.
//
// Every clock implements Wait(ctx), which blocks until the next tick is
// allowed. io.EOF means no further ticks will come.
package clock

import (
	"context"
	"io"
	"time"
)

// Limit allows a fixed number of ticks without waiting.
// A zero Ticks never runs out.
type Limit struct {
	Ticks int

	count int
}

// Wait returns immediately, or io.EOF once the limit is reached.
func (lc *Limit) Wait(ctx context.Context) (err error) {
	err = ctx.Err()
	if err != nil {
		return
	}

	if lc.exhausted() {
		err = io.EOF
		return
	}

	lc.count++
	return
}

func (lc *Limit) exhausted() bool {
	return lc.Ticks > 0 && lc.count >= lc.Ticks
}

// Count returns the number of ticks allowed so far.
func (lc *Limit) Count() int {
	return lc.count
}

// Period allows one tick per period, up to an optional limit.
type Period struct {
	Limit
	Period time.Duration

	last time.Time
}

// Wait sleeps until a period has passed since the previous tick.
// A cancelled wait does not count against the limit.
func (pc *Period) Wait(ctx context.Context) (err error) {
	err = ctx.Err()
	if err != nil {
		return
	}

	if pc.exhausted() {
		err = io.EOF
		return
	}

	if !pc.last.IsZero() {
		timer := time.NewTimer(time.Until(pc.last.Add(pc.Period)))
		defer timer.Stop()

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case <-timer.C:
		}
	}

	pc.count++
	pc.last = time.Now()
	return
}

type readResult struct {
	data []byte
	err  error
}

// asyncRead runs blocking reads, returning early if the context ends.
// A read cannot be interrupted; if the context ends first, the read stays
// pending and its result is delivered to the next call.
type asyncRead struct {
	pending chan readResult
}

func (ar *asyncRead) read(ctx context.Context, read func() ([]byte, error)) (data []byte, err error) {
	if ar.pending == nil {
		done := make(chan readResult, 1)
		go func() {
			data, err := read()
			done <- readResult{data: data, err: err}
		}()
		ar.pending = done
	}

	select {
	case <-ctx.Done():
		err = ctx.Err()
	case result := <-ar.pending:
		ar.pending = nil
		data, err = result.data, result.err
	}

	return
}
