// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bq

import (
	"context"
	"sync"
	"time"
)

// locker is satisfied by both *sync.Mutex (non-fair: barging permitted)
// and *fifoMutex (fair: strict FIFO admission order).
type locker interface {
	Lock()
	Unlock()
}

// fifoMutex is a mutual-exclusion lock that admits contending goroutines
// in strict arrival order, realizing spec §4.D's fair-mode requirement
// that "a freshly-arrived producer ... must queue behind existing waiting
// producers." It trades the runtime's mutex-barging optimization for
// deterministic ordering.
type fifoMutex struct {
	mu      sync.Mutex
	locked  bool
	waiters []chan struct{}
}

func (m *fifoMutex) Lock() {
	m.mu.Lock()
	if !m.locked {
		m.locked = true
		m.mu.Unlock()
		return
	}
	ch := make(chan struct{})
	m.waiters = append(m.waiters, ch)
	m.mu.Unlock()
	<-ch // handed the lock directly by Unlock, in arrival order
}

func (m *fifoMutex) Unlock() {
	m.mu.Lock()
	if len(m.waiters) == 0 {
		m.locked = false
		m.mu.Unlock()
		return
	}
	next := m.waiters[0]
	m.waiters = m.waiters[1:]
	m.mu.Unlock()
	close(next)
}

// transferWaiter hands the lock directly to a goroutine that a condition
// signal just woke, without ever letting the mutex go fully unlocked in
// between — the AQS transferForSignal pattern. The caller must currently
// hold the lock (it is always invoked from inside a signalOne call, which
// in turn only ever runs while the queue's own critical section holds
// mu). ch is queued exactly where a brand-new Lock() call would land, so
// any goroutine that arrives after the transfer queues behind it instead
// of racing it for an uncontended lock.
func (m *fifoMutex) transferWaiter(ch chan struct{}) {
	m.mu.Lock()
	m.waiters = append(m.waiters, ch)
	m.mu.Unlock()
}

// ticket is one goroutine's place in a waitQueue.
type ticket struct {
	ch chan struct{}
}

// waitQueue is an explicit FIFO list of waiters on one of the queue's two
// conditions (notEmpty/notFull). Every method must be called with the
// owning Queue's mutex held.
//
// A single waitQueue implementation serves both fair and non-fair queues:
// fairness in this design comes entirely from which locker (fifoMutex vs
// sync.Mutex) guards the queue, per spec §9's observation that non-fair
// mode's lack of ordering guarantee is a property of the lock, not of
// condition-notification order.
type waitQueue struct {
	waiters []*ticket
}

// enqueue registers a new waiter at the tail of the queue. Must be called
// with the mutex held.
func (q *waitQueue) enqueue() *ticket {
	t := &ticket{ch: make(chan struct{}, 1)}
	q.waiters = append(q.waiters, t)
	return t
}

// remove drops t from the queue if it is still waiting there, returning
// true if it found and removed it (no wakeup was in flight) or false if t
// had already been signaled and dequeued by signalOne.
func (q *waitQueue) remove(t *ticket) bool {
	for i, w := range q.waiters {
		if w == t {
			q.waiters = append(q.waiters[:i], q.waiters[i+1:]...)
			return true
		}
	}
	return false
}

// signalOne wakes the head of the queue, if any, handing it mu directly
// when mu is a *fifoMutex (spec §4.D/§9 fairness). Must be called with mu
// held.
//
// For a fair queue, simply posting to the ticket's channel and letting
// the woken goroutine call mu.Lock() itself would reopen a barging
// window: between the post and the woken goroutine's re-acquisition, mu
// can go fully unlocked, and a freshly arrived goroutine can acquire it
// uncontested and steal the slot the signal was meant to hand over.
// transferWaiter closes that window by moving the ticket straight into
// fifoMutex's own wait queue while mu is still held, so a later arrival
// is forced to queue behind it instead.
func (q *waitQueue) signalOne(mu locker) {
	if len(q.waiters) == 0 {
		return
	}
	t := q.waiters[0]
	q.waiters = q.waiters[1:]
	if fm, ok := mu.(*fifoMutex); ok {
		fm.transferWaiter(t.ch)
		return
	}
	select {
	case t.ch <- struct{}{}:
	default:
	}
}

// waitResult distinguishes a canceled wait from a timed-out one: a timeout
// is not a failure (spec §4.E: offer/poll with a timeout just return
// false), while a canceled context surfaces ErrInterrupted.
type waitResult int

const (
	waitSignaled waitResult = iota
	waitTimedOut
	waitCanceled
)

// wait blocks a goroutine on q until it is signaled, ctx is done, or (if
// hasDeadline) deadline passes — whichever comes first. The caller must
// hold mu when calling wait; wait releases mu while blocked and always
// returns with mu held again, implementing the release-wait-reacquire
// condition variable protocol over an arbitrary locker.
//
// When mu is a *fifoMutex, "reacquire" is not always a fresh Lock() call:
// a signal delivered via fifoMutex.transferWaiter already hands mu to
// this goroutine (see signalOne), so calling Lock() again would make it
// queue behind itself. waitFair below is what tells the two cases apart.
func wait(mu locker, q *waitQueue, ctx context.Context, hasDeadline bool, deadline time.Time) waitResult {
	t := q.enqueue()
	fm, fair := mu.(*fifoMutex)
	mu.Unlock()

	var timerC <-chan time.Time
	if hasDeadline {
		timer := time.NewTimer(time.Until(deadline))
		defer timer.Stop()
		timerC = timer.C
	}

	var result waitResult
	select {
	case <-t.ch:
		result = waitSignaled
	case <-ctx.Done():
		result = waitCanceled
	case <-timerC:
		result = waitTimedOut
	}

	if fair {
		return waitFair(fm, q, t, result)
	}
	return waitNonFair(mu, q, t, result)
}

// waitNonFair implements the reacquire half of wait for a plain
// sync.Mutex, where signalOne only ever posts to t.ch and never touches
// mu: the woken goroutine (or one that timed out/was canceled) always
// re-contends for the lock like any other caller.
func waitNonFair(mu locker, q *waitQueue, t *ticket, result waitResult) waitResult {
	mu.Lock()

	if result != waitSignaled {
		if !q.remove(t) {
			// t was signaled concurrently with our cancellation/timeout:
			// the wakeup is ours to forward so it isn't lost.
			select {
			case <-t.ch:
				q.signalOne(mu)
			default:
			}
		}
	}

	return result
}

// waitFair implements the reacquire half of wait for a *fifoMutex,
// completing whichever side of the signal-to-lock handoff applies.
func waitFair(fm *fifoMutex, q *waitQueue, t *ticket, result waitResult) waitResult {
	if result == waitSignaled {
		// signalOne already transferred mu to us directly (t.ch was
		// closed by fifoMutex.Unlock handing off the lock, not sent to);
		// there is nothing left to acquire.
		return result
	}

	if q.remove(t) {
		// Never signaled: t never left the condition queue, so mu was
		// never promised to it. Safe to contend for it normally.
		fm.Lock()
		return result
	}

	// t was transferred into fm's own wait queue concurrently with our
	// cancellation/timeout. The handoff cannot be abandoned here: fm now
	// depends on this exact ticket eventually being granted and
	// released, or it would stay locked forever. Finish taking the
	// grant (we now hold fm, same as the waitSignaled case above),
	// forward the consumed signal to the next waiter so it is not lost,
	// and let the caller's normal deferred Unlock release fm; only the
	// original cancellation/timeout is reported upward.
	<-t.ch
	q.signalOne(fm)
	return result
}
