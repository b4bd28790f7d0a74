package serial

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/JLReitz/ShmitWare/result"
	"github.com/JLReitz/ShmitWare/span"
)

// Endpoint is one side of an in-memory duplex channel. It satisfies both
// session.Inbound (reading what the peer posted) and session.Outbound
// (posting toward the peer).
type Endpoint struct {
	name string
	rx   *queue // filled by the peer, drained by Request
	tx   *queue // filled by Post, drained by the peer
}

// Pipe creates a duplex channel whose directions each hold up to capacity
// buffered bytes, and returns its two endpoints.
func Pipe(capacity int) (*Endpoint, *Endpoint) {
	ab := newQueue(capacity)
	ba := newQueue(capacity)
	a := &Endpoint{name: "a", rx: ba, tx: ab}
	b := &Endpoint{name: "b", rx: ab, tx: ba}
	return a, b
}

// InputBytesAvailable reports the bytes buffered toward this endpoint.
func (e *Endpoint) InputBytesAvailable() int {
	return e.rx.buffered()
}

// OutputBytesAvailable reports the free buffer space toward the peer.
func (e *Endpoint) OutputBytesAvailable() int {
	return e.tx.free()
}

// Request fills rx from the peer's posted bytes. Success means the full
// span was populated within the timeout; no bytes are consumed on failure.
func (e *Endpoint) Request(rx span.Span[byte], timeout time.Duration) result.Binary {
	if !e.rx.read(rx.Data(), timeout) {
		Logger().Debug("serial request expired",
			zap.String("endpoint", e.name),
			zap.Int("want", rx.Count()),
			zap.Int("buffered", e.rx.buffered()),
			zap.Duration("timeout", timeout))
		return result.Failed()
	}
	return result.Succeeded()
}

// Post buffers all of tx toward the peer. Success means the full span was
// accepted within the timeout; no bytes are buffered on failure.
func (e *Endpoint) Post(tx span.Span[byte], timeout time.Duration) result.Binary {
	if !e.tx.write(tx.Data(), timeout) {
		Logger().Debug("serial post overflow",
			zap.String("endpoint", e.name),
			zap.Int("want", tx.Count()),
			zap.Int("free", e.tx.free()),
			zap.Duration("timeout", timeout))
		return result.Failed()
	}
	return result.Succeeded()
}

// queue is a bounded FIFO byte buffer with all-or-nothing transfers.
type queue struct {
	mu       sync.Mutex
	notifier *sync.Cond
	buf      []byte
	capacity int
}

func newQueue(capacity int) *queue {
	q := &queue{capacity: capacity}
	q.notifier = sync.NewCond(&q.mu)
	return q
}

func (q *queue) buffered() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

func (q *queue) free() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.capacity - len(q.buf)
}

func (q *queue) read(dst []byte, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)

	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.buf) < len(dst) {
		if !q.waitUntil(timeout, deadline) {
			return false
		}
	}

	copy(dst, q.buf)
	q.buf = q.buf[:copy(q.buf, q.buf[len(dst):])]
	q.notifier.Broadcast()
	return true
}

func (q *queue) write(src []byte, timeout time.Duration) bool {
	if len(src) > q.capacity {
		return false
	}
	deadline := time.Now().Add(timeout)

	q.mu.Lock()
	defer q.mu.Unlock()
	for q.capacity-len(q.buf) < len(src) {
		if !q.waitUntil(timeout, deadline) {
			return false
		}
	}

	q.buf = append(q.buf, src...)
	q.notifier.Broadcast()
	return true
}

// waitUntil blocks for a state change or the deadline. It reports false
// when the caller's budget is spent. Must be called with q.mu held.
func (q *queue) waitUntil(timeout time.Duration, deadline time.Time) bool {
	if timeout <= 0 {
		return false
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return false
	}

	expired := time.AfterFunc(remaining, func() {
		q.mu.Lock()
		q.notifier.Broadcast()
		q.mu.Unlock()
	})
	q.notifier.Wait()
	expired.Stop()
	return true
}
