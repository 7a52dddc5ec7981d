package engine

import (
	"crypto/rand"
	"math/big"
)

// Roller supplies die faces to formula evaluation. Implementations must
// return values uniformly distributed in [1, sides].
type Roller interface {
	Roll(sides int) int
}

// CryptoRoller draws strongly uniform faces via crypto/rand.
type CryptoRoller struct{}

// Roll returns a random face in [1, sides].
func (CryptoRoller) Roll(sides int) int {
	return safeRand(sides)
}

// safeRand fetches a strongly uniform random integer via crypto/rand
func safeRand(max int) int {
	if max <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64()) + 1 // Convert 0-(Max-1) to 1-Max
}

// QueueRoller replays a prepared sequence of deterministic faces.
// Once the queue is exhausted it falls back to crypto/rand, so tests
// that under-provision faces fail on value checks instead of panicking.
type QueueRoller struct {
	queue []int
}

// NewQueueRoller prepares a deterministic roller for tests.
func NewQueueRoller(faces ...int) *QueueRoller {
	return &QueueRoller{queue: faces}
}

// SetRolls replaces the pending queue.
func (q *QueueRoller) SetRolls(faces []int) {
	q.queue = faces
}

// Remaining reports how many queued faces are left unconsumed.
func (q *QueueRoller) Remaining() int {
	return len(q.queue)
}

func (q *QueueRoller) Roll(sides int) int {
	if len(q.queue) == 0 {
		return safeRand(sides)
	}
	val := q.queue[0]
	q.queue = q.queue[1:]
	return val
}
