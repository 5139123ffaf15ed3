package hasher

import (
	"runtime"

	"golang.org/x/crypto/bcrypt"
)

// Hasher is the one-way transform applied to every secret (passwords
// and security answers). Digests embed a per-call salt, so hashing the
// same secret twice yields different digests.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}

// Bcrypt hashes with x/crypto/bcrypt. Hashing is CPU-bound, so the
// number of in-flight operations is capped by a semaphore rather than
// letting every request block a thread in the hasher.
type Bcrypt struct {
	cost int
	sem  chan struct{}
}

func NewBcrypt(cost, maxConcurrent int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.GOMAXPROCS(0)
	}
	return &Bcrypt{
		cost: cost,
		sem:  make(chan struct{}, maxConcurrent),
	}
}

func (b *Bcrypt) Hash(secret string) (string, error) {
	b.sem <- struct{}{}
	defer func() { <-b.sem }()

	digest, err := bcrypt.GenerateFromPassword([]byte(secret), b.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (b *Bcrypt) Verify(secret, digest string) bool {
	b.sem <- struct{}{}
	defer func() { <-b.sem }()

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
