package cache

import "fmt"

// Keyer produces cache keys for the values the runner stores.
type Keyer interface {
	// InputKey addresses the raw puzzle input for a year and day.
	InputKey(year, day int) string

	// ResultKey addresses a memoised answer. inputHash is [Hash] of the
	// exact input the solver ran on.
	ResultKey(year, day, part int, inputHash string) string
}

// DefaultKeyer lays keys out as "input:2021:16" and
// "result:2021:16:2:<hash>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard key layout.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// InputKey implements Keyer.
func (DefaultKeyer) InputKey(year, day int) string {
	return fmt.Sprintf("input:%d:%d", year, day)
}

// ResultKey implements Keyer.
func (DefaultKeyer) ResultKey(year, day, part int, inputHash string) string {
	return fmt.Sprintf("result:%d:%d:%d:%s", year, day, part, inputHash)
}

// ScopedKeyer wraps a Keyer with a prefix so that several puzzle accounts
// can share one cache without reading each other's inputs.
//
//	scoped := NewScopedKeyer(nil, AccountScope(sessionToken))
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer means [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// InputKey implements Keyer.
func (k *ScopedKeyer) InputKey(year, day int) string {
	return k.prefix + k.inner.InputKey(year, day)
}

// ResultKey implements Keyer.
func (k *ScopedKeyer) ResultKey(year, day, part int, inputHash string) string {
	return k.prefix + k.inner.ResultKey(year, day, part, inputHash)
}

// AccountScope derives a stable, non-reversible key prefix from a session
// token. An empty token yields the anonymous scope.
func AccountScope(session string) string {
	if session == "" {
		return "anon:"
	}
	return "acct:" + Hash([]byte(session))[:12] + ":"
}
