package terminal

import (
	"sync"
	"time"
)

// DefaultHoldWindow covers the gap between a terminal's key-repeat events.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyState emulates held keys from press events. Terminals report no key
// releases, so a key counts as held until holdWindow passes without a repeat.
type KeyState struct {
	mu         sync.Mutex
	holdWindow time.Duration
	now        func() time.Time
	leftAt     time.Time
	rightAt    time.Time
}

func NewKeyState(holdWindow time.Duration, now func() time.Time) *KeyState {
	if now == nil {
		now = time.Now
	}
	return &KeyState{holdWindow: holdWindow, now: now}
}

func (k *KeyState) PressLeft() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.leftAt = k.now()
}

func (k *KeyState) PressRight() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.rightAt = k.now()
}

// Held reports which directions are currently considered held.
func (k *KeyState) Held() (left, right bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.now()
	return k.active(k.leftAt, now), k.active(k.rightAt, now)
}

func (k *KeyState) active(at, now time.Time) bool {
	return !at.IsZero() && now.Sub(at) <= k.holdWindow
}
