package manager

import (
	"time"

	"snake-arcade/game/clock"
	"snake-arcade/game/types"
)

// EffectManager tracks the timed power-up effects. Expiries are
// absolute deadlines on the raw time source, not on game time, so an
// effect keeps burning down while the game sits paused.
type EffectManager struct {
	src         clock.Source
	boostUntil  time.Time
	shieldUntil time.Time
}

func NewEffectManager(src clock.Source) *EffectManager {
	return &EffectManager{
		src: src,
	}
}

// ApplySpeedBoost arms the speed boost for d from now. Buying again
// replaces the deadline, durations do not stack.
func (em *EffectManager) ApplySpeedBoost(d time.Duration) {
	em.boostUntil = em.src.Now().Add(d)
}

// ApplyShield arms the shield for d from now, replacing any earlier
// deadline.
func (em *EffectManager) ApplyShield(d time.Duration) {
	em.shieldUntil = em.src.Now().Add(d)
}

// MoveInterval returns the tick interval to use: half the base while
// the boost is active, floored at MinMoveInterval, otherwise the base
// unchanged.
func (em *EffectManager) MoveInterval(base time.Duration) time.Duration {
	if !em.BoostActive() {
		return base
	}
	boosted := base / 2
	if boosted < types.MinMoveInterval {
		boosted = types.MinMoveInterval
	}
	return boosted
}

// BoostActive reports whether the speed boost is in effect. An effect
// is expired once now reaches its deadline; expired entries are
// cleared on the way out.
func (em *EffectManager) BoostActive() bool {
	if em.boostUntil.IsZero() {
		return false
	}
	if !em.src.Now().Before(em.boostUntil) {
		em.boostUntil = time.Time{}
		return false
	}
	return true
}

// ShieldActive reports whether the shield currently suppresses
// self-collision.
func (em *EffectManager) ShieldActive() bool {
	if em.shieldUntil.IsZero() {
		return false
	}
	if !em.src.Now().Before(em.shieldUntil) {
		em.shieldUntil = time.Time{}
		return false
	}
	return true
}

// Labels returns the HUD labels of the currently active effects.
func (em *EffectManager) Labels() []string {
	var labels []string
	if em.BoostActive() {
		labels = append(labels, "Speed+")
	}
	if em.ShieldActive() {
		labels = append(labels, "Shield")
	}
	return labels
}

// Reset clears all effects.
func (em *EffectManager) Reset() {
	em.boostUntil = time.Time{}
	em.shieldUntil = time.Time{}
}
