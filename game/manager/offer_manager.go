package manager

import (
	"time"

	"snake-arcade/game/clock"
)

// OfferKind selects what a purchased offer does.
type OfferKind int

const (
	OfferGrow OfferKind = iota
	OfferSpeedBoost
	OfferShield
)

// OfferItem is one purchasable entry in the offer overlay.
type OfferItem struct {
	Name        string
	Description string
	Cost        int
	Kind        OfferKind
	Duration    time.Duration // timed effects only
	Segments    int           // OfferGrow only
}

// DefaultOffers returns the standard catalog.
func DefaultOffers() []OfferItem {
	return []OfferItem{
		{
			Name:        "Grow +2",
			Description: "Two extra tail segments",
			Cost:        20,
			Kind:        OfferGrow,
			Segments:    2,
		},
		{
			Name:        "Speed boost",
			Description: "Move twice as fast for 10s",
			Cost:        30,
			Kind:        OfferSpeedBoost,
			Duration:    10 * time.Second,
		},
		{
			Name:        "Shield",
			Description: "Survive collisions for 10s",
			Cost:        25,
			Kind:        OfferShield,
			Duration:    10 * time.Second,
		},
	}
}

// OpenOffer is an offer currently shown to the player. The session
// holds at most one; nil means no overlay.
type OpenOffer struct {
	Items       []OfferItem
	WasPaused   bool      // game was already paused when the offer appeared
	AutoCloseAt time.Time // wall deadline after which the offer closes unattended
	FlashItem   int       // item flashed after a rejected purchase, -1 for none
	FlashUntil  time.Time
}

// Flashing reports whether item i should render as rejected.
func (o *OpenOffer) Flashing(i int, now time.Time) bool {
	return o.FlashItem == i && now.Before(o.FlashUntil)
}

// OfferManager owns the offer schedule and catalog. The schedule runs
// on game time, so a paused game never accrues toward the next offer.
type OfferManager struct {
	src      clock.Source
	interval time.Duration
	timeout  time.Duration
	next     time.Duration
	catalog  []OfferItem
}

func NewOfferManager(src clock.Source, interval, timeout time.Duration) *OfferManager {
	return &OfferManager{
		src:      src,
		interval: interval,
		timeout:  timeout,
		next:     interval,
		catalog:  DefaultOffers(),
	}
}

// MaybeTrigger reports whether elapsed game time has reached the next
// offer threshold. The threshold advances by exactly one interval per
// trigger, never more, however far elapsed has run past it.
func (om *OfferManager) MaybeTrigger(elapsed time.Duration) bool {
	if elapsed < om.next {
		return false
	}
	om.next += om.interval
	return true
}

// Open builds the offer to present, stamping its auto-close deadline.
func (om *OfferManager) Open(wasPaused bool) *OpenOffer {
	return &OpenOffer{
		Items:       om.catalog,
		WasPaused:   wasPaused,
		AutoCloseAt: om.src.Now().Add(om.timeout),
		FlashItem:   -1,
	}
}

// NextTrigger returns the game time of the next scheduled offer.
func (om *OfferManager) NextTrigger() time.Duration {
	return om.next
}

// Reset restores the schedule so the first offer of a new run lands
// one full interval in.
func (om *OfferManager) Reset() {
	om.next = om.interval
}
