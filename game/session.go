// Package game implements the playable session: the snake, food and
// score, the pause-aware clock, timed effects, and the offer
// machinery that periodically interrupts play.
package game

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-arcade/game/clock"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// State is the session lifecycle state.
type State int

const (
	StateReady    State = iota // fresh run, clock not started yet
	StateRunning               // snake moving, clock accumulating
	StatePaused                // frozen by the player or an offer
	StateGameOver              // terminal until restart
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ErrInsufficientFunds is returned by PurchaseOffer when the score
// cannot cover the item cost. No game state changes on this error.
var ErrInsufficientFunds = errors.New("insufficient score for offer")

// Session owns all mutable game state for one window. All methods
// must be called from the frame loop goroutine.
type Session struct {
	RunID string
	Grid  types.Grid

	snake *entity.Snake
	food  types.Point
	score int
	state State
	prev  State // state to restore when leaving Paused

	src     clock.Source
	gameClk *clock.GameClock
	rng     *rand.Rand

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	effectMgr    *manager.EffectManager
	offerMgr     *manager.OfferManager
	offer        *manager.OpenOffer // nil while no offer is on screen

	baseInterval time.Duration
	nextMoveAt   time.Time // zero while movement is suspended

	stats *GameStats
}

// NewSession creates a session on the standard grid with system time
// and a time-seeded RNG.
func NewSession(baseInterval time.Duration) *Session {
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	return NewSessionWith(clock.System(), rng, baseInterval)
}

// NewSessionWith wires explicit time and randomness sources.
func NewSessionWith(src clock.Source, rng *rand.Rand, baseInterval time.Duration) *Session {
	grid := types.Grid{
		Width:  types.GridWidth,
		Height: types.GridHeight,
	}

	s := &Session{
		Grid:         grid,
		src:          src,
		gameClk:      clock.NewGameClock(src),
		rng:          rng,
		collisionMgr: manager.NewCollisionManager(grid),
		effectMgr:    manager.NewEffectManager(src),
		offerMgr:     manager.NewOfferManager(src, types.OfferInterval, types.OfferTimeout),
		baseInterval: baseInterval,
		stats:        NewGameStats(),
	}
	s.foodMgr = manager.NewFoodManager(grid, s.collisionMgr, rng)
	s.reset()
	return s
}

// reset rebuilds the per-run state. Session stats survive.
func (s *Session) reset() {
	s.RunID = uuid.New().String()

	head := types.Point{X: s.Grid.Width / 2, Y: s.Grid.Height / 2}
	color := entity.Color{
		R: uint8(s.rng.Intn(200) + 55),
		G: uint8(s.rng.Intn(200) + 55),
		B: uint8(s.rng.Intn(200) + 55),
	}
	s.snake = entity.NewSnake(head, types.DirRight, types.InitialSnakeLength, color)
	s.food = s.foodMgr.Place(s.snake)
	s.score = 0
	s.state = StateReady
	s.prev = StateReady
	s.gameClk.Reset()
	s.effectMgr.Reset()
	s.offerMgr.Reset()
	s.offer = nil
	s.nextMoveAt = s.src.Now().Add(s.moveInterval())
}

// moveInterval is the current tick interval after effects.
func (s *Session) moveInterval() time.Duration {
	return s.effectMgr.MoveInterval(s.baseInterval)
}

// ticking reports whether a movement step is scheduled.
func (s *Session) ticking() bool {
	if s.state != StateReady && s.state != StateRunning {
		return false
	}
	return !s.nextMoveAt.IsZero()
}

// Update advances the session by one frame. It resolves a due offer
// auto-close, runs at most one due movement step, then checks the
// offer schedule. All deadlines fire here and nowhere else, so state
// changes stay sequential.
func (s *Session) Update() {
	now := s.src.Now()

	// A deadline that lost the race against a manual close finds no
	// offer and does nothing.
	if s.offer != nil && !now.Before(s.offer.AutoCloseAt) {
		s.closeOffer()
	}

	if s.ticking() && !now.Before(s.nextMoveAt) {
		s.step()
		if s.ticking() {
			s.nextMoveAt = now.Add(s.moveInterval())
		}
	}

	s.maybePresentOffer()
}

// step advances the snake one cell: resolve the target, check the
// body, move, then handle food. The body check runs against the full
// pre-move body, so stepping onto the tail cell ends the run even
// though the tail vacates it this tick.
func (s *Session) step() {
	newHead := s.collisionMgr.NextHead(s.snake.Head(), s.snake.Direction)

	if s.collisionMgr.HitsSnake(newHead, s.snake) && !s.effectMgr.ShieldActive() {
		s.endRun()
		return
	}

	s.snake.Move(newHead)

	if newHead == s.food {
		s.score += types.FoodPoints
		s.food = s.foodMgr.Place(s.snake)
	} else {
		s.snake.RemoveTail()
	}

	// The first step of a run starts the clock.
	if s.state == StateReady {
		s.gameClk.Start()
		s.state = StateRunning
	}
}

// endRun finalizes a lost run and records it.
func (s *Session) endRun() {
	s.gameClk.Pause()
	s.state = StateGameOver
	s.nextMoveAt = time.Time{}
	s.stats.AddRun(s.RunID, s.score, s.gameClk.Elapsed(), s.src.Now())
}

// suspend freezes the clock and cancels the pending move, remembering
// the state to restore.
func (s *Session) suspend() {
	s.gameClk.Pause()
	s.nextMoveAt = time.Time{}
	s.prev = s.state
	s.state = StatePaused
}

// resume restores the pre-pause state and re-arms the move timer with
// a full interval.
func (s *Session) resume() {
	s.state = s.prev
	if s.state == StateRunning {
		s.gameClk.Start()
	}
	s.nextMoveAt = s.src.Now().Add(s.moveInterval())
}

// Move applies a direction intent. The snake rejects reversals. The
// first accepted direction of a fresh run starts the clock; while
// paused the direction is recorded but time stays frozen.
func (s *Session) Move(dir types.Direction) {
	if s.state == StateGameOver {
		return
	}
	accepted := s.snake.SetDirection(dir)
	if accepted && s.state == StateReady {
		s.gameClk.Start()
		s.state = StateRunning
	}
}

// TogglePause suspends or resumes play. Ignored when the game is over
// and while an offer holds the game paused.
func (s *Session) TogglePause() {
	if s.state == StateGameOver || s.offer != nil {
		return
	}
	if s.state == StatePaused {
		s.resume()
	} else {
		s.suspend()
	}
}

// Restart abandons the current run and starts a fresh one in Ready.
// Any open offer and pending deadlines die with the old run.
func (s *Session) Restart() {
	s.reset()
}

// maybePresentOffer opens the offer overlay when the game clock
// crosses the next threshold. Play is suspended while the offer is
// up; if the player had already paused, the offer remembers that and
// the pause outlives it.
func (s *Session) maybePresentOffer() {
	if s.state == StateGameOver || s.offer != nil {
		return
	}
	if !s.offerMgr.MaybeTrigger(s.gameClk.Elapsed()) {
		return
	}

	wasPaused := s.state == StatePaused
	if !wasPaused {
		s.suspend()
	}
	s.offer = s.offerMgr.Open(wasPaused)
}

// PurchaseOffer buys item i from the open offer. On success the cost
// is deducted, the effect applied and the offer closed. If the score
// cannot cover the cost the item flashes, nothing else changes, and
// ErrInsufficientFunds comes back. Without an open offer this is a
// no-op.
func (s *Session) PurchaseOffer(i int) error {
	if s.offer == nil || i < 0 || i >= len(s.offer.Items) {
		return nil
	}

	item := s.offer.Items[i]
	if s.score < item.Cost {
		s.offer.FlashItem = i
		s.offer.FlashUntil = s.src.Now().Add(types.InsufficientFlash)
		return ErrInsufficientFunds
	}

	s.score -= item.Cost
	switch item.Kind {
	case manager.OfferGrow:
		s.snake.Grow(item.Segments)
	case manager.OfferSpeedBoost:
		s.effectMgr.ApplySpeedBoost(item.Duration)
	case manager.OfferShield:
		s.effectMgr.ApplyShield(item.Duration)
	}
	s.closeOffer()
	return nil
}

// DismissOffer closes the open offer without buying. No-op when no
// offer is open.
func (s *Session) DismissOffer() {
	if s.offer == nil {
		return
	}
	s.closeOffer()
}

// closeOffer takes the offer down and resumes play, unless the player
// had paused before the offer appeared, in which case the pause
// stays.
func (s *Session) closeOffer() {
	wasPaused := s.offer.WasPaused
	s.offer = nil
	if !wasPaused && s.state != StateGameOver {
		s.resume()
	}
}

// OfferFlashing reports whether item i of the open offer should
// render as rejected.
func (s *Session) OfferFlashing(i int) bool {
	return s.offer != nil && s.offer.Flashing(i, s.src.Now())
}

func (s *Session) Snake() *entity.Snake {
	return s.snake
}

func (s *Session) Food() types.Point {
	return s.food
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) State() State {
	return s.state
}

// Elapsed returns the in-game time shown on the stopwatch.
func (s *Session) Elapsed() time.Duration {
	return s.gameClk.Elapsed()
}

// EffectLabels returns the HUD labels of the active effects.
func (s *Session) EffectLabels() []string {
	return s.effectMgr.Labels()
}

// Offer returns the open offer, or nil when none is on screen.
func (s *Session) Offer() *manager.OpenOffer {
	return s.offer
}

func (s *Session) Stats() *GameStats {
	return s.stats
}
