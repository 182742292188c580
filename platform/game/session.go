package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/campusopoly/backend/app/models"
	"github.com/campusopoly/backend/platform/board"
	"github.com/sirupsen/logrus"
)

const (
	BoardSize    = 40
	StartBalance = 1500
	Salary       = 200
	TurnSeconds  = 30
	JailIndex    = 10
	RailroadRent = 25
)

var railroadIndexes = []int{5, 15, 25, 35}

// Timing groups the delays the engine schedules. Tests shrink them.
type Timing struct {
	FirstTurnDelay  time.Duration
	TickInterval    time.Duration
	EffectDelay     time.Duration
	ForcedRollGrace time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		FirstTurnDelay:  time.Second,
		TickInterval:    time.Second,
		EffectDelay:     1500 * time.Millisecond,
		ForcedRollGrace: 2 * time.Second,
	}
}

// Session is the authoritative state of one running game, constructed at
// the lobby-to-game handoff and dropped when the game ends. All mutation
// happens under mu, whether it comes from a socket handler or a timer.
type Session struct {
	mu      sync.Mutex
	emitter Emitter
	catalog *board.Catalog
	log     *logrus.Entry
	rng     *rand.Rand
	timing  Timing

	rollDice func() (int, int)

	players   []*models.Player
	current   int
	timeLeft  int
	hasRolled bool
	running   bool

	// serial invalidates turn-scoped timers (tick, forced-roll grace) when
	// a new turn starts or the session stops. A pending card effect is not
	// turn-scoped: it still applies if the turn moved on.
	serial        uint64
	effectPending bool
}

// NewSession builds the player list from the occupied lobby seats, keeping
// the seat order as turn order.
func NewSession(emitter Emitter, catalog *board.Catalog, seats []models.LobbySlot) *Session {
	s := &Session{
		emitter: emitter,
		catalog: catalog,
		log:     logrus.WithField("component", "game"),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		timing:  DefaultTiming(),
		current: -1,
	}
	s.rollDice = func() (int, int) {
		return s.rng.Intn(6) + 1, s.rng.Intn(6) + 1
	}
	for _, seat := range seats {
		s.players = append(s.players, &models.Player{
			ID:         seat.ID,
			Name:       seat.Name,
			Color:      seat.Color,
			Position:   0,
			Balance:    StartBalance,
			Properties: []int{},
		})
	}
	return s
}

// Start broadcasts the initial state and schedules the first turn. The
// current-player index stays at its -1 sentinel until that first nextTurn.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || len(s.players) == 0 {
		return
	}
	s.running = true
	s.hasRolled = false
	s.log.WithFields(logrus.Fields{
		"players": len(s.players),
		"tiles":   s.catalog.Len(),
	}).Info("session started")

	s.emitter.Broadcast("game:init_state", s.snapshotLocked())

	serial := s.serial
	s.after(s.timing.FirstTurnDelay, func() {
		if s.serial != serial {
			return
		}
		s.nextTurnLocked()
	})
}

// Stop invalidates every pending timer. Used when a new session replaces
// this one or the process shuts down.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.serial++
}

func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// HandleRoll is the manual dice roll. Ignored unless the caller is the
// current player and has not rolled this turn.
func (s *Session) HandleRoll(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || s.current < 0 {
		return
	}
	p := s.playerByIDLocked(playerID)
	if p == nil || p != s.players[s.current] || s.hasRolled {
		return
	}
	s.performRollLocked(p)
}

// HandleEndTurn advances to the next player. Only the current player may
// end the turn, and only after rolling.
func (s *Session) HandleEndTurn(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || s.current < 0 || !s.hasRolled {
		return
	}
	p := s.playerByIDLocked(playerID)
	if p == nil || p != s.players[s.current] {
		return
	}
	s.nextTurnLocked()
}

// HandleBuy re-validates the purchase from scratch: any earlier allow_buy
// signal was advisory only.
func (s *Session) HandleBuy(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	p := s.playerByIDLocked(playerID)
	if p == nil {
		return
	}
	tile, ok := s.catalog.ByIndex(p.Position)
	if !ok || !tile.Purchasable() {
		return
	}
	if s.ownerOfLocked(p.Position) != nil {
		return
	}
	if p.Balance < *tile.Price {
		return
	}

	p.Balance -= *tile.Price
	p.Properties = append(p.Properties, p.Position)

	s.emitter.Broadcast("game:notification",
		fmt.Sprintf("🏠 %s bought %s for %d $!", p.Name, tile.Name, *tile.Price))
	s.emitter.Broadcast("game:init_state", s.snapshotLocked())
	s.emitter.ToPlayer(p.ID, "game:buy_success")
}

func (s *Session) nextTurnLocked() {
	s.serial++ // drops the previous turn's tick and grace timers
	s.current = (s.current + 1) % len(s.players)
	s.timeLeft = TurnSeconds
	s.hasRolled = false

	cur := s.players[s.current]
	s.emitter.Broadcast("game:turn_change", TurnChangeEvent{
		CurrentPlayerID: cur.ID,
		TimeLeft:        s.timeLeft,
	})
	s.scheduleTickLocked(s.serial)
}

func (s *Session) scheduleTickLocked(serial uint64) {
	s.after(s.timing.TickInterval, func() {
		if s.serial != serial {
			return
		}
		s.tickLocked(serial)
	})
}

// tickLocked is one second of the turn clock. The clock holds while a drawn
// card waits to apply, so a forced roll can never interleave with a pending
// effect for the same player.
func (s *Session) tickLocked(serial uint64) {
	if s.effectPending {
		s.scheduleTickLocked(serial)
		return
	}
	s.timeLeft--
	if s.timeLeft > 0 {
		s.scheduleTickLocked(serial)
		return
	}

	cur := s.players[s.current]
	if !s.hasRolled {
		s.log.WithField("player", cur.Name).Info("turn timed out, forcing roll")
		s.performRollLocked(cur)
		s.after(s.timing.ForcedRollGrace, func() {
			if s.serial != serial {
				return
			}
			s.nextTurnLocked()
		})
		return
	}
	s.nextTurnLocked()
}

// performRollLocked rolls two dice, moves the player and resolves the
// landing as a primary one.
func (s *Session) performRollLocked(p *models.Player) {
	d1, d2 := s.rollDice()
	total := d1 + d2

	old := p.Position
	next := (old + total) % BoardSize
	if next < old {
		p.Balance += Salary
		s.emitter.Broadcast("game:notification",
			fmt.Sprintf("💰 %s passes Start and collects %d $", p.Name, Salary))
		s.emitter.Broadcast("game:init_state", s.snapshotLocked())
	}
	p.Position = next
	s.hasRolled = true

	s.emitter.Broadcast("game:moved", MovedEvent{
		PlayerID:    p.ID,
		NewPosition: next,
		DiceResult:  []int{d1, d2},
	})

	s.resolveLandingLocked(p, total, false)
}

// after schedules fn under the session lock. fn is dropped once the
// session stops; turn-scoped callers additionally check the serial.
func (s *Session) after(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.running {
			return
		}
		fn()
	})
}

func (s *Session) playerByIDLocked(id string) *models.Player {
	for _, p := range s.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Session) ownerOfLocked(index int) *models.Player {
	for _, p := range s.players {
		if p.Owns(index) {
			return p
		}
	}
	return nil
}

func (s *Session) countOwnedLocked(p *models.Player, tileType string) int {
	n := 0
	for _, idx := range p.Properties {
		if tile, ok := s.catalog.ByIndex(idx); ok && tile.Type == tileType {
			n++
		}
	}
	return n
}

func (s *Session) snapshotLocked() []models.Player {
	out := make([]models.Player, 0, len(s.players))
	for _, p := range s.players {
		cp := *p
		cp.Properties = append([]int(nil), p.Properties...)
		out = append(out, cp)
	}
	return out
}
