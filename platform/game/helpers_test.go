package game

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/campusopoly/backend/app/models"
	"github.com/campusopoly/backend/platform/board"
)

type recordedEvent struct {
	target string // "" for broadcasts, player id otherwise
	name   string
	args   []interface{}
}

type fakeEmitter struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeEmitter) Broadcast(event string, args ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{name: event, args: args})
}

func (f *fakeEmitter) ToPlayer(playerID string, event string, args ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{target: playerID, name: event, args: args})
}

func (f *fakeEmitter) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.events {
		if e.name == name {
			n++
		}
	}
	return n
}

func (f *fakeEmitter) last(name string) (recordedEvent, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.events) - 1; i >= 0; i-- {
		if f.events[i].name == name {
			return f.events[i], true
		}
	}
	return recordedEvent{}, false
}

func (f *fakeEmitter) hasNotification(substr string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.name == "game:notification" && strings.Contains(e.args[0].(string), substr) {
			return true
		}
	}
	return false
}

func (f *fakeEmitter) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = nil
}

func intp(n int) *int { return &n }

// testCatalog lays out a board with the reference tile types: corners at
// 0/10/20/30, railroads at 5/15/25/35, utilities at 12/28, card tiles and
// tax in their usual spots, plain properties everywhere else.
func testCatalog() *board.Catalog {
	tiles := make([]models.Tile, 0, BoardSize)
	for i := 0; i < BoardSize; i++ {
		t := models.Tile{Index: i, Name: fmt.Sprintf("Tile %d", i)}
		switch i {
		case 0:
			t.Type = models.TileGo
		case 10:
			t.Type = models.TileJail
		case 20:
			t.Type = models.TileFreeParking
		case 30:
			t.Type = models.TileGoToJail
		case 2, 17, 33:
			t.Type = models.TileCommunity
		case 7, 22, 36:
			t.Type = models.TileChance
		case 4, 38:
			t.Type = models.TileTax
		case 5, 15, 25, 35:
			t.Type = models.TileRailroad
			t.Price = intp(200)
			t.Rent = intp(25)
		case 12, 28:
			t.Type = models.TileUtility
			t.Price = intp(150)
		default:
			t.Type = models.TileProperty
			t.Price = intp(100 + i)
			t.Rent = intp(10 + i)
		}
		tiles = append(tiles, t)
	}
	return board.New(tiles)
}

// newTestSession returns a running session whose timers are parked far in
// the future, so tests drive the state machine by calling the locked
// methods directly.
func newTestSession(names ...string) (*Session, *fakeEmitter) {
	em := &fakeEmitter{}
	s := NewSession(em, testCatalog(), seats(names...))
	s.rng = rand.New(rand.NewSource(1))
	s.timing = Timing{
		FirstTurnDelay:  time.Hour,
		TickInterval:    time.Hour,
		EffectDelay:     time.Hour,
		ForcedRollGrace: time.Hour,
	}
	s.running = true
	return s, em
}

func fixedDice(d1, d2 int) func() (int, int) {
	return func() (int, int) { return d1, d2 }
}

func seats(names ...string) []models.LobbySlot {
	out := make([]models.LobbySlot, 0, len(names))
	for i, n := range names {
		out = append(out, models.LobbySlot{ID: fmt.Sprintf("conn-%d", i), Name: n, Color: "red"})
	}
	return out
}
