package lobby

import (
	"math/rand"
	"sync"
	"time"

	"github.com/campusopoly/backend/app/models"
	"github.com/sirupsen/logrus"
)

const (
	MaxPlayers       = 4
	CountdownSeconds = 5
)

var colors = []string{"red", "blue", "green", "yellow", "purple", "orange"}

// Emitter is the broadcast half of the transport the lobby needs.
type Emitter interface {
	Broadcast(event string, args ...interface{})
}

type CountdownEvent struct {
	Seconds int `json:"seconds"`
}

// Lobby is the pre-game seat assignment. Filling the last seat starts a
// countdown; losing any seat during it cancels it outright.
type Lobby struct {
	mu      sync.Mutex
	emitter Emitter
	log     *logrus.Entry
	rng     *rand.Rand
	onStart func(players []models.LobbySlot)

	// Tick is the countdown interval, one second in production. Shrunk by
	// tests; set it before the first Join.
	Tick time.Duration

	slots [MaxPlayers]*models.LobbySlot

	// started stays true from countdown launch through the running game so
	// a refilled lobby cannot start a second session; a cancelled countdown
	// resets it. counting is true only while the countdown timer is live.
	started  bool
	counting bool
	seconds  int
	serial   uint64
}

// New wires the lobby to the transport. onStart receives the occupied
// seats, in seat order, the moment the countdown reaches zero.
func New(emitter Emitter, onStart func(players []models.LobbySlot)) *Lobby {
	return &Lobby{
		emitter: emitter,
		log:     logrus.WithField("component", "lobby"),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Tick:    time.Second,
		onStart: onStart,
	}
}

// Join seats a connection. Occupied seats and duplicate names are ignored
// without feedback; the client resyncs from the next snapshot either way.
func (l *Lobby) Join(connID, name string, index int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= MaxPlayers || l.slots[index] != nil {
		return
	}
	for _, s := range l.slots {
		if s != nil && s.Name == name {
			return
		}
	}

	l.slots[index] = &models.LobbySlot{
		ID:    connID,
		Name:  name,
		Color: colors[l.rng.Intn(len(colors))],
	}
	l.log.WithFields(logrus.Fields{"name": name, "seat": index}).Info("player joined")
	l.emitter.Broadcast("lobby:update", l.snapshotLocked())

	if !l.started && l.occupiedLocked() == MaxPlayers {
		l.startCountdownLocked()
	}
}

// Leave frees every seat held by the connection (called on both the
// explicit leave event and the socket disconnect).
func (l *Lobby) Leave(connID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	changed := false
	for i, s := range l.slots {
		if s != nil && s.ID == connID {
			l.slots[i] = nil
			changed = true
		}
	}
	if !changed {
		return
	}

	l.log.Info("player left the lobby")
	l.emitter.Broadcast("lobby:update", l.snapshotLocked())

	if l.started && l.counting {
		l.counting = false
		l.started = false
		l.serial++
		l.emitter.Broadcast("lobby:countdown-cancel")
	}
}

// Snapshot returns the seat array as sent to clients, nil for free seats.
func (l *Lobby) Snapshot() [MaxPlayers]*models.LobbySlot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Lobby) snapshotLocked() [MaxPlayers]*models.LobbySlot {
	var out [MaxPlayers]*models.LobbySlot
	for i, s := range l.slots {
		if s != nil {
			cp := *s
			out[i] = &cp
		}
	}
	return out
}

func (l *Lobby) occupiedLocked() int {
	n := 0
	for _, s := range l.slots {
		if s != nil {
			n++
		}
	}
	return n
}

func (l *Lobby) startCountdownLocked() {
	l.started = true
	l.counting = true
	l.seconds = CountdownSeconds
	l.serial++
	l.log.Info("lobby full, starting countdown")
	l.emitter.Broadcast("lobby:countdown", CountdownEvent{Seconds: l.seconds})
	l.scheduleTickLocked(l.serial)
}

func (l *Lobby) scheduleTickLocked(serial uint64) {
	time.AfterFunc(l.Tick, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if !l.counting || l.serial != serial {
			return
		}
		l.tickLocked(serial)
	})
}

func (l *Lobby) tickLocked(serial uint64) {
	l.seconds--
	if l.seconds > 0 {
		l.emitter.Broadcast("lobby:countdown", CountdownEvent{Seconds: l.seconds})
		l.scheduleTickLocked(serial)
		return
	}

	l.counting = false
	l.log.Info("countdown finished, launching game")
	l.emitter.Broadcast("game:begin")

	players := make([]models.LobbySlot, 0, MaxPlayers)
	for _, s := range l.slots {
		if s != nil {
			players = append(players, *s)
		}
	}
	if l.onStart != nil {
		l.onStart(players)
	}
}
