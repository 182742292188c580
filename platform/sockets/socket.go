package socket

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/campusopoly/backend/app/models"
	"github.com/campusopoly/backend/platform/board"
	"github.com/campusopoly/backend/platform/cache"
	"github.com/campusopoly/backend/platform/database"
	"github.com/campusopoly/backend/platform/game"
	"github.com/campusopoly/backend/platform/lobby"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const room = "table"

// emitter adapts the socket.io server to the Emitter interfaces of the
// lobby and game packages. Every connection joins the single table room on
// connect, so broadcast means everyone.
type emitter struct {
	server *socketio.Server

	mu    sync.Mutex
	conns map[string]socketio.Conn
}

func (e *emitter) track(s socketio.Conn) {
	s.Join(room)
	e.mu.Lock()
	e.conns[s.ID()] = s
	e.mu.Unlock()
}

func (e *emitter) untrack(s socketio.Conn) {
	e.mu.Lock()
	delete(e.conns, s.ID())
	e.mu.Unlock()
}

func (e *emitter) Broadcast(event string, args ...interface{}) {
	e.server.BroadcastToRoom("/", room, event, args...)
}

func (e *emitter) ToPlayer(id string, event string, args ...interface{}) {
	e.mu.Lock()
	c, ok := e.conns[id]
	e.mu.Unlock()
	if ok {
		c.Emit(event, args...)
	}
}

func (e *emitter) BroadcastExcept(senderID, event string, args ...interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, c := range e.conns {
		if id != senderID {
			c.Emit(event, args...)
		}
	}
}

// CreateSocketIOServer runs the realtime side of the server: the lobby,
// the handoff into a game session and the in-game actions.
func CreateSocketIOServer() {
	log := logrus.WithField("component", "sockets")

	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}

	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	em := &emitter{server: server, conns: map[string]socketio.Conn{}}

	// One session at a time; owned here, handed fresh to each game.
	var (
		sessionMu sync.Mutex
		session   *game.Session
	)
	currentSession := func() *game.Session {
		sessionMu.Lock()
		defer sessionMu.Unlock()
		return session
	}

	lob := lobby.New(em, func(players []models.LobbySlot) {
		conn := pool.Get()
		defer conn.Close()

		catalog := board.Load(db, &conn)
		if _, err := cache.Incr("stats:games_started", &conn); err != nil {
			log.WithError(err).Warn("failed bumping games-started counter")
		}

		sessionMu.Lock()
		if session != nil {
			session.Stop()
		}
		session = game.NewSession(em, catalog, players)
		session.Start()
		sessionMu.Unlock()
	})

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		em.track(s)
		log.WithField("conn", s.ID()).Info("client connected")
		s.Emit("lobby:init", lob.Snapshot())
		return nil
	})

	server.OnEvent("/", "lobby:join", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
			return
		}
		index, err := strconv.Atoi(result["index"])
		if err != nil {
			return
		}
		lob.Join(s.ID(), result["name"], index)
	})

	server.OnEvent("/", "lobby:leave", func(s socketio.Conn) {
		lob.Leave(s.ID())
	})

	server.OnEvent("/", "soundboard", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
			return
		}
		em.BroadcastExcept(s.ID(), "soundboard", map[string]string{"file": result["file"]})
	})

	server.OnEvent("/", "tiles:fetch", func(s socketio.Conn) {
		conn := pool.Get()
		defer conn.Close()
		catalog := board.Load(db, &conn)
		if catalog.Len() == 0 {
			s.Emit("error", map[string]string{"scope": "tiles", "message": "failed loading the board"})
			return
		}
		s.Emit("tiles:data", catalog.Tiles())
	})

	server.OnEvent("/", "action:roll", func(s socketio.Conn) {
		if sess := currentSession(); sess != nil {
			sess.HandleRoll(s.ID())
		}
	})

	server.OnEvent("/", "action:buy", func(s socketio.Conn) {
		if sess := currentSession(); sess != nil {
			sess.HandleBuy(s.ID())
		}
	})

	server.OnEvent("/", "action:endTurn", func(s socketio.Conn) {
		if sess := currentSession(); sess != nil {
			sess.HandleEndTurn(s.ID())
		}
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.WithFields(logrus.Fields{"conn": s.ID(), "reason": reason}).Info("client disconnected")
		em.untrack(s)
		lob.Leave(s.ID())
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}
