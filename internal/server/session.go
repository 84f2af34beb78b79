package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"doppelkopf/internal/bots"
	"doppelkopf/internal/engine"
	"doppelkopf/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type ClientMessage struct {
	Type     string     `json:"type"`
	ActionId string     `json:"actionId,omitempty"`
	Action   *ActionDTO `json:"action,omitempty"`
	Seed     int64      `json:"seed,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Table is one four-seat game. Human seats hold a websocket connection;
// every other seat is filled with a bot when the game starts.
type Table struct {
	mu        sync.Mutex
	id        string
	state     engine.GameState
	started   bool
	actionIds map[string]bool
	conns     map[int]*websocket.Conn
	botSeats  map[int]bots.Bot
	log       *zap.Logger
	snapshots *store.SnapshotStore
}

// Registry tracks the live tables and restores snapshotted ones on demand.
type Registry struct {
	mu        sync.Mutex
	tables    map[string]*Table
	log       *zap.Logger
	snapshots *store.SnapshotStore
}

func NewRegistry(log *zap.Logger, snapshots *store.SnapshotStore) *Registry {
	return &Registry{
		tables:    map[string]*Table{},
		log:       log,
		snapshots: snapshots,
	}
}

func (r *Registry) CreateTable() *Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := &Table{
		id:        uuid.NewString(),
		actionIds: map[string]bool{},
		conns:     map[int]*websocket.Conn{},
		botSeats:  map[int]bots.Bot{},
		log:       r.log,
		snapshots: r.snapshots,
	}
	r.tables[t.id] = t
	r.log.Info("table created", zap.String("table", t.id))
	return t
}

// Table returns the live table, falling back to a snapshot restore for
// tables that predate the current process.
func (r *Registry) Table(id string) (*Table, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tables[id]; ok {
		return t, true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	state, err := r.snapshots.Load(ctx, id)
	if err != nil {
		return nil, false
	}
	t := &Table{
		id:        id,
		state:     state,
		started:   true,
		actionIds: map[string]bool{},
		conns:     map[int]*websocket.Conn{},
		botSeats:  map[int]bots.Bot{},
		log:       r.log,
		snapshots: r.snapshots,
	}
	r.tables[id] = t
	r.log.Info("table restored from snapshot", zap.String("table", id))
	return t, true
}

func (t *Table) ID() string { return t.id }

func (t *Table) HandleConnection(conn *websocket.Conn, seat int) {
	if seat < 0 || seat >= engine.TournamentPreset().Players {
		_ = conn.WriteJSON(ServerMessage{
			Type:  "error",
			Error: &ErrorView{Code: "bad_seat", Message: "seat out of range"},
		})
		return
	}

	t.mu.Lock()
	t.conns[seat] = conn
	delete(t.botSeats, seat)
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		if t.conns[seat] == conn {
			delete(t.conns, seat)
		}
		t.mu.Unlock()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.sendError(seat, "bad_request", "invalid json")
			continue
		}
		t.handleMessage(seat, msg)
	}
}

func (t *Table) handleMessage(seat int, msg ClientMessage) {
	switch msg.Type {
	case "join_table", "request_state":
		t.mu.Lock()
		t.sendStateLocked(nil)
		t.mu.Unlock()
	case "start_game":
		t.startGame(msg.Seed)
	case "player_action":
		t.applyAction(seat, msg.ActionId, msg.Action)
	default:
		t.sendError(seat, "unknown_type", "unknown message type")
	}
}

func (t *Table) startGame(seed int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	t.state = engine.NewGame(engine.TournamentPreset(), seed)
	engine.DealRound(&t.state)
	t.started = true
	t.actionIds = map[string]bool{}
	t.botSeats = map[int]bots.Bot{}
	for seat := 0; seat < t.state.Rules.Players; seat++ {
		if _, connected := t.conns[seat]; !connected {
			t.botSeats[seat] = bots.NewNormal(seed + int64(seat))
		}
	}
	t.log.Info("game started",
		zap.String("table", t.id),
		zap.Int64("seed", seed),
		zap.Int("bots", len(t.botSeats)))

	t.sendStateLocked(nil)
	t.botAutoPlayLocked()
	t.saveSnapshotLocked()
}

func (t *Table) applyAction(seat int, actionId string, dto *ActionDTO) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		t.sendErrorLocked(seat, "not_started", "game not started")
		return
	}
	if actionId == "" {
		t.sendErrorLocked(seat, "missing_action_id", "actionId required")
		return
	}
	if t.actionIds[actionId] {
		t.sendStateLocked(nil)
		return
	}

	action, err := dto.ToEngine()
	if err != nil {
		t.sendErrorLocked(seat, "bad_action", err.Error())
		return
	}
	prev := t.state
	if err := engine.ApplyAction(&t.state, seat, action); err != nil {
		t.sendErrorLocked(seat, "apply_failed", err.Error())
		return
	}
	t.actionIds[actionId] = true
	t.ensureDealLocked()
	t.sendStateLocked(buildEvents(prev, t.state, seat, action))
	t.botAutoPlayLocked()
	t.saveSnapshotLocked()
}

func (t *Table) botAutoPlayLocked() {
	for {
		player, ok := engine.CurrentPlayer(t.state)
		if !ok {
			return
		}
		bot, isBot := t.botSeats[player]
		if !isBot {
			return
		}
		prev := t.state
		action := bot.ChooseAction(t.state, player)
		if err := engine.ApplyAction(&t.state, player, action); err != nil {
			t.log.Error("bot action rejected",
				zap.String("table", t.id),
				zap.Int("seat", player),
				zap.Error(err))
			return
		}
		t.ensureDealLocked()
		t.sendStateLocked(buildEvents(prev, t.state, player, action))
	}
}

func (t *Table) ensureDealLocked() {
	if t.state.Round.Phase == engine.PhaseDeal && !t.state.Round.HandsDealt {
		engine.DealRound(&t.state)
	}
}

func (t *Table) saveSnapshotLocked() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := t.snapshots.Save(ctx, t.id, t.state); err != nil {
		t.log.Warn("snapshot save failed", zap.String("table", t.id), zap.Error(err))
	}
}

func (t *Table) sendStateLocked(events []Event) {
	for seat, conn := range t.conns {
		msg := ServerMessage{
			Type:   "state",
			State:  BuildGameView(t.state, seat, t.id),
			Events: events,
		}
		if err := conn.WriteJSON(msg); err != nil {
			t.log.Warn("state write failed", zap.String("table", t.id), zap.Int("seat", seat), zap.Error(err))
		}
	}
}

func (t *Table) sendError(seat int, code, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sendErrorLocked(seat, code, message)
}

func (t *Table) sendErrorLocked(seat int, code, message string) {
	conn, ok := t.conns[seat]
	if !ok {
		return
	}
	_ = conn.WriteJSON(ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	})
}
