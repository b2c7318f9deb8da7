package tetris

import (
	"sync"
	"time"
)

// Game runs the simulation: gravity, landing, row elimination, scoring and
// the game over check. Tick and input handling are serialised by a single
// mutex, so a driver goroutine and a UI goroutine may call into the same
// game concurrently.
type Game struct {
	mu sync.Mutex

	cfg    Config
	grid   *Grid
	clock  Clock
	random Randomizer
	level  LevelPolicy
	input  InputMap
	events *Events

	running bool
	active  *Piece // nil between game over and the first spawn
	score   int
	lines   int

	interval    time.Duration
	lastGravity time.Time
	gravitySet  bool
}

// Option customises a Game.
type Option func(*Game)

// WithClock sets the time source. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithRandomizer sets the piece generator. Defaults to a uniform randomizer
// seeded from the current time.
func WithRandomizer(r Randomizer) Option {
	return func(g *Game) { g.random = r }
}

// WithLevelPolicy sets the level source. Defaults to a ScoreLevel raising
// the level every ten rows.
func WithLevelPolicy(l LevelPolicy) Option {
	return func(g *Game) { g.level = l }
}

// WithInputMap sets the input code translation. Defaults to DefaultKeyMap.
func WithInputMap(m InputMap) Option {
	return func(g *Game) { g.input = m }
}

// NewGame creates a stopped game.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		grid:   NewGrid(cfg.Rows, cfg.Columns),
		events: newEvents(cfg.EventBuffer),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.clock == nil {
		g.clock = SystemClock{}
	}
	if g.random == nil {
		g.random = NewUniform(uint64(time.Now().UnixNano()))
	}
	if g.level == nil {
		g.level = NewScoreLevel(10, 0)
	}
	if g.input == nil {
		g.input = DefaultKeyMap()
	}

	g.interval = cfg.Interval(g.level.Level())
	return g, nil
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// Start resets the board, score and level and starts the game. The first
// tick after Start passes the gravity gate and spawns a piece.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.grid.Clear()
	g.score = 0
	g.lines = 0
	g.active = nil
	g.level.Reset()
	g.gravitySet = false
	g.interval = g.cfg.Interval(g.level.Level())
	g.running = true
}

// Stop halts the game. Nothing else changes, so the board stays visible.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.running = false
}

// IsRunning reports whether the game accepts ticks and input.
func (g *Game) IsRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// Tick advances the simulation by one step using the game's clock.
func (g *Game) Tick() {
	now := g.clock.Now()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.tick(now)
}

// Execute lets a Scheduler drive the game.
func (g *Game) Execute(frame *Frame) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tick(frame.Now)
}

func (g *Game) tick(now time.Time) {
	if !g.running {
		return
	}

	if g.toppedOut() {
		g.events.Push(Event{Kind: EventGameOver})
		g.running = false
		g.active = nil
		return
	}

	if g.active != nil && g.grid.Landed(g.active) {
		g.land()
	}

	g.interval = g.cfg.Interval(g.level.Level())
	if !g.gravitySet || now.Sub(g.lastGravity) >= g.interval {
		if g.active == nil {
			g.active = g.grid.Spawn(g.random.Next())
		} else {
			g.grid.Move(g.active, MoveDown)
		}
		g.lastGravity = now
		g.gravitySet = true
	}

	// Every running tick reports the board, moved or not; repeats coalesce
	// in the queue.
	g.events.Push(Event{Kind: EventBoardUpdated})
}

// toppedOut reports whether the stack reached the game over row or the
// current piece could not be placed at its spawn position.
func (g *Game) toppedOut() bool {
	for _, cell := range g.grid.Row(g.cfg.GameOverRow) {
		if !g.grid.IsFreeFor(cell, g.active) {
			return true
		}
	}
	return g.active != nil && !g.active.Placed()
}

// land spawns the next piece and clears the rows the landed piece
// completed. The new piece is lifted off the board while rows collapse so
// its cells cannot be shifted out from under its position.
func (g *Game) land() {
	next := g.grid.Spawn(g.random.Next())
	placed := next.Placed()
	if placed {
		g.grid.lift(next)
	}

	full := g.grid.FullRows()
	if len(full) > 0 {
		g.grid.Eliminate(full)
	}

	if placed {
		g.grid.Apply(next, next.Position())
	}
	g.active = next

	if n := len(full); n > 0 {
		g.lines += n
		g.addScore(n)
		g.events.Push(Event{Kind: EventBoardUpdated})
	}
}

func (g *Game) addScore(delta int) {
	old := g.score
	g.score += delta
	g.events.Push(Event{Kind: EventScoreChanged, Delta: g.score - old})
	if obs, ok := g.level.(ScoreObserver); ok {
		obs.ScoreChanged(delta)
	}
}

// HandleInput maps code to an intent and applies it to the active piece.
// It reports whether the piece moved. Unknown codes, blocked moves and
// input while stopped are ignored.
func (g *Game) HandleInput(code string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.running || g.active == nil {
		return false
	}
	intent, ok := g.input.Intent(code)
	if !ok {
		return false
	}
	return g.move(intent)
}

// Apply performs intent on the active piece directly, bypassing the input
// map. Used by bots and by front-ends with their own key handling.
func (g *Game) Apply(intent Intent) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.running || g.active == nil {
		return false
	}
	return g.move(intent)
}

func (g *Game) move(intent Intent) bool {
	if !g.grid.Move(g.active, intent) {
		return false
	}
	g.events.Push(Event{Kind: EventBoardUpdated})
	return true
}

// Drain returns the events emitted since the previous call.
func (g *Game) Drain() []Event {
	return g.events.Drain()
}

// DroppedEvents returns how many events were lost to a full buffer.
func (g *Game) DroppedEvents() uint64 {
	return g.events.Dropped()
}

// Score returns the current score.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// Lines returns the number of rows cleared since Start.
func (g *Game) Lines() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lines
}

// Level returns the level reported by the level policy.
func (g *Game) Level() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.level.Level()
}

// Interval returns the gravity interval computed by the latest tick.
func (g *Game) Interval() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.interval
}

// ActivePiece returns a copy of the falling piece, if any.
func (g *Game) ActivePiece() (Piece, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active == nil {
		return Piece{}, false
	}
	return *g.active, true
}
