package core

import (
	"time"

	platformcore "github.com/vovakirdan/busjam/internal/core"
)

// EventKind classifies session events.
type EventKind uint8

const (
	EventBusStepped EventKind = iota
	EventPassengerBoarded
	EventBusFull
	EventBusCompleted
	EventLevelWon
	EventLevelTimedOut
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventBusStepped:
		return "BusStepped"
	case EventPassengerBoarded:
		return "PassengerBoarded"
	case EventBusFull:
		return "BusFull"
	case EventBusCompleted:
		return "BusCompleted"
	case EventLevelWon:
		return "LevelWon"
	case EventLevelTimedOut:
		return "LevelTimedOut"
	default:
		return "Unknown"
	}
}

// Event reports something that happened during Update.
type Event struct {
	Kind        EventKind
	BusID       int
	Color       Color
	Cell        Cell
	PassengerID int
}

// timeoutThreshold ends a timed level slightly before zero.
const timeoutThreshold = 100 * time.Millisecond

// Options configures a session. Radii, linear speed and the exit jump
// height are measured in cells; NewSession converts them to world units
// with the level's cell size.
type Options struct {
	StepInterval time.Duration
	Motion       Motion
	HitRadius    float64

	CollisionMask ObjectMask
	CheckRadius   float64
	ObjectRadius  float64

	SeatsPerSegment int
	ZoneRadius      float64
	Boarding        BoardingTiming
	Disappear       DisappearTiming

	TimerEnabled bool
	// TimerScale multiplies the level duration.
	TimerScale float64
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		StepInterval:    DefaultStepInterval,
		Motion:          DefaultMotion(),
		HitRadius:       DefaultHitRadius,
		CollisionMask:   MaskOf(ObjectBorder),
		CheckRadius:     0.3,
		ObjectRadius:    0.5,
		SeatsPerSegment: 1,
		ZoneRadius:      1.0,
		Boarding:        DefaultBoardingTiming(),
		Disappear:       DefaultDisappearTiming(),
		TimerEnabled:    true,
		TimerScale:      1,
	}
}

// inWorldUnits returns a copy with cell-relative distances multiplied by
// the cell size.
func (o Options) inWorldUnits(cellSize float64) Options {
	if o.HitRadius <= 0 {
		o.HitRadius = DefaultHitRadius
	}
	o.HitRadius *= cellSize
	o.CheckRadius *= cellSize
	o.ObjectRadius *= cellSize
	o.ZoneRadius *= cellSize
	o.Motion.Speed *= cellSize
	o.Disappear.JumpHeight *= cellSize
	return o
}

// Session is one play-through of a level.
type Session struct {
	level *LevelData
	opts  Options

	grid    *Grid
	buses   []*Bus
	queues  []*PassageQueue
	zones   []*PickupZone
	sched   *Scheduler
	drag    *DragController
	counter *CompletionCounter

	timed    bool
	timeLeft time.Duration
	elapsed  time.Duration
	won      bool
	lost     bool

	events []Event
}

// NewSession builds the grid, buses, and queues for a level. The level is
// not modified.
func NewSession(level *LevelData, cam Camera, opts Options) *Session {
	grid := NewGridFromLevel(level)
	opts = opts.inWorldUnits(grid.CellSize)
	s := &Session{
		level: level,
		opts:  opts,
		grid:  grid,
		sched: NewScheduler(),
	}
	s.drag = NewDragController(s.grid, cam, opts.HitRadius)

	var checker OverlapChecker
	if overlap := NewSphereOverlap(level.WorldObjects, opts.CollisionMask, opts.ObjectRadius); overlap != nil {
		checker = overlap
	}

	for i, def := range level.Buses {
		cells := def.Cells()
		seats := def.Seats
		if seats <= 0 {
			seats = len(cells) * max(opts.SeatsPerSegment, 1)
		}
		b := NewBus(i+1, def.Color, cells, s.grid, BusOptions{
			StepInterval: opts.StepInterval,
			Motion:       opts.Motion,
			Overlap:      checker,
			CheckRadius:  opts.CheckRadius,
			Seats:        seats,
			Heading:      DirFromAngle(def.RotationY),
		})
		b.seats.OnFull(func() { s.onBusFull(b) })
		s.buses = append(s.buses, b)
		s.grid.RegisterBus(b)
	}

	nextID := 0
	for _, spawn := range level.PassengerSpawns {
		q := NewPassageQueue(spawn, &nextID)
		s.queues = append(s.queues, q)
		s.zones = append(s.zones, NewPickupZone(q, opts.ZoneRadius))
	}

	s.counter = NewCompletionCounter(len(s.buses))

	if opts.TimerEnabled && level.Duration > 0 {
		scale := opts.TimerScale
		if scale <= 0 {
			scale = 1
		}
		s.timed = true
		s.timeLeft = time.Duration(float64(level.Duration) * scale)
	}
	return s
}

// Level returns the level the session was built from.
func (s *Session) Level() *LevelData { return s.level }

// Grid returns the board.
func (s *Session) Grid() *Grid { return s.grid }

// Buses returns every bus spawned for the level, including completed ones.
func (s *Session) Buses() []*Bus { return s.buses }

// Queues returns the passenger queues.
func (s *Session) Queues() []*PassageQueue { return s.queues }

// Zones returns the pickup zones, one per queue.
func (s *Session) Zones() []*PickupZone { return s.zones }

// Drag returns the drag controller.
func (s *Session) Drag() *DragController { return s.drag }

// SetCamera replaces the camera used for pointer picking.
func (s *Session) SetCamera(cam Camera) { s.drag.SetCamera(cam) }

// Counter returns the completion counter.
func (s *Session) Counter() *CompletionCounter { return s.counter }

// Timed returns true if the level has a running time limit.
func (s *Session) Timed() bool { return s.timed }

// TimeLeft returns the remaining time of a timed level.
func (s *Session) TimeLeft() time.Duration { return s.timeLeft }

// Elapsed returns the simulated time since the session started.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Won returns true once every bus has completed.
func (s *Session) Won() bool { return s.won }

// Lost returns true once the timer ran out.
func (s *Session) Lost() bool { return s.lost }

// Over returns true if the level is won or lost.
func (s *Session) Over() bool { return s.won || s.lost }

// Update advances the session by one frame. Pointer events are applied
// first, then buses step in spawn order, then pickup zones and scheduled
// tasks run. The returned events are only valid until the next call.
func (s *Session) Update(dt time.Duration, pointer []platformcore.PointerEvent) []Event {
	s.events = s.events[:0]

	if s.Over() {
		s.drag.Release()
	} else {
		for _, ev := range pointer {
			s.drag.Handle(ev)
		}
	}

	for _, b := range s.buses {
		if !s.grid.IsRegistered(b) {
			continue
		}
		if b.Update(dt) {
			s.emit(Event{Kind: EventBusStepped, BusID: b.ID, Color: b.Color, Cell: b.Head()})
		}
	}

	for _, z := range s.zones {
		z.Update(s.grid, s.sched, s.opts.Boarding, s.onBoard)
	}
	s.sched.Step(dt)

	if !s.Over() {
		s.elapsed += dt
		if s.timed {
			s.timeLeft -= dt
			if s.timeLeft <= timeoutThreshold {
				s.timeLeft = 0
				s.lost = true
				s.drag.Release()
				s.emit(Event{Kind: EventLevelTimedOut})
			}
		}
	}
	return s.events
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) onBoard(b *Bus, p *Passenger, _ *Seat) {
	s.emit(Event{Kind: EventPassengerBoarded, BusID: b.ID, Color: b.Color, PassengerID: p.ID})
}

func (s *Session) onBusFull(b *Bus) {
	s.drag.Drop(b)
	b.Disable()
	s.emit(Event{Kind: EventBusFull, BusID: b.ID, Color: b.Color, Cell: b.Head()})
	s.sched.Add(&disappearTask{
		bus:    b,
		timing: s.opts.Disappear,
		done:   func() { s.onBusGone(b) },
	})
}

func (s *Session) onBusGone(b *Bus) {
	s.grid.UnregisterBus(b)
	s.emit(Event{Kind: EventBusCompleted, BusID: b.ID, Color: b.Color})
	if s.counter.IncreaseTotalFullBus() && !s.lost {
		s.won = true
		s.emit(Event{Kind: EventLevelWon})
	}
}
