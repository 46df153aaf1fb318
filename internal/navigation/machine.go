package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/matrix-scoreboard/internal/buttons"
	"github.com/preston-bernstein/matrix-scoreboard/internal/clock"
	"github.com/preston-bernstein/matrix-scoreboard/internal/colors"
	"github.com/preston-bernstein/matrix-scoreboard/internal/connectivity"
	"github.com/preston-bernstein/matrix-scoreboard/internal/display"
	domaingames "github.com/preston-bernstein/matrix-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/matrix-scoreboard/internal/logging"
	"github.com/preston-bernstein/matrix-scoreboard/internal/metrics"
	"github.com/preston-bernstein/matrix-scoreboard/internal/poller"
	"github.com/preston-bernstein/matrix-scoreboard/internal/store"
)

// errEmptyDetail marks a detail view that has no game to show.
var errEmptyDetail = errors.New("detail view on empty list")

// StoreSource hands out the store for a sport.
type StoreSource interface {
	For(sport domaingames.Sport) *store.SnapshotStore
}

// Input is everything the machine observes in one step.
type Input struct {
	Reading clock.Reading
	Pressed []buttons.Button
	Link    connectivity.State
}

// Options tune the machine.
type Options struct {
	Cadences    poller.Cadences
	StartupView Kind
	// InlineRefresh runs refreshes to completion inside Step instead of in the background.
	InlineRefresh bool
}

type refreshDone struct {
	sport   domaingames.Sport
	session uint64
	res     store.Result
}

// Machine owns the navigation state. It is driven by a single goroutine through Step;
// only background refresh results cross goroutines, via a channel.
type Machine struct {
	stores    StoreSource
	renderer  display.Renderer
	cadences  poller.Cadences
	inline    bool
	scheduler *poller.Scheduler
	logger    *slog.Logger
	metrics   *metrics.Recorder

	state      State
	clockColor colors.RGB
	link       connectivity.State
	reading    clock.Reading

	pair     colors.Pair
	pairGame domaingames.Game
	hasPair  bool

	// A session spans the list and detail views of one sport; leaving to the menu ends it.
	session       uint64
	sessionCtx    context.Context
	sessionCancel context.CancelFunc

	inflight map[domaingames.Sport]bool
	results  chan refreshDone
	wg       sync.WaitGroup
}

// New constructs a machine positioned at the configured startup view.
func New(stores StoreSource, renderer display.Renderer, opts Options, logger *slog.Logger, recorder *metrics.Recorder) *Machine {
	if opts.StartupView != KindClock {
		opts.StartupView = KindMenu
	}
	return &Machine{
		stores:     stores,
		renderer:   renderer,
		cadences:   opts.Cadences,
		inline:     opts.InlineRefresh,
		scheduler:  poller.NewScheduler(),
		logger:     logger,
		metrics:    recorder,
		state:      State{Kind: opts.StartupView},
		clockColor: colors.Green,
		link:       connectivity.State{Connected: true},
		inflight:   make(map[domaingames.Sport]bool, len(domaingames.Sports)),
		results:    make(chan refreshDone, len(domaingames.Sports)),
	}
}

// State returns the current navigation state.
func (m *Machine) State() State {
	return m.state
}

// ClockColor returns the current clock theme color.
func (m *Machine) ClockColor() colors.RGB {
	return m.clockColor
}

// Pair returns the contrast pair of the game in the detail view.
func (m *Machine) Pair() colors.Pair {
	return m.pair
}

// Step applies finished refreshes, button edges and due ticks, then renders.
func (m *Machine) Step(ctx context.Context, in Input) {
	m.link = in.Link
	m.reading = in.Reading
	m.drainResults()

	for _, b := range in.Pressed {
		m.press(ctx, b)
	}
	m.tick(ctx, in.Reading.Second)
	m.render()
}

func (m *Machine) press(ctx context.Context, b buttons.Button) {
	s := m.state
	switch s.Kind {
	case KindMenu:
		n := len(domaingames.Sports)
		switch b {
		case buttons.Left:
			m.state.Selection = (s.Selection - 1 + n) % n
		case buttons.Right:
			m.state.Selection = (s.Selection + 1) % n
		case buttons.Select:
			m.enterList(ctx, domaingames.Sports[s.Selection], true)
		case buttons.Back:
			m.transition(State{Kind: KindClock, Selection: s.Selection})
		}
	case KindSportList:
		st := m.stores.For(s.Sport)
		switch b {
		case buttons.Left:
			st.Rotate(-1)
		case buttons.Right:
			st.Rotate(1)
		case buttons.Select:
			if st.Len() == 0 {
				return
			}
			m.transition(State{Kind: KindGameDetail, Selection: s.Selection, Sport: s.Sport, Index: st.Index()})
		case buttons.Back:
			st.Reset()
			m.enterMenu()
		}
	case KindGameDetail:
		if b == buttons.Back {
			m.stores.For(s.Sport).SetIndex(s.Index)
			m.enterList(ctx, s.Sport, false)
		}
	case KindClock:
		if b == buttons.Back || b == buttons.Select {
			m.clockColor = colors.NextClockColor(m.clockColor)
			m.enterMenu()
		}
	}
}

func (m *Machine) tick(ctx context.Context, second int) {
	var cadence poller.Cadence
	switch m.state.Kind {
	case KindSportList:
		cadence = m.cadences.List
	case KindGameDetail:
		cadence = m.cadences.DetailFor(m.state.Sport)
	default:
		return
	}
	if m.scheduler.IsDue(second, cadence) {
		m.requestRefresh(ctx, m.state.Sport)
	}
}

// transition moves to next and clears the tick guard.
func (m *Machine) transition(next State) {
	prev := m.state
	m.state = next
	m.scheduler.Reset()
	if next.Kind != KindGameDetail {
		m.hasPair = false
	}
	logging.Debug(m.logger, "view change", "from", prev.String(), "to", next.String())
}

func (m *Machine) enterMenu() {
	m.endSession()
	m.transition(State{Kind: KindMenu, Selection: m.state.Selection})
}

func (m *Machine) enterList(ctx context.Context, sport domaingames.Sport, newSession bool) {
	if newSession || m.sessionCtx == nil {
		m.startSession(ctx)
	}
	m.transition(State{Kind: KindSportList, Selection: m.state.Selection, Sport: sport})
	m.requestRefresh(ctx, sport)
}

func (m *Machine) startSession(ctx context.Context) {
	m.endSession()
	m.session++
	m.sessionCtx, m.sessionCancel = context.WithCancel(ctx)
}

func (m *Machine) endSession() {
	if m.sessionCancel != nil {
		m.sessionCancel()
	}
	m.sessionCtx, m.sessionCancel = nil, nil
}

// requestRefresh starts a refresh unless one is already running for sport.
func (m *Machine) requestRefresh(ctx context.Context, sport domaingames.Sport) {
	if m.inflight[sport] {
		logging.Debug(m.logger, "refresh already in flight", logging.FieldSport, sport)
		return
	}
	st := m.stores.For(sport)
	if st == nil {
		return
	}
	refreshCtx := m.sessionCtx
	if refreshCtx == nil {
		refreshCtx = ctx
	}
	connected := m.link.Connected
	session := m.session

	if m.inline {
		m.applyRefresh(refreshDone{sport: sport, session: session, res: st.Refresh(refreshCtx, connected)})
		return
	}
	m.inflight[sport] = true
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.results <- refreshDone{sport: sport, session: session, res: st.Refresh(refreshCtx, connected)}
	}()
}

func (m *Machine) drainResults() {
	for {
		select {
		case r := <-m.results:
			m.inflight[r.sport] = false
			m.applyRefresh(r)
		default:
			return
		}
	}
}

// applyRefresh reacts to a finished refresh; results for a sport that is no longer
// on screen are dropped.
func (m *Machine) applyRefresh(r refreshDone) {
	active := (m.state.Kind == KindSportList || m.state.Kind == KindGameDetail) && m.state.Sport == r.sport
	if !active || r.session != m.session || r.res.Outcome == store.OutcomeDiscarded {
		logging.Debug(m.logger, "refresh result discarded", logging.FieldSport, r.sport, logging.FieldOutcome, r.res.Outcome)
		if active {
			// The sport was re-entered while the old refresh ran; its entry refresh was skipped.
			m.requestRefresh(m.sessionCtx, r.sport)
		}
		return
	}
	if m.state.Kind == KindGameDetail {
		m.state.Index = m.stores.For(r.sport).Index()
	}
}

// WaitRefreshes blocks until background refreshes finish and applies their results.
func (m *Machine) WaitRefreshes() {
	m.wg.Wait()
	m.drainResults()
}

// Close ends the current session and waits for background refreshes.
func (m *Machine) Close() {
	m.endSession()
	m.wg.Wait()
}

func (m *Machine) indicators() display.Indicators {
	ind := display.Indicators{Offline: !m.link.Connected}
	if m.state.Kind == KindSportList || m.state.Kind == KindGameDetail {
		ind.Fetching = m.inflight[m.state.Sport]
		if st := m.stores.For(m.state.Sport); st != nil {
			ind.Stale = st.Stale()
		}
	}
	return ind
}

func (m *Machine) frame() (display.Frame, error) {
	ind := m.indicators()
	switch m.state.Kind {
	case KindSportList:
		return display.ListFrame(m.state.Sport, m.stores.For(m.state.Sport).Window(display.ListRows), ind), nil
	case KindGameDetail:
		g, ok := m.stores.For(m.state.Sport).Game(m.state.Index)
		if !ok {
			return display.Frame{}, errEmptyDetail
		}
		if !m.hasPair || !g.SameColors(m.pairGame) {
			m.pair = colors.Select(g.HomeColors.Primary, g.HomeColors.Alt, g.AwayColors.Primary, g.AwayColors.Alt)
			m.pairGame = g
			m.hasPair = true
		}
		return display.DetailFrame(g, m.pair, ind), nil
	case KindClock:
		return display.ClockFrame(m.reading, m.clockColor, ind), nil
	default:
		return display.MenuFrame(domaingames.Sports[m.state.Selection], ind), nil
	}
}

// render draws the current view; any failure is a logic defect that resets to the menu.
func (m *Machine) render() {
	f, err := m.frame()
	if err == nil {
		err = m.renderer.Render(f)
	}
	if err == nil {
		return
	}
	view := m.state.View()
	logging.Error(m.logger, "render failed, resetting to menu", err, logging.FieldView, string(view))
	m.metrics.RecordViewReset(string(view))
	if m.state.Kind == KindMenu {
		return
	}
	m.enterMenu()
	m.renderMenu()
}

// ResetToMenu abandons the current view after a fault and redraws the menu.
func (m *Machine) ResetToMenu(reason error) {
	view := m.state.View()
	logging.Error(m.logger, "display fault, resetting to menu", reason, logging.FieldView, string(view))
	m.metrics.RecordViewReset(string(view))
	if m.state.Selection < 0 || m.state.Selection >= len(domaingames.Sports) {
		m.state.Selection = 0
	}
	m.enterMenu()
	m.renderMenu()
}

func (m *Machine) renderMenu() {
	defer func() {
		if r := recover(); r != nil {
			logging.Error(m.logger, "menu render panicked", fmt.Errorf("%v", r))
		}
	}()
	f, err := m.frame()
	if err == nil {
		err = m.renderer.Render(f)
	}
	if err != nil {
		logging.Error(m.logger, "menu render failed", err)
	}
}
