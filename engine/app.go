package engine

import (
	"context"
	"time"

	"github.com/averden/folio/config"
	"github.com/averden/folio/constants"
	"github.com/averden/folio/core"
	"github.com/averden/folio/document"
	"github.com/averden/folio/page"
	"github.com/averden/folio/theme"
	"github.com/averden/folio/ui"
)

// LoadState tracks the one-shot document load
type LoadState uint8

const (
	LoadIdle LoadState = iota
	LoadPending
	LoadReady
	LoadFailed
)

type loadResult struct {
	doc *document.Document
	err error
}

// App holds all portfolio state shared by input handling, the frame loop,
// and renderers. Everything here is main-loop exclusive except the load
// channel, which the loader goroutine feeds exactly once.
type App struct {
	// ===== Set once during NewApp =====

	Cfg   config.Config
	Th    *theme.Theme
	Clock Clock
	Tasks *Scheduler

	// ===== Main-loop exclusive =====

	Width, Height int
	Frame         int64

	// Document load, one-shot; failure is terminal, there is no retry
	Doc     *document.Document
	Load    LoadState
	LoadErr error

	Page   *page.Page
	Scroll *ui.ScrollState

	MouseOK   bool // terminal reported mouse support and config allows it
	MenuOpen  bool // narrow-mode nav menu expanded
	HeroShown bool // hero intro has started, never repeats

	// Hover is the page element under the pointer, updated on mouse motion
	Hover page.Hit

	loadCh chan loadResult
}

// NewApp creates app state with its scheduler on the given clock
func NewApp(cfg config.Config, th *theme.Theme, clock Clock) *App {
	return &App{
		Cfg:    cfg,
		Th:     th,
		Clock:  clock,
		Tasks:  NewScheduler(clock),
		Scroll: ui.NewScrollState(0, 0),
		loadCh: make(chan loadResult, 1),
	}
}

// BeginLoad fetches the document once on a crash-safe goroutine.
// Subsequent calls are no-ops.
func (a *App) BeginLoad(ctx context.Context) {
	if a.Load != LoadIdle {
		return
	}
	a.Load = LoadPending
	source := a.Cfg.Data
	core.Go(func() {
		doc, err := document.Load(ctx, source)
		a.loadCh <- loadResult{doc: doc, err: err}
	})
}

// PollLoad drains a finished load if one arrived. Returns true when the
// load state changed on this call, so the caller can start the page
// coordinators exactly once.
func (a *App) PollLoad() bool {
	if a.Load != LoadPending {
		return false
	}
	select {
	case res := <-a.loadCh:
		if res.err != nil {
			a.Load = LoadFailed
			a.LoadErr = res.err
			return true
		}
		a.Doc = res.doc
		a.Load = LoadReady
		a.BuildPage()
		return true
	default:
		return false
	}
}

// BuildPage lays the document out at the current width. Runs once when
// the load finishes and again on every resize; scroll reclamps so the
// viewport stays inside the page.
func (a *App) BuildPage() {
	if a.Doc == nil {
		return
	}
	a.Page = page.Build(a.Doc, a.Th, a.Width)
	a.Scroll.SetTotal(a.Page.Total)
	a.Scroll.SetVisible(a.ViewHeight())
}

// HandleResize records new terminal dimensions and reflows the page
func (a *App) HandleResize(w, h int) {
	a.Width = w
	a.Height = h
	a.BuildPage()
	a.Scroll.SetVisible(a.ViewHeight())
	if w >= constants.NarrowBreakpoint {
		a.MenuOpen = false
	}
}

// ViewHeight is the content viewport height below the sticky navbar
func (a *App) ViewHeight() int {
	h := a.Height - constants.NavbarHeight
	if h < 0 {
		h = 0
	}
	return h
}

// TickFrame advances the frame counter and fires due tasks
func (a *App) TickFrame(now time.Time) {
	a.Frame++
	a.Tasks.Update(now)
}

// JumpTo scrolls the named section to the top of the viewport.
// Unknown targets are ignored.
func (a *App) JumpTo(sectionID string) bool {
	if a.Page == nil {
		return false
	}
	s := a.Page.Section(sectionID)
	if s == nil {
		return false
	}
	a.Scroll.ScrollTo(s.Top - 1)
	return true
}

// ActiveSectionID reports which section owns the top of the viewport,
// for navbar highlighting. Empty before the page is built.
func (a *App) ActiveSectionID() string {
	if a.Page == nil {
		return ""
	}
	s := a.Page.SectionAt(a.Scroll.Offset + 1)
	if s == nil {
		return ""
	}
	return s.ID
}
