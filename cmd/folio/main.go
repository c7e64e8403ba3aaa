package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	_ "github.com/joho/godotenv/autoload"

	"github.com/averden/folio/audio"
	"github.com/averden/folio/config"
	"github.com/averden/folio/core"
	"github.com/averden/folio/engine"
	"github.com/averden/folio/input"
	"github.com/averden/folio/render"
	"github.com/averden/folio/render/renderers"
	"github.com/averden/folio/systems"
	"github.com/averden/folio/term"
	"github.com/averden/folio/theme"
	"github.com/averden/folio/ui"
)

var (
	dataFlag  = flag.String("data", "", "portfolio document: file path or http(s) URL")
	fpsFlag   = flag.Int("fps", 0, "render frame rate, 1-120")
	mouseFlag = flag.Bool("mouse", true, "enable mouse tracking")
	soundFlag = flag.Bool("sound", false, "enable UI chimes")
	debugFlag = flag.Bool("debug", false, "write logs under logs/")
)

func main() {
	// Panic recovery: restore the terminal before the report prints
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment, but only when actually set
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data = *dataFlag
		case "fps":
			cfg.FPS = *fpsFlag
		case "mouse":
			cfg.Mouse = *mouseFlag
		case "sound":
			cfg.Sound = *soundFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
	if cfg.FPS < 1 {
		cfg.FPS = 1
	}
	if cfg.FPS > 120 {
		cfg.FPS = 120
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	th := &theme.Default

	screen, err := term.New(th, cfg.Mouse)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	run(screen, cfg, th)
}

func run(screen *term.Screen, cfg *config.Config, th *theme.Theme) {
	app := engine.NewApp(*cfg, th, engine.SystemClock{})
	// Stop every scheduled task before the terminal restores
	defer app.Tasks.Dispose()
	app.HandleResize(screen.Size())
	app.MouseOK = screen.MouseEnabled()

	sound := audio.NewEngine(cfg.Sound)
	if err := sound.Start(); err != nil {
		log.Printf("audio start failed: %v", err)
	}
	defer sound.Stop()
	if cfg.Sound && sound.Silent() {
		log.Printf("no audio device, chimes disabled")
	}

	notify := systems.NewNotifier()
	notifyFn := func(sev ui.ToastSeverity, text string) {
		notify.Push(sev, text)
		switch sev {
		case ui.ToastSuccess:
			sound.Success()
		case ui.ToastWarning:
			sound.Warn()
		case ui.ToastError:
			sound.Error()
		default:
			sound.Notify()
		}
	}

	form := systems.NewForm(app.Tasks, notifyFn)
	follower := systems.NewFollower(app.MouseOK)
	reveal := systems.NewRevealer()
	bars := systems.NewSkillBars(app.Clock)
	// Roles arrive with the document; the cycler exists from the start so
	// the renderer table below never holds a nil
	cycler := systems.NewRoleCycler(app.Clock, nil)
	cycler.OnComplete(sound.Click)

	// Frame-driven coordinators ride the scheduler, so teardown is one
	// Dispose. Without a mouse the follower never gets a task at all.
	if app.MouseOK {
		app.Tasks.EachFrame(func(time.Time) { follower.Update() }).Start()
	}
	app.Tasks.EachFrame(func(time.Time) { notify.Tick() }).Start()

	fill := tcell.StyleDefault.Foreground(th.Fg).Background(th.Bg)
	orchestrator := render.NewOrchestrator(app.Width, app.Height, fill)

	// Standardized initialization loop
	type rendererDef struct {
		factory  func() render.Renderer
		priority render.Priority
	}

	rendererList := []rendererDef{
		{func() render.Renderer { return renderers.NewContentRenderer(app, reveal) }, render.PriorityContent},
		{func() render.Renderer { return renderers.NewRoleRenderer(app, cycler, reveal) }, render.PriorityRole},
		{func() render.Renderer { return renderers.NewBarsRenderer(app, bars) }, render.PriorityBars},
		{func() render.Renderer { return renderers.NewFormRenderer(app, form) }, render.PriorityForm},
		{func() render.Renderer { return renderers.NewScrollbarRenderer(app) }, render.PriorityScrollbar},
		{func() render.Renderer { return renderers.NewNavbarRenderer(app) }, render.PriorityNavbar},
		{func() render.Renderer { return renderers.NewMenuRenderer(app) }, render.PriorityMenu},
		{func() render.Renderer { return renderers.NewStatusRenderer(app) }, render.PriorityStatus},
		{func() render.Renderer { return renderers.NewToastsRenderer(app, notify) }, render.PriorityToasts},
		{func() render.Renderer { return renderers.NewFollowerRenderer(app, follower) }, render.PriorityFollower},
		{func() render.Renderer { return renderers.NewDebugRenderer(app) }, render.PriorityDebug},
	}

	for _, def := range rendererList {
		orchestrator.Register(def.factory(), def.priority)
	}

	handler := input.NewHandler(app, form, notify, follower)

	app.BeginLoad(context.Background())

	frameTicker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer frameTicker.Stop()

	events := screen.Pump(256)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !handler.HandleEvent(ev) {
				return
			}
			if _, isResize := ev.(*tcell.EventResize); isResize {
				orchestrator.Resize(app.Width, app.Height)
				screen.Sync()
				// The reflow rebuilt every section; rebind the bar anchors
				if app.Page != nil {
					bars.Bind(app.Page.Section("skills"))
				}
			}

		case <-frameTicker.C:
			now := app.Clock.Now()

			if app.PollLoad() {
				if app.Load == engine.LoadReady {
					startIntro(app, cycler, reveal, bars)
				} else {
					log.Printf("document load failed: %v", app.LoadErr)
				}
			}

			app.TickFrame(now)

			f := render.Frame{
				Now:    now,
				Count:  app.Frame,
				Width:  app.Width,
				Height: app.Height,
				Scroll: app.Scroll.Offset,
				ViewH:  app.ViewHeight(),
			}
			orchestrator.RenderFrame(f).Flush(screen)
			screen.Show()
		}
	}
}

// startIntro begins the page coordinators exactly once, on the frame the
// document load lands. Coordinators that depend on built sections only get
// their tasks here, after the page exists.
func startIntro(app *engine.App, cycler *systems.RoleCycler, reveal *systems.Revealer, bars *systems.SkillBars) {
	if app.HeroShown {
		return
	}
	app.HeroShown = true

	// An empty role list schedules nothing
	if app.Doc.Hero != nil && len(app.Doc.Hero.Roles) > 0 {
		cycler.SetRoles(app.Doc.Hero.Roles)
		cycler.Start()
		app.Tasks.EachFrame(cycler.Update).Start()
	}

	reveal.Start()
	if app.Page != nil {
		bars.Bind(app.Page.Section("skills"))
	}
	app.Tasks.EachFrame(func(now time.Time) {
		fired := reveal.Observe(app.Page, app.Scroll.Offset, app.ViewHeight(), app.Frame)
		for _, id := range fired {
			if id == "skills" {
				bars.OnReveal(now)
			}
		}
	}).Start()
}
