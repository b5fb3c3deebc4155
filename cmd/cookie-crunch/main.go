package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cookie-crunch/audio"
	"github.com/lixenwraith/cookie-crunch/core"
	"github.com/lixenwraith/cookie-crunch/engine"
	"github.com/lixenwraith/cookie-crunch/game"
	"github.com/lixenwraith/cookie-crunch/parameter"
	"github.com/lixenwraith/cookie-crunch/pool"
	"github.com/lixenwraith/cookie-crunch/service"
	"github.com/lixenwraith/cookie-crunch/states"
	"github.com/lixenwraith/cookie-crunch/terminal"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment and defaults")
	}

	cfg, err := parameter.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before dumping a panic, otherwise the trace
	// is unreadable
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\nCRASH DETECTED: %v\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	})

	ctx := engine.NewContext(cfg)

	policy := pool.PolicyBounded
	if cfg.CookiePoolGrow {
		policy = pool.PolicyGrow
	}
	if _, err := pool.Create(ctx.Pools, parameter.CookiePoolName, game.NewCookieFactory(),
		cfg.CookiePoolSize, policy, func(c *game.Cookie) { c.ResetState() }); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create cookie pool: %v\n", err)
		os.Exit(1)
	}

	view := terminal.NewView(ctx, screen)
	hub := service.NewHub()
	hub.Register(audio.NewFeedback(ctx))
	hub.Register(view)

	if err := hub.StartAll(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Service startup failed: %v\n", err)
		os.Exit(1)
	}

	ctx.Machine.Start(ctx, states.NewMainMenu())

	err = run(ctx, screen, view)

	hub.StopAll()
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}

// run drives the fixed-tick loop until a key handler requests exit
func run(ctx *engine.Context, screen tcell.Screen, view *terminal.View) error {
	loopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 64)
	g, gctx := errgroup.WithContext(loopCtx)

	// Poller blocks inside tcell; Fini unblocks it with a nil event
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return
			}
		}
	})

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()

		ticker := time.NewTicker(ctx.Config.TickInterval)
		defer ticker.Stop()

		ticks := ctx.Status.Ints.Get("engine.ticks")
		last := ctx.Time.Now()

		for {
			select {
			case <-gctx.Done():
				return gctx.Err()

			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if view.HandleKey(ev) {
						cancel()
						return nil
					}
				case *tcell.EventResize:
					screen.Sync()
				}

			case <-ticker.C:
				now := ctx.Time.Now()
				dt := now.Sub(last)
				last = now

				ctx.Scheduler.Advance(dt)
				ctx.Machine.Tick(ctx, dt)
				view.Render()
				ticks.Add(1)
			}
		}
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
