package engine

import (
	"github.com/lixenwraith/cookie-crunch/event"
	"github.com/lixenwraith/cookie-crunch/parameter"
	"github.com/lixenwraith/cookie-crunch/pool"
	"github.com/lixenwraith/cookie-crunch/service"
	"github.com/lixenwraith/cookie-crunch/status"
)

// Context wires the substrate every state and manager depends on
// Built once at startup and passed explicitly; nothing here is reached
// through package globals
type Context struct {
	Bus       *event.Bus
	Services  *service.Locator
	Pools     *pool.Registry
	Config    *parameter.Config
	Scheduler *Scheduler
	Machine   *Machine
	Status    *status.Registry
	Time      TimeProvider
}

// NewContext assembles a context around cfg with a monotonic clock
func NewContext(cfg *parameter.Config) *Context {
	ctx := &Context{
		Bus:       event.NewBus(),
		Services:  service.NewLocator(),
		Pools:     pool.NewRegistry(),
		Config:    cfg,
		Scheduler: NewScheduler(),
		Machine:   NewMachine(),
		Status:    status.NewRegistry(),
		Time:      NewMonotonicTimeProvider(),
	}
	ctx.Bus.SetPublishCounter(ctx.Status.Ints.Get("event.published"))
	return ctx
}
