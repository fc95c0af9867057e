package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/log"
)

// PanicEvent carries a recovered panic out of the goroutine
type PanicEvent struct {
	Name  string
	Panic interface{}
	Stack []byte
}

type options struct {
	onStart   func()
	onEnd     func()
	onRecover func(*PanicEvent)
}

type Option func(*options)

// WithStart runs f inside the goroutine before the task
func WithStart(f func()) Option {
	return func(o *options) { o.onStart = f }
}

// WithEnd runs f after the task, panicked or not
func WithEnd(f func()) Option {
	return func(o *options) { o.onEnd = f }
}

// WithRecover runs f with the recovered panic, after WithEnd
func WithRecover(f func(*PanicEvent)) Option {
	return func(o *options) { o.onRecover = f }
}

// RecoverableGo runs f on a new goroutine named name. The returned channel
// receives the panic if f panicked and is closed once the goroutine is done.
func RecoverableGo(c ctx.Ctx, name string, f func(), opts ...Option) <-chan *PanicEvent {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}

	done := make(chan *PanicEvent, 1)
	go func() {
		defer close(done)
		defer func() {
			if o.onEnd != nil {
				o.onEnd()
			}
			p := recover()
			if p == nil {
				return
			}
			ev := &PanicEvent{Name: name, Panic: p, Stack: debug.Stack()}
			c.WithFields(log.Fields{
				"goroutine": name,
				"err":       p,
				"stack":     string(ev.Stack),
			}).Error("panic")
			if o.onRecover != nil {
				o.onRecover(ev)
			}
			done <- ev
		}()

		if o.onStart != nil {
			o.onStart()
		}
		f()
	}()
	return done
}
