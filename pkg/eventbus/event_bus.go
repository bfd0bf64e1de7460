package eventbus

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	gerrors "github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

// EventBus dispatches events synchronously to every handler whose
// parameter list matches the published arguments.
type EventBus interface {
	Publish(args ...any)
	PublishE(args ...any) error
	Subscribe(handler any)
	Unsubscribe(handler any)
	Clear()
	SubscribersCount() int
}

var (
	ErrNoSubscribers        = gerrors.New("eventbus: no matching subscribers")
	ErrInvalidHandlerReturn = gerrors.New("eventbus: invalid handler return signature")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

type subscriber struct {
	handler reflect.Value
}

type publisher struct {
	mu          sync.RWMutex
	log         logrus.FieldLogger
	subscribers []subscriber
}

func NewEventPublisher(log logrus.FieldLogger) EventBus {
	return &publisher{log: log}
}

// MatchSignature reports whether handler can be called with args.
func MatchSignature(handler any, args []any) bool {
	t := reflect.TypeOf(handler)
	if t == nil || t.Kind() != reflect.Func || t.IsVariadic() {
		return false
	}
	if t.NumIn() != len(args) {
		return false
	}
	for i, arg := range args {
		param := t.In(i)
		if arg == nil {
			switch param.Kind() {
			case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map:
				continue
			default:
				return false
			}
		}
		if !reflect.TypeOf(arg).AssignableTo(param) {
			return false
		}
	}
	return true
}

func (p *publisher) matching(args []any) []reflect.Value {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]reflect.Value, 0, len(p.subscribers))
	for _, s := range p.subscribers {
		if MatchSignature(s.handler.Interface(), args) {
			out = append(out, s.handler)
		}
	}
	return out
}

func callArgs(fn reflect.Value, args []any) []reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(fn.Type().In(i))
			continue
		}
		in[i] = reflect.ValueOf(arg)
	}
	return in
}

// Publish calls matching handlers and logs handler panics instead of propagating them.
func (p *publisher) Publish(args ...any) {
	handlers := p.matching(args)
	if len(handlers) == 0 {
		if p.log != nil {
			p.log.WithField("args", fmt.Sprintf("%T", args)).Debug("eventbus.Publish: no matching subscribers")
		}
		return
	}
	for _, fn := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil && p.log != nil {
					p.log.WithFields(logrus.Fields{
						"handler": fn.Type().String(),
						"panic":   fmt.Sprint(r),
					}).Error("eventbus: handler panicked")
				}
			}()
			fn.Call(callArgs(fn, args))
		}()
	}
}

// PublishE is like Publish but joins handler errors and panics into the returned error.
// Handlers must return nothing or a single error.
func (p *publisher) PublishE(args ...any) error {
	handlers := p.matching(args)
	if len(handlers) == 0 {
		return ErrNoSubscribers
	}
	var errs []error
	for _, fn := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					errs = append(errs, gerrors.Errorf("eventbus: handler %s panicked: %v", fn.Type(), r))
				}
			}()
			out := fn.Call(callArgs(fn, args))
			switch {
			case len(out) == 0:
			case len(out) == 1 && out[0].Type() == errorType:
				if !out[0].IsNil() {
					errs = append(errs, out[0].Interface().(error))
				}
			default:
				errs = append(errs, gerrors.Wrapf(ErrInvalidHandlerReturn, "handler %s", fn.Type()))
			}
		}()
	}
	return errors.Join(errs...)
}

func (p *publisher) Subscribe(handler any) {
	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Func {
		panic("eventbus: handler must be a function")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, subscriber{handler: v})
}

// Unsubscribe removes the first subscription of handler. Functions are
// compared by code pointer, so closures sharing a literal are indistinguishable.
func (p *publisher) Unsubscribe(handler any) {
	ptr := reflect.ValueOf(handler).Pointer()
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, s := range p.subscribers {
		if s.handler.Pointer() == ptr {
			p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
			return
		}
	}
}

func (p *publisher) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = nil
}

func (p *publisher) SubscribersCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subscribers)
}
