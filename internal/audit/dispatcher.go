package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type Event struct {
	PhysicianID *uint
	Action      string
	Entity      string
	EntityID    *uint
	Metadata    any
}

// Dispatcher grava eventos numa goroutine própria. Auditoria nunca deve
// atrasar nem quebrar uma requisição.
type Dispatcher struct {
	logger *Logger
	log    zerolog.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch aceita um Dispatcher nil, o que simplifica os testes dos casos de uso.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// fila cheia → descartamos
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close para de aceitar eventos e espera a fila esvaziar.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

func Uint(v uint) *uint {
	return &v
}
