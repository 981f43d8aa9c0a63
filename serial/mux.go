// File: serial/mux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mux funnels interrupt notifications from several ports into one lock-free
// MPMC queue so a single main loop can service all of them.

package serial

import (
	"sync/atomic"

	"github.com/momentics/hioload-collections/api"
	"github.com/momentics/hioload-collections/core/concurrency"
)

// EventKind tells the main loop what happened on a port.
type EventKind uint8

const (
	Received EventKind = iota
	Overrun
	TxDrained
)

func (k EventKind) String() string {
	switch k {
	case Received:
		return "received"
	case Overrun:
		return "overrun"
	case TxDrained:
		return "tx-drained"
	}
	return "unknown"
}

// Event is one interrupt notification.
type Event struct {
	Port int
	Kind EventKind
}

// Mux owns a set of ports and their shared event queue.
type Mux struct {
	events  *concurrency.MPMCQueue[Event]
	ports   []*Port
	dropped atomic.Uint64
}

// NewMux binds the event queue storage. Ports are added with Attach before
// any interrupt handler runs.
func NewMux(cells []concurrency.Cell[Event]) *Mux {
	return &Mux{events: concurrency.NewMPMCQueue(cells)}
}

// Attach creates a port for dev and assigns it the next ID.
func (m *Mux) Attach(dev Device, rxStorage, txStorage []byte) *Port {
	p := NewPort(dev, rxStorage, txStorage)
	p.id = len(m.ports)
	p.mux = m
	m.ports = append(m.ports, p)
	return p
}

// Port returns the port with the given ID, nil if unknown.
func (m *Mux) Port(id int) *Port {
	if id < 0 || id >= len(m.ports) {
		return nil
	}
	return m.ports[id]
}

// Ports returns the number of attached ports.
func (m *Mux) Ports() int { return len(m.ports) }

// Events exposes the shared queue as a channel for an EventLoop.
func (m *Mux) Events() api.Channel[Event] { return m.events }

// Next pops one pending event.
func (m *Mux) Next() (Event, bool) { return m.events.Dequeue() }

// Dropped returns how many notifications did not fit in the queue.
func (m *Mux) Dropped() uint64 { return m.dropped.Load() }

func (m *Mux) post(ev Event) {
	if !m.events.Enqueue(ev) {
		m.dropped.Add(1)
	}
}
