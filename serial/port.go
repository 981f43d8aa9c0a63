// File: serial/port.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package serial

import (
	"sync/atomic"

	"github.com/momentics/hioload-collections/api"
	"github.com/momentics/hioload-collections/core/concurrency"
)

// Stats is a snapshot of port counters.
type Stats struct {
	Received    uint64
	Transmitted uint64
	Overruns    uint64
	RxPending   int
	TxPending   int
}

// Port couples a Device with a receive and a transmit ring.
//
// OnReceive and OnSendBufferEmpty are the interrupt handlers and are the only
// producer of rx and the only consumer of tx. Read and Write belong to the
// main context. Each ring therefore has exactly one producer and one consumer.
type Port struct {
	id  int
	dev Device
	rx  *concurrency.SPSCRing[byte]
	tx  *concurrency.SPSCRing[byte]
	mux *Mux

	received    atomic.Uint64
	transmitted atomic.Uint64
	overruns    atomic.Uint64
}

// NewPort binds dev to caller-supplied ring storage. Both slices are rounded
// down to a power of two.
func NewPort(dev Device, rxStorage, txStorage []byte) *Port {
	return &Port{
		dev: dev,
		rx:  concurrency.NewSPSCRing(rxStorage),
		tx:  concurrency.NewSPSCRing(txStorage),
	}
}

// ID returns the index assigned by a Mux, 0 for standalone ports.
func (p *Port) ID() int { return p.id }

// OnReceive is the receive-complete interrupt handler. A byte that does not
// fit in the rx ring is dropped and counted as an overrun.
func (p *Port) OnReceive() {
	b := p.dev.ReceiveData()
	if !p.rx.Enqueue(b) {
		p.overruns.Add(1)
		p.notify(Overrun)
		return
	}
	p.received.Add(1)
	p.notify(Received)
}

// OnSendBufferEmpty is the data-register-empty interrupt handler. It moves
// one byte from the tx ring to the device, or disables itself once the ring
// is drained.
func (p *Port) OnSendBufferEmpty() {
	b, ok := p.tx.Dequeue()
	if !ok {
		p.dev.SetTxInterrupt(false)
		// Write may have queued data between the failed dequeue and the disable.
		if p.tx.Len() > 0 {
			p.dev.SetTxInterrupt(true)
		}
		p.notify(TxDrained)
		return
	}
	p.dev.TransmitData(b)
	p.transmitted.Add(1)
}

// Write queues as many bytes of data as fit and enables the transmit
// interrupt. A short write returns api.ErrOverflow.
func (p *Port) Write(data []byte) (int, error) {
	n := 0
	for _, b := range data {
		if !p.tx.Enqueue(b) {
			break
		}
		n++
	}
	if n > 0 {
		p.dev.SetTxInterrupt(true)
	}
	if n < len(data) {
		return n, api.ErrOverflow
	}
	return n, nil
}

// Read drains up to len(buf) received bytes without blocking. It returns
// api.ErrEmpty when nothing was available.
func (p *Port) Read(buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		b, ok := p.rx.Dequeue()
		if !ok {
			break
		}
		buf[n] = b
		n++
	}
	if n == 0 && len(buf) > 0 {
		return 0, api.ErrEmpty
	}
	return n, nil
}

// Available returns the number of received bytes waiting to be read.
func (p *Port) Available() int { return p.rx.Len() }

// RxRing exposes the receive ring, e.g. for metrics registration.
func (p *Port) RxRing() api.Sized { return p.rx }

// TxRing exposes the transmit ring.
func (p *Port) TxRing() api.Sized { return p.tx }

// Stats returns current counters.
func (p *Port) Stats() Stats {
	return Stats{
		Received:    p.received.Load(),
		Transmitted: p.transmitted.Load(),
		Overruns:    p.overruns.Load(),
		RxPending:   p.rx.Len(),
		TxPending:   p.tx.Len(),
	}
}

func (p *Port) notify(kind EventKind) {
	if p.mux != nil {
		p.mux.post(Event{Port: p.id, Kind: kind})
	}
}
