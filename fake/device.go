// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake UART device for tests and the simulator. Incoming bytes are scripted
// with Inject; transmitted bytes are captured for inspection.

package fake

import (
	"sync"

	"github.com/momentics/hioload-collections/serial"
)

var _ serial.Device = (*Device)(nil)

// Device is a fake implementation of serial.Device.
type Device struct {
	mu        sync.Mutex
	incoming  []byte
	sent      []byte
	txEnabled bool
	toggles   int
}

// NewDevice creates an idle device.
func NewDevice() *Device {
	return &Device{}
}

// Inject queues bytes that subsequent ReceiveData calls will return.
func (d *Device) Inject(b ...byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.incoming = append(d.incoming, b...)
}

// PendingRx returns how many injected bytes have not been received yet.
func (d *Device) PendingRx() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.incoming)
}

// ReceiveData returns the next injected byte, 0 when none is queued.
func (d *Device) ReceiveData() byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.incoming) == 0 {
		return 0
	}
	b := d.incoming[0]
	d.incoming = d.incoming[1:]
	return b
}

// TransmitData records b as sent.
func (d *Device) TransmitData(b byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, b)
}

// SetTxInterrupt records the transmit interrupt state.
func (d *Device) SetTxInterrupt(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.txEnabled != enabled {
		d.toggles++
	}
	d.txEnabled = enabled
}

// TxInterruptEnabled reports whether the port asked for transmit interrupts.
func (d *Device) TxInterruptEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.txEnabled
}

// Toggles returns how many times the transmit interrupt changed state.
func (d *Device) Toggles() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.toggles
}

// Sent returns a copy of all transmitted bytes.
func (d *Device) Sent() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]byte, len(d.sent))
	copy(out, d.sent)
	return out
}
