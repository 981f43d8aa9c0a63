// File: serial/device.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package serial models a UART driven from interrupt context. The hardware
// itself is out of scope and reached only through Device; the port keeps one
// lock-free ring per direction so that interrupt handlers and the main loop
// never touch the same index.

package serial

// Device is the register-level collaborator of a Port.
// ReceiveData and TransmitData are only called from interrupt context.
type Device interface {
	// ReceiveData reads the byte that raised the receive interrupt.
	ReceiveData() byte
	// TransmitData loads one byte into the transmit register.
	TransmitData(b byte)
	// SetTxInterrupt enables or disables the data-register-empty interrupt.
	SetTxInterrupt(enabled bool)
}
