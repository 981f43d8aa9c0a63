package serial_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-collections/api"
	"github.com/momentics/hioload-collections/core/concurrency"
	"github.com/momentics/hioload-collections/fake"
	"github.com/momentics/hioload-collections/serial"
)

// drainTx plays the data-register-empty interrupt until the port disables it.
func drainTx(p *serial.Port, dev *fake.Device) {
	for dev.TxInterruptEnabled() {
		p.OnSendBufferEmpty()
	}
}

func TestPort_TransmitInOrder(t *testing.T) {
	dev := fake.NewDevice()
	p := serial.NewPort(dev, make([]byte, 16), make([]byte, 16))

	n, err := p.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	assert.True(t, dev.TxInterruptEnabled())

	drainTx(p, dev)
	assert.Equal(t, []byte("hello"), dev.Sent())
	assert.False(t, dev.TxInterruptEnabled())
	assert.Equal(t, uint64(5), p.Stats().Transmitted)
}

func TestPort_ShortWrite(t *testing.T) {
	dev := fake.NewDevice()
	p := serial.NewPort(dev, nil, make([]byte, 4))

	n, err := p.Write([]byte("abcdef"))
	assert.ErrorIs(t, err, api.ErrOverflow)
	assert.Equal(t, 4, n)

	n, err = p.Write(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPort_ReceiveAndOverrun(t *testing.T) {
	dev := fake.NewDevice()
	p := serial.NewPort(dev, make([]byte, 4), make([]byte, 4))

	buf := make([]byte, 8)
	_, err := p.Read(buf)
	assert.ErrorIs(t, err, api.ErrEmpty)

	dev.Inject([]byte("abcdef")...)
	for dev.PendingRx() > 0 {
		p.OnReceive()
	}
	st := p.Stats()
	assert.Equal(t, uint64(4), st.Received)
	assert.Equal(t, uint64(2), st.Overruns)
	assert.Equal(t, 4, p.Available())

	n, err := p.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(buf[:n]))
	assert.Equal(t, 0, p.Available())
}

func TestPort_InterruptContextEcho(t *testing.T) {
	dev := fake.NewDevice()
	p := serial.NewPort(dev, make([]byte, 64), make([]byte, 64))
	payload := []byte("the quick brown fox jumps over the lazy dog")
	dev.Inject(payload...)

	// receive interrupts fire on their own goroutine
	go func() {
		for dev.PendingRx() > 0 {
			p.OnReceive()
		}
	}()

	got := make([]byte, 0, len(payload))
	buf := make([]byte, 8)
	deadline := time.Now().Add(5 * time.Second)
	for len(got) < len(payload) {
		n, _ := p.Read(buf)
		got = append(got, buf[:n]...)
		if time.Now().After(deadline) {
			t.Fatalf("timeout: received %q", got)
		}
	}
	assert.Equal(t, payload, got)
	assert.Equal(t, uint64(0), p.Stats().Overruns)
}

func TestMux_CollectsEvents(t *testing.T) {
	m := serial.NewMux(make([]concurrency.Cell[serial.Event], 8))
	devA, devB := fake.NewDevice(), fake.NewDevice()
	a := m.Attach(devA, make([]byte, 1), make([]byte, 4))
	b := m.Attach(devB, make([]byte, 4), make([]byte, 4))
	require.Equal(t, 2, m.Ports())
	assert.Equal(t, 0, a.ID())
	assert.Equal(t, 1, b.ID())
	assert.Same(t, b, m.Port(1))
	assert.Nil(t, m.Port(2))

	devA.Inject('x', 'y')
	devB.Inject('z')
	a.OnReceive()
	a.OnReceive()
	b.OnReceive()
	b.OnSendBufferEmpty()

	var events []serial.Event
	for {
		ev, ok := m.Next()
		if !ok {
			break
		}
		events = append(events, ev)
	}
	assert.Equal(t, []serial.Event{
		{Port: 0, Kind: serial.Received},
		{Port: 0, Kind: serial.Overrun},
		{Port: 1, Kind: serial.Received},
		{Port: 1, Kind: serial.TxDrained},
	}, events)
	assert.Equal(t, uint64(0), m.Dropped())
	assert.Equal(t, "overrun", serial.Overrun.String())
}

func TestMux_DropsWhenQueueFull(t *testing.T) {
	m := serial.NewMux(make([]concurrency.Cell[serial.Event], 2))
	dev := fake.NewDevice()
	p := m.Attach(dev, make([]byte, 8), nil)
	dev.Inject('1', '2', '3')
	for dev.PendingRx() > 0 {
		p.OnReceive()
	}
	assert.Equal(t, uint64(1), m.Dropped())
	assert.Equal(t, 2, m.Events().Len())
}
