//go:build !baremetal

// Package transports provides byte streams for the odrive client: a
// hardware serial port, a TinyGo UART, and a scriptable mock for tests.
package transports

import (
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

// SerialStream is a hardware serial port carrying the ASCII protocol.
type SerialStream struct {
	port     serial.Port
	portName string
}

// SerialConfig holds configuration for opening a serial port.
type SerialConfig struct {
	// Port is the serial port path (e.g., "/dev/ttyUSB0").
	Port string

	// BaudRate is the communication speed. Default is 115200, the rate
	// the ODrive ASCII interface runs at.
	BaudRate int

	// ReadTimeout is how long a single Read blocks before reporting
	// "no data" as (0, nil). Default is 10ms; keep it short, the client
	// layers its own one second line budget on top.
	ReadTimeout time.Duration
}

// OpenSerial opens a serial port with the given configuration.
func OpenSerial(cfg SerialConfig) (*SerialStream, error) {
	if cfg.Port == "" {
		return nil, errors.New("serial port path is required")
	}

	if cfg.BaudRate == 0 {
		cfg.BaudRate = 115200
	}

	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Millisecond
	}

	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}

	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to set read timeout: %w", err)
	}

	return &SerialStream{
		port:     port,
		portName: cfg.Port,
	}, nil
}

func (s *SerialStream) Read(p []byte) (int, error) {
	return s.port.Read(p)
}

func (s *SerialStream) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

// Flush waits until all buffered outgoing bytes have been transmitted.
func (s *SerialStream) Flush() error {
	return s.port.Drain()
}

func (s *SerialStream) Close() error {
	return s.port.Close()
}

// PortName returns the serial port name.
func (s *SerialStream) PortName() string {
	return s.portName
}
