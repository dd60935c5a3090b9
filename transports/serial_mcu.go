//go:build baremetal

package transports

import (
	"errors"
	"fmt"
	"machine"
	"time"
)

// SerialStream is a UART carrying the ASCII protocol on TinyGo targets.
type SerialStream struct {
	uart     *machine.UART
	portName string
}

// SerialConfig holds configuration for opening a UART.
type SerialConfig struct {
	Port        string
	BaudRate    int
	ReadTimeout time.Duration
}

// OpenSerial gets a UART with the given configuration.
func OpenSerial(cfg SerialConfig) (*SerialStream, error) {
	if cfg.Port == "" {
		return nil, errors.New("serial port path is required")
	}

	if cfg.BaudRate == 0 {
		cfg.BaudRate = 115200
	}

	var uart *machine.UART
	switch cfg.Port {
	case "0":
		uart = machine.UART0
	case "1":
		uart = machine.UART1
	default:
		return nil, fmt.Errorf("unknown UART %s", cfg.Port)
	}

	uart.SetBaudRate(uint32(cfg.BaudRate))

	return &SerialStream{uart: uart, portName: cfg.Port}, nil
}

func (s *SerialStream) Read(p []byte) (int, error) {
	return s.uart.Read(p)
}

func (s *SerialStream) Write(p []byte) (int, error) {
	return s.uart.Write(p)
}

// Flush is a no-op; the UART transmits unbuffered.
func (s *SerialStream) Flush() error {
	return nil
}

func (s *SerialStream) Close() error {
	return nil
}

// PortName returns the UART name.
func (s *SerialStream) PortName() string {
	return s.portName
}
