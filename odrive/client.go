// Package odrive speaks the ODrive ASCII protocol over a byte stream,
// typically a serial link to the controller.
//
// The client is synchronous and single-threaded: one command is in flight
// at a time, and composite operations (write then read) assume no other
// caller interleaves a command in between. Wrap the client in your own
// mutex if you need to share it across goroutines.
package odrive

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Flusher is implemented by streams that buffer outgoing bytes. When the
// supplied stream implements it, every command writer flushes after writing
// so the command is on the wire before the writer returns.
type Flusher interface {
	Flush() error
}

// Client manages a connection with an ODrive motor controller.
//
// The stream is owned by the client for its lifetime; Close releases it if
// the stream implements io.Closer. Construction takes no other
// configuration: baud rate and framing are the stream's concern.
//
// Numeric responses use a zero-fallback policy: a reply that does not parse
// as a number reads as 0, so callers cannot distinguish "device reported
// zero" from "reply was unparseable". Outgoing floats are rendered with
// Go's shortest round-trip formatting (%v).
type Client struct {
	r io.Reader // nil for write-only streams
	w io.Writer // nil for read-only streams
	f Flusher
	c io.Closer

	// Timing seams, overridden in tests.
	readTimeout    time.Duration
	pollInterval   time.Duration
	pollIterations int
	now            func() time.Time
	sleep          func(time.Duration)
}

// NewClient returns a client over a bidirectional stream.
func NewClient(stream io.ReadWriter) *Client {
	return newClient(stream, stream)
}

// NewReadClient returns a client over a read-only stream. Command writers
// and composite operations return ErrNotWritable.
func NewReadClient(stream io.Reader) *Client {
	return newClient(stream, nil)
}

// NewWriteClient returns a client over a write-only stream. Response
// readers and composite operations return ErrNotReadable.
func NewWriteClient(stream io.Writer) *Client {
	return newClient(nil, stream)
}

func newClient(r io.Reader, w io.Writer) *Client {
	c := &Client{
		r:              r,
		w:              w,
		readTimeout:    ReadTimeout,
		pollInterval:   PollInterval,
		pollIterations: PollIterations,
		now:            time.Now,
		sleep:          time.Sleep,
	}
	if f, ok := w.(Flusher); ok {
		c.f = f
	}
	if cl, ok := r.(io.Closer); ok {
		c.c = cl
	} else if cl, ok := w.(io.Closer); ok {
		c.c = cl
	}
	return c
}

// Read reads raw bytes from the stream. It is an escape hatch for protocol
// operations the client does not model; mixing it with the line-oriented
// readers within one exchange can leave a partially consumed line behind.
func (c *Client) Read(p []byte) (int, error) {
	if c.r == nil {
		return 0, ErrNotReadable
	}
	return c.r.Read(p)
}

// Write writes raw bytes to the stream. Like Read, it is an escape hatch;
// it does not append a newline or flush.
func (c *Client) Write(p []byte) (int, error) {
	if c.w == nil {
		return 0, ErrNotWritable
	}
	return c.w.Write(p)
}

// Flush pushes buffered outgoing bytes to the device, if the stream
// buffers at all.
func (c *Client) Flush() error {
	if c.w == nil {
		return ErrNotWritable
	}
	if c.f == nil {
		return nil
	}
	return c.f.Flush()
}

// Close releases the underlying stream, if it implements io.Closer.
func (c *Client) Close() error {
	if c.c == nil {
		return nil
	}
	return c.c.Close()
}

// ReadString reads the next reply line from the device.
//
// Bytes are accumulated until a newline arrives. If the stream stays idle
// for ReadTimeout, whatever has accumulated so far is returned as-is,
// possibly empty; a timed-out read is not an error. The result is trimmed
// of surrounding whitespace. Stream errors other than "no data yet"
// propagate.
func (c *Client) ReadString() (string, error) {
	if c.r == nil {
		return "", ErrNotReadable
	}

	var line []byte
	buf := make([]byte, 1)
	start := c.now()
	for {
		n, err := c.r.Read(buf)
		if n == 0 {
			// Serial streams report an idle line as (0, nil); an EOF
			// means the same thing on a scripted stream.
			if err != nil && err != io.EOF {
				return "", err
			}
			if c.now().Sub(start) >= c.readTimeout {
				return strings.TrimSpace(string(line)), nil
			}
			continue
		}
		if buf[0] == '\n' {
			return strings.TrimSpace(string(line)), nil
		}
		line = append(line, buf[0])
	}
}

// ReadFloat reads the next reply line as a float32. Replies that do not
// parse, including the empty timed-out reply, read as 0.
func (c *Client) ReadFloat() (float32, error) {
	s, err := c.ReadString()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, nil
	}
	return float32(v), nil
}

// ReadInt reads the next reply line as an int32. Replies that do not
// parse, including the empty timed-out reply, read as 0.
func (c *Client) ReadInt() (int32, error) {
	s, err := c.ReadString()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, nil
	}
	return int32(v), nil
}

// writeLine formats one command line, writes it and flushes. A flush
// failure counts as the command not having been delivered.
func (c *Client) writeLine(format string, args ...any) error {
	if c.w == nil {
		return ErrNotWritable
	}
	if _, err := fmt.Fprintf(c.w, format+"\n", args...); err != nil {
		return err
	}
	return c.Flush()
}

// SetPositionFF streams a position setpoint with feed-forward terms. Use
// this when a real-time controller is streaming setpoints along a
// trajectory. Position is in encoder counts, velocity feed-forward in
// counts per second, current feed-forward in amps.
func (c *Client) SetPositionFF(axis Axis, position, velocityFF, currentFF float32) error {
	return c.writeLine("p %d %v %v %v", axis, position, velocityFF, currentFF)
}

// SetPositionLimits commands a position setpoint with velocity and current
// limits. Use this when sending one setpoint at a time.
func (c *Client) SetPositionLimits(axis Axis, position, velocityLimit, currentLimit float32) error {
	return c.writeLine("q %d %v %v %v", axis, position, velocityLimit, currentLimit)
}

// SetPosition commands a position setpoint with zero limits.
func (c *Client) SetPosition(axis Axis, position float32) error {
	return c.SetPositionLimits(axis, position, 0, 0)
}

// SetVelocityFF commands a velocity setpoint in encoder counts per second
// with a current feed-forward term in amps.
func (c *Client) SetVelocityFF(axis Axis, velocity, currentFF float32) error {
	return c.writeLine("v %d %v %v", axis, velocity, currentFF)
}

// SetVelocity commands a velocity setpoint with zero feed-forward.
func (c *Client) SetVelocity(axis Axis, velocity float32) error {
	return c.SetVelocityFF(axis, velocity, 0)
}

// SetCurrent commands a current setpoint in amps.
func (c *Client) SetCurrent(axis Axis, current float32) error {
	return c.writeLine("c %d %v", axis, current)
}

// SetTrajectory moves the motor to a position using the trajectory
// planner. For general movement this is the best command.
func (c *Client) SetTrajectory(axis Axis, position float32) error {
	return c.writeLine("t %d %v", axis, position)
}

// SetRequestedState asks the axis state machine to enter the given state.
// It does not wait for the transition; see RunState.
func (c *Client) SetRequestedState(axis Axis, state AxisState) error {
	return c.writeLine("w axis%d.requested_state %d", axis, state)
}

// RequestProperty writes a read request for a dotted property path on the
// axis, e.g. "encoder.vel_estimate". The reply must be collected with one
// of the response readers.
func (c *Client) RequestProperty(axis Axis, path string) error {
	return c.writeLine("r axis%d.%s", axis, path)
}

// SetProperty writes a value to a dotted property path on the axis. The
// value is rendered with %v.
func (c *Client) SetProperty(axis Axis, path string, value any) error {
	return c.writeLine("w axis%d.%s %v", axis, path, value)
}

// GetProperty requests a property and returns the reply line.
func (c *Client) GetProperty(axis Axis, path string) (string, error) {
	if c.r == nil {
		return "", ErrNotReadable
	}
	if err := c.RequestProperty(axis, path); err != nil {
		return "", err
	}
	return c.ReadString()
}

// GetPropertyFloat requests a property and parses the reply as a float32,
// with the usual zero fallback.
func (c *Client) GetPropertyFloat(axis Axis, path string) (float32, error) {
	if c.r == nil {
		return 0, ErrNotReadable
	}
	if err := c.RequestProperty(axis, path); err != nil {
		return 0, err
	}
	return c.ReadFloat()
}

// GetPropertyInt requests a property and parses the reply as an int32,
// with the usual zero fallback.
func (c *Client) GetPropertyInt(axis Axis, path string) (int32, error) {
	if c.r == nil {
		return 0, ErrNotReadable
	}
	if err := c.RequestProperty(axis, path); err != nil {
		return 0, err
	}
	return c.ReadInt()
}

// GetVelocity reads the encoder velocity estimate for the axis, in
// encoder counts per second.
func (c *Client) GetVelocity(axis Axis) (float32, error) {
	return c.GetPropertyFloat(axis, "encoder.vel_estimate")
}

// RunState requests an axis state and optionally waits for the transition
// to finish.
//
// With wait false it returns true right after the request is written. With
// wait true it polls current_state every PollInterval until the axis
// settles back to AxisStateIdle, giving up after PollIterations polls
// (about ten seconds). The return value reports whether idle was observed
// in time; running out of budget is a soft timeout, not an error. The
// device walks through intermediate states (calibration and so on) before
// settling, so polling is the only way to observe completion.
func (c *Client) RunState(axis Axis, state AxisState, wait bool) (bool, error) {
	if err := c.SetRequestedState(axis, state); err != nil {
		return false, err
	}
	if !wait {
		return true, nil
	}
	if c.r == nil {
		return false, ErrNotReadable
	}
	for i := 0; i < c.pollIterations; i++ {
		c.sleep(c.pollInterval)
		if err := c.RequestProperty(axis, "current_state"); err != nil {
			return false, err
		}
		s, err := c.ReadInt()
		if err != nil {
			return false, err
		}
		if AxisState(s) == AxisStateIdle {
			return true, nil
		}
	}
	return false, nil
}
