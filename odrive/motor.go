package odrive

// Motor provides a high-level interface for one axis of the controller.
// It is a thin view over a Client; several Motors may share one Client as
// long as they are used from a single goroutine.
type Motor struct {
	client *Client
	axis   Axis
}

// NewMotor returns a Motor for the given axis.
func NewMotor(client *Client, axis Axis) *Motor {
	return &Motor{client: client, axis: axis}
}

// Axis returns the axis this motor is bound to.
func (m *Motor) Axis() Axis {
	return m.axis
}

// Position Control

// SetPosition commands a position setpoint in encoder counts.
func (m *Motor) SetPosition(position float32) error {
	return m.client.SetPosition(m.axis, position)
}

// SetPositionFF streams a position setpoint with velocity and current
// feed-forward terms.
func (m *Motor) SetPositionFF(position, velocityFF, currentFF float32) error {
	return m.client.SetPositionFF(m.axis, position, velocityFF, currentFF)
}

// SetPositionLimits commands a position setpoint with velocity and current
// limits.
func (m *Motor) SetPositionLimits(position, velocityLimit, currentLimit float32) error {
	return m.client.SetPositionLimits(m.axis, position, velocityLimit, currentLimit)
}

// MoveTo moves the motor to a position using the trajectory planner.
func (m *Motor) MoveTo(position float32) error {
	return m.client.SetTrajectory(m.axis, position)
}

// Velocity Control

// SetVelocity commands a velocity setpoint in encoder counts per second.
func (m *Motor) SetVelocity(velocity float32) error {
	return m.client.SetVelocity(m.axis, velocity)
}

// SetVelocityFF commands a velocity setpoint with a current feed-forward
// term in amps.
func (m *Motor) SetVelocityFF(velocity, currentFF float32) error {
	return m.client.SetVelocityFF(m.axis, velocity, currentFF)
}

// SetCurrent commands a current setpoint in amps.
func (m *Motor) SetCurrent(current float32) error {
	return m.client.SetCurrent(m.axis, current)
}

// Velocity reads the encoder velocity estimate in counts per second.
func (m *Motor) Velocity() (float32, error) {
	return m.client.GetVelocity(m.axis)
}

// State Machine

// State reads the axis state machine's current state. An unparseable
// reply reads as AxisStateUndefined.
func (m *Motor) State() (AxisState, error) {
	v, err := m.client.GetPropertyInt(m.axis, "current_state")
	return AxisState(v), err
}

// Errors reads the axis error bitmask.
func (m *Motor) Errors() (AxisError, error) {
	v, err := m.client.GetPropertyInt(m.axis, "error")
	return AxisError(v), err
}

// RequestState asks the state machine to enter the given state, waiting
// for it to settle back to idle when wait is true. See Client.RunState.
func (m *Motor) RequestState(state AxisState, wait bool) (bool, error) {
	return m.client.RunState(m.axis, state, wait)
}

// Calibrate runs the full calibration sequence and waits for it to
// finish. It reports whether the axis returned to idle within the poll
// budget.
func (m *Motor) Calibrate() (bool, error) {
	return m.client.RunState(m.axis, AxisStateFullCalibrationSequence, true)
}

// EnterClosedLoop requests closed loop control. It does not wait: closed
// loop is a steady state, not a sequence that settles back to idle.
func (m *Motor) EnterClosedLoop() error {
	_, err := m.client.RunState(m.axis, AxisStateClosedLoopControl, false)
	return err
}

// Idle requests the idle state, dropping the motor out of control.
func (m *Motor) Idle() error {
	_, err := m.client.RunState(m.axis, AxisStateIdle, false)
	return err
}
