package odrive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andber1/odrive-go/transports"
)

func TestMotor_CalibrationFlow(t *testing.T) {
	// The device walks through motor calibration, encoder offset
	// calibration, then settles to idle. One reply line per poll.
	mock := &transports.Mock{ReadData: []byte("4\n7\n1\n")}
	c, fc := newTestClient(mock)
	motor := NewMotor(c, Axis1)

	done, err := motor.Calibrate()
	require.NoError(t, err)
	assert.True(t, done, "calibration should settle within the poll budget")
	assert.Len(t, fc.sleeps, 3, "one sleep per poll")

	want := "w axis1.requested_state 3\n" +
		"r axis1.current_state\n" +
		"r axis1.current_state\n" +
		"r axis1.current_state\n"
	assert.Equal(t, want, string(mock.WriteData))
}

func TestMotor_ClosedLoopAndSetpoints(t *testing.T) {
	mock := &transports.Mock{}
	c, _ := newTestClient(mock)
	motor := NewMotor(c, Axis0)

	require.NoError(t, motor.EnterClosedLoop())
	require.NoError(t, motor.SetVelocity(2000))
	require.NoError(t, motor.SetPosition(8192))
	require.NoError(t, motor.MoveTo(0))
	require.NoError(t, motor.Idle())

	want := "w axis0.requested_state 8\n" +
		"v 0 2000 0\n" +
		"q 0 8192 0 0\n" +
		"t 0 0\n" +
		"w axis0.requested_state 1\n"
	assert.Equal(t, want, string(mock.WriteData))
}

func TestMotor_Status(t *testing.T) {
	mock := &transports.Mock{ReadData: []byte("8\n123.5\n0\n")}
	c, _ := newTestClient(mock)
	motor := NewMotor(c, Axis0)

	state, err := motor.State()
	require.NoError(t, err)
	assert.Equal(t, AxisStateClosedLoopControl, state)

	vel, err := motor.Velocity()
	require.NoError(t, err)
	assert.Equal(t, float32(123.5), vel)

	axisErr, err := motor.Errors()
	require.NoError(t, err)
	assert.False(t, axisErr.HasError())
}

func TestMotor_StatusWithGarbageReply(t *testing.T) {
	// Diagnostic text instead of a number reads as zero, so a garbled
	// state reply is indistinguishable from AxisStateUndefined.
	mock := &transports.Mock{ReadData: []byte("ERR unknown property\n")}
	c, _ := newTestClient(mock)
	motor := NewMotor(c, Axis0)

	state, err := motor.State()
	require.NoError(t, err)
	assert.Equal(t, AxisStateUndefined, state)
}

func TestAxisStateString(t *testing.T) {
	assert.Equal(t, "idle", AxisStateIdle.String())
	assert.Equal(t, "closed loop control", AxisStateClosedLoopControl.String())
	assert.Equal(t, "unknown state", AxisState(42).String())
}

func TestAxisErrorString(t *testing.T) {
	e := AxisErrorDCBusUnderVoltage | AxisErrorMotorDisarmed
	assert.True(t, e.HasError())
	assert.Equal(t, "DC bus under-voltage, motor disarmed", e.String())
	assert.Equal(t, "none", AxisError(0).String())
}

func TestTimingConstants(t *testing.T) {
	// Wire-level timing contract: one second line budget, ten second
	// worst case state poll.
	assert.Equal(t, time.Second, ReadTimeout)
	assert.Equal(t, 10*time.Second, time.Duration(PollIterations)*PollInterval)
}
