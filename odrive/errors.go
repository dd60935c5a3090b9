package odrive

import (
	"errors"
	"strings"
)

// Sentinel errors for capability misuse.
var (
	// ErrNotReadable is returned by response readers on a write-only client.
	ErrNotReadable = errors.New("stream is not readable")
	// ErrNotWritable is returned by command writers on a read-only client.
	ErrNotWritable = errors.New("stream is not writable")
)

type errorFlag struct {
	bit  int32
	name string
}

func flagString(v int32, flags []errorFlag) string {
	if v == 0 {
		return "none"
	}
	var names []string
	for _, f := range flags {
		if v&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "unknown error"
	}
	return strings.Join(names, ", ")
}

// AxisError is the bitmask reported by axis<N>.error. Values match the
// ODrive v3.x firmware.
type AxisError int32

const (
	AxisErrorInvalidState              AxisError = 1 << 0
	AxisErrorDCBusUnderVoltage         AxisError = 1 << 1
	AxisErrorDCBusOverVoltage          AxisError = 1 << 2
	AxisErrorCurrentMeasurementTimeout AxisError = 1 << 3
	AxisErrorBrakeResistorDisarmed     AxisError = 1 << 4
	AxisErrorMotorDisarmed             AxisError = 1 << 5
	AxisErrorMotorFailed               AxisError = 1 << 6
	AxisErrorSensorlessEstimatorFailed AxisError = 1 << 7
	AxisErrorEncoderFailed             AxisError = 1 << 8
	AxisErrorControllerFailed          AxisError = 1 << 9
	AxisErrorPosCtrlDuringSensorless   AxisError = 1 << 10
	AxisErrorWatchdogTimerExpired      AxisError = 1 << 11
)

var axisErrorFlags = []errorFlag{
	{int32(AxisErrorInvalidState), "invalid state"},
	{int32(AxisErrorDCBusUnderVoltage), "DC bus under-voltage"},
	{int32(AxisErrorDCBusOverVoltage), "DC bus over-voltage"},
	{int32(AxisErrorCurrentMeasurementTimeout), "current measurement timeout"},
	{int32(AxisErrorBrakeResistorDisarmed), "brake resistor disarmed"},
	{int32(AxisErrorMotorDisarmed), "motor disarmed"},
	{int32(AxisErrorMotorFailed), "motor failed"},
	{int32(AxisErrorSensorlessEstimatorFailed), "sensorless estimator failed"},
	{int32(AxisErrorEncoderFailed), "encoder failed"},
	{int32(AxisErrorControllerFailed), "controller failed"},
	{int32(AxisErrorPosCtrlDuringSensorless), "position control during sensorless"},
	{int32(AxisErrorWatchdogTimerExpired), "watchdog timer expired"},
}

// HasError reports whether any error bit is set.
func (e AxisError) HasError() bool { return e != 0 }

func (e AxisError) String() string { return flagString(int32(e), axisErrorFlags) }

func (e AxisError) Error() string { return "axis error: " + e.String() }

// MotorError is the bitmask reported by axis<N>.motor.error.
type MotorError int32

const (
	MotorErrorPhaseResistanceOutOfRange MotorError = 1 << 0
	MotorErrorPhaseInductanceOutOfRange MotorError = 1 << 1
	MotorErrorADCFailed                 MotorError = 1 << 2
	MotorErrorDRVFault                  MotorError = 1 << 3
	MotorErrorControlDeadlineMissed     MotorError = 1 << 4
	MotorErrorNotImplementedMotorType   MotorError = 1 << 5
	MotorErrorBrakeCurrentOutOfRange    MotorError = 1 << 6
	MotorErrorModulationMagnitude       MotorError = 1 << 7
	MotorErrorBrakeDeadtimeViolation    MotorError = 1 << 8
	MotorErrorUnexpectedTimerCallback   MotorError = 1 << 9
	MotorErrorCurrentSenseSaturation    MotorError = 1 << 10
)

var motorErrorFlags = []errorFlag{
	{int32(MotorErrorPhaseResistanceOutOfRange), "phase resistance out of range"},
	{int32(MotorErrorPhaseInductanceOutOfRange), "phase inductance out of range"},
	{int32(MotorErrorADCFailed), "ADC failed"},
	{int32(MotorErrorDRVFault), "DRV fault"},
	{int32(MotorErrorControlDeadlineMissed), "control deadline missed"},
	{int32(MotorErrorNotImplementedMotorType), "motor type not implemented"},
	{int32(MotorErrorBrakeCurrentOutOfRange), "brake current out of range"},
	{int32(MotorErrorModulationMagnitude), "modulation magnitude"},
	{int32(MotorErrorBrakeDeadtimeViolation), "brake deadtime violation"},
	{int32(MotorErrorUnexpectedTimerCallback), "unexpected timer callback"},
	{int32(MotorErrorCurrentSenseSaturation), "current sense saturation"},
}

// HasError reports whether any error bit is set.
func (e MotorError) HasError() bool { return e != 0 }

func (e MotorError) String() string { return flagString(int32(e), motorErrorFlags) }

func (e MotorError) Error() string { return "motor error: " + e.String() }

// EncoderError is the bitmask reported by axis<N>.encoder.error.
type EncoderError int32

const (
	EncoderErrorUnstableGain           EncoderError = 1 << 0
	EncoderErrorCPROutOfRange          EncoderError = 1 << 1
	EncoderErrorNoResponse             EncoderError = 1 << 2
	EncoderErrorUnsupportedEncoderMode EncoderError = 1 << 3
	EncoderErrorIllegalHallState       EncoderError = 1 << 4
	EncoderErrorIndexNotFoundYet       EncoderError = 1 << 5
)

var encoderErrorFlags = []errorFlag{
	{int32(EncoderErrorUnstableGain), "unstable gain"},
	{int32(EncoderErrorCPROutOfRange), "CPR out of range"},
	{int32(EncoderErrorNoResponse), "no response"},
	{int32(EncoderErrorUnsupportedEncoderMode), "unsupported encoder mode"},
	{int32(EncoderErrorIllegalHallState), "illegal hall state"},
	{int32(EncoderErrorIndexNotFoundYet), "index not found yet"},
}

// HasError reports whether any error bit is set.
func (e EncoderError) HasError() bool { return e != 0 }

func (e EncoderError) String() string { return flagString(int32(e), encoderErrorFlags) }

func (e EncoderError) Error() string { return "encoder error: " + e.String() }

// ControllerError is the bitmask reported by axis<N>.controller.error.
type ControllerError int32

const (
	ControllerErrorOverspeed ControllerError = 1 << 0
)

var controllerErrorFlags = []errorFlag{
	{int32(ControllerErrorOverspeed), "overspeed"},
}

// HasError reports whether any error bit is set.
func (e ControllerError) HasError() bool { return e != 0 }

func (e ControllerError) String() string { return flagString(int32(e), controllerErrorFlags) }

func (e ControllerError) Error() string { return "controller error: " + e.String() }
