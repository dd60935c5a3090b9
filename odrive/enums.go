package odrive

// Axis identifies one motor channel on the controller. It is written on
// the wire as its numeric value.
type Axis uint8

// The ODrive v3 hardware carries two axes.
const (
	Axis0 Axis = 0
	Axis1 Axis = 1
)

// AxisState is an axis state machine state. Values match the ODrive v3.x
// firmware; the set is device data, not protocol logic.
type AxisState int32

const (
	AxisStateUndefined                AxisState = 0
	AxisStateIdle                     AxisState = 1
	AxisStateStartupSequence          AxisState = 2
	AxisStateFullCalibrationSequence  AxisState = 3
	AxisStateMotorCalibration         AxisState = 4
	AxisStateSensorlessControl        AxisState = 5
	AxisStateEncoderIndexSearch       AxisState = 6
	AxisStateEncoderOffsetCalibration AxisState = 7
	AxisStateClosedLoopControl        AxisState = 8
)

var axisStateNames = map[AxisState]string{
	AxisStateUndefined:                "undefined",
	AxisStateIdle:                     "idle",
	AxisStateStartupSequence:          "startup sequence",
	AxisStateFullCalibrationSequence:  "full calibration sequence",
	AxisStateMotorCalibration:         "motor calibration",
	AxisStateSensorlessControl:        "sensorless control",
	AxisStateEncoderIndexSearch:       "encoder index search",
	AxisStateEncoderOffsetCalibration: "encoder offset calibration",
	AxisStateClosedLoopControl:        "closed loop control",
}

func (s AxisState) String() string {
	if name, ok := axisStateNames[s]; ok {
		return name
	}
	return "unknown state"
}

// ControlMode selects the controller's input mode.
type ControlMode int32

const (
	ControlModeVoltage    ControlMode = 0
	ControlModeCurrent    ControlMode = 1
	ControlModeVelocity   ControlMode = 2
	ControlModePosition   ControlMode = 3
	ControlModeTrajectory ControlMode = 4
)

// MotorType selects the motor model used by the controller.
type MotorType int32

const (
	MotorTypeHighCurrent MotorType = 0
	MotorTypeGimbal      MotorType = 2
)

// EncoderMode selects the encoder feedback type.
type EncoderMode int32

const (
	EncoderModeIncremental EncoderMode = 0
	EncoderModeHall        EncoderMode = 1
)
