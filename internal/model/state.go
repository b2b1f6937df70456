package model

// ControllerState tracks one-shot initialization of a widget controller.
type ControllerState int

const (
	// StateUninitialized means the controller has not completed setup yet.
	StateUninitialized ControllerState = iota

	// StateReady means setup ran once and the controller accepts commands.
	StateReady
)

// String returns the string representation of ControllerState
func (cs ControllerState) String() string {
	switch cs {
	case StateUninitialized:
		return "Uninitialized"
	case StateReady:
		return "Ready"
	default:
		return "Unknown"
	}
}

// IsReady returns true if the controller finished initialization.
func (cs ControllerState) IsReady() bool {
	return cs == StateReady
}
