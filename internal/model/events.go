package model

// TransitionType identifies which engine transition produced a snapshot
type TransitionType string

const (
	TransitionStarted  TransitionType = "started"
	TransitionRevealed TransitionType = "revealed"
	TransitionAdvanced TransitionType = "advanced"
	TransitionFinished TransitionType = "finished"
	TransitionReset    TransitionType = "reset"
)

// Transition is delivered to engine subscribers after every successful
// state change
type Transition struct {
	Type     TransitionType
	Snapshot Snapshot
}
