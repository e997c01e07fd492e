package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionRotateCCW
	ActionRotateCW
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionStart
)

func (a GameAction) String() string {
	switch a {
	case ActionRotateCCW:
		return "Rotate CCW"
	case ActionRotateCW:
		return "Rotate CW"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionSoftDrop:
		return "Soft Drop"
	case ActionHardDrop:
		return "Hard Drop"
	case ActionStart:
		return "Start"
	default:
		return "Unknown"
	}
}
