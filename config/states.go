package config

// StateID identifies a player state for animation and logic.
type StateID int

const (
	StateNone StateID = iota - 1
	Running
	Jumping
	Sliding
	Dead
)

// StateToFileName maps StateID to the corresponding sheet name.
var StateToFileName = map[StateID]string{
	Running: "run",
	Jumping: "jump",
	Sliding: "slide",
	Dead:    "dead",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

// ObstacleKind is the tagged variant selecting an obstacle's art, spawn
// placement and collision rules.
type ObstacleKind int

const (
	Rock ObstacleKind = iota
	Log
	Bush
	FallenTree
	Balloon
)

// KindToName maps ObstacleKind to its sprite name.
var KindToName = map[ObstacleKind]string{
	Rock:       "rock",
	Log:        "log",
	Bush:       "bush",
	FallenTree: "fallentree",
	Balloon:    "balloon",
}

func (k ObstacleKind) String() string {
	if name, ok := KindToName[k]; ok {
		return name
	}
	return "unknown"
}

// AllKinds lists every spawnable obstacle kind in weight-table order.
var AllKinds = []ObstacleKind{Rock, Log, Bush, FallenTree, Balloon}
