package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CharacterAnimations maps a sprite-sheet key (e.g., "cat")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"cat": {
		Running: {First: 0, Last: 5, Step: 1, Speed: 5},
		Jumping: {First: 0, Last: 3, Step: 1, Speed: 8}, // freezes on the fall pose
		Sliding: {First: 0, Last: 1, Step: 1, Speed: 6},
		Dead:    {First: 0, Last: 3, Step: 1, Speed: 6}, // freezes on the last frame
	},
}

// FreezeStates lists the player states whose animations hold their last
// frame instead of looping.
var FreezeStates = map[StateID]bool{
	Jumping: true,
	Dead:    true,
}
