package classify

// Position is where a hockey player lines up.
type Position string

const (
	Center  Position = "center"
	Wing    Position = "wing"
	Defense Position = "defense"
	Goalie  Position = "goalie"
)

// Positions lists every position.
var Positions = []Position{Center, Wing, Defense, Goalie}

// ParsePosition parses a position name.
func ParsePosition(s string) (Position, error) {
	return parseLabel("position", s, Positions)
}

// Outcome is the result of a shot.
type Outcome string

const (
	Goal Outcome = "Goal!"
	Miss Outcome = "Miss!"
)

// closingSeconds is the point after which only centers still score.
const closingSeconds = 300

// Player is a hockey player.
type Player struct {
	Name     string
	Number   uint8
	Position Position
	GoalsYTD uint8
}

// NewPlayer returns a player with no goals this season.
func NewPlayer(name string, number uint8, position Position) Player {
	return Player{Name: name, Number: number, Position: position}
}

// Shoot reports the outcome of a shot taken with secondsRemaining left in
// the game. Outside the final five minutes every shot scores; inside them
// only a center scores.
func (p Player) Shoot(secondsRemaining int) Outcome {
	if secondsRemaining >= closingSeconds || p.Position == Center {
		return Goal
	}
	return Miss
}
