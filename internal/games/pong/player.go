package pong

// Player identifies one side of the table.
type Player uint8

const (
	Left  Player = iota // Local player, paddle at x = 0
	Right               // CPU or second local player, paddle at the far edge
)

// Players lists both sides in index order.
var Players = [2]Player{Left, Right}

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
