package game

const (
	// InitialKittens and InitialCats are each player's starting allocation.
	// Kittens begin in the pool, cats in the reserve.
	InitialKittens = 8
	InitialCats    = 8

	// GraduationRelease is how many reserve pieces unlock per graduation.
	GraduationRelease = 3
)

// Player tracks the pieces a player is not currently fielding. Pool pieces
// are playable now; reserve pieces unlock three at a time on graduation.
// Counts are per rank so the whole struct stays a flat copyable value.
type Player struct {
	Color   Color
	Pool    [NumRanks]int
	Reserve [NumRanks]int
}

// NewPlayer returns a player with the standard starting allocation.
func NewPlayer(c Color) Player {
	p := Player{Color: c}
	p.Pool[Kitten] = InitialKittens
	p.Reserve[Cat] = InitialCats
	return p
}

// HasPieces reports whether the player can still place anything.
func (p *Player) HasPieces() bool {
	return p.Pool[Kitten] > 0 || p.Pool[Cat] > 0
}

// TakeFromPool removes one piece of the given rank from the pool. It
// returns false if none is available.
func (p *Player) TakeFromPool(r Rank) bool {
	if p.Pool[r] == 0 {
		return false
	}
	p.Pool[r]--
	return true
}

// ReturnToPool gives a booped-off or graduated piece back to the pool.
func (p *Player) ReturnToPool(r Rank) {
	p.Pool[r]++
}

// Graduate releases GraduationRelease pieces from reserve to pool, oldest
// rank first (cats in a standard game). A short reserve releases nothing:
// there is no partial graduation.
func (p *Player) Graduate() {
	if p.Reserve[Kitten]+p.Reserve[Cat] < GraduationRelease {
		return
	}
	remaining := GraduationRelease
	for r := Rank(0); r < NumRanks && remaining > 0; r++ {
		n := p.Reserve[r]
		if n > remaining {
			n = remaining
		}
		p.Reserve[r] -= n
		p.Pool[r] += n
		remaining -= n
	}
}
