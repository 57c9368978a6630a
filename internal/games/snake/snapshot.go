package snake

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Length  int
	HeadX   int
	HeadY   int
	Heading Heading
	FoodX   int
	FoodY   int
	Resets  int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.actor.Head()
	food := g.food.Position()

	return Snapshot{
		Tick:    g.tick,
		Length:  g.actor.Len(),
		HeadX:   head.X,
		HeadY:   head.Y,
		Heading: g.actor.Heading(),
		FoodX:   food.X,
		FoodY:   food.Y,
		Resets:  g.resets,
	}
}
