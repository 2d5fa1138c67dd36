package model

// PlayerSnapshot is the per-tick player descriptor supplied by the game
// layer. The sweep treats the snapshot list as immutable input; agents
// never mutate it.
type PlayerSnapshot struct {
	ID       string
	Position Vector
	Defense  int32
}
