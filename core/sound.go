package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundCorrect   SoundType = iota // Answer matched the quotient
	SoundIncorrect                  // Answer missed, life lost
	SoundDrop                       // Cookie landed on a monster
	SoundRound                      // Distribution round completed
	SoundGameOver                   // Lives or timer ran out
	SoundFanfare                    // Practice run completed
	SoundTypeCount
)
