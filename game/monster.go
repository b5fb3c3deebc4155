package game

import "github.com/lixenwraith/cookie-crunch/parameter"

// Monster is one plate at the table
// Cookies counts what it has received for the current question
type Monster struct {
	ID      int
	Name    string
	Cookies int
}

// Roster holds the active monsters in index order
// The divisor of the current question decides how many are active
type Roster struct {
	monsters []*Monster
}

// NewRoster seats n monsters, capped at the configured maximum
func NewRoster(n int) *Roster {
	r := &Roster{}
	r.Resize(n)
	return r
}

// Resize seats exactly n monsters, preserving nothing across questions
func (r *Roster) Resize(n int) {
	if n < 1 {
		n = 1
	}
	if n > parameter.MaxMonsters {
		n = parameter.MaxMonsters
	}
	r.monsters = r.monsters[:0]
	for i := 0; i < n; i++ {
		r.monsters = append(r.monsters, &Monster{ID: i, Name: parameter.MonsterNames[i]})
	}
}

// Monster returns the monster with the given id
func (r *Roster) Monster(id int) (*Monster, bool) {
	if id < 0 || id >= len(r.monsters) {
		return nil, false
	}
	return r.monsters[id], true
}

// Active returns the seated monsters in ascending index order
func (r *Roster) Active() []*Monster {
	return r.monsters
}

// Size returns the number of seated monsters
func (r *Roster) Size() int {
	return len(r.monsters)
}

// ResetCounts zeroes every monster's cookie count
func (r *Roster) ResetCounts() {
	for _, m := range r.monsters {
		m.Cookies = 0
	}
}

// MinCount returns the smallest cookie count at the table
func (r *Roster) MinCount() int {
	if len(r.monsters) == 0 {
		return 0
	}
	minCount := r.monsters[0].Cookies
	for _, m := range r.monsters[1:] {
		if m.Cookies < minCount {
			minCount = m.Cookies
		}
	}
	return minCount
}

// MaxCount returns the largest cookie count at the table
func (r *Roster) MaxCount() int {
	maxCount := 0
	for _, m := range r.monsters {
		if m.Cookies > maxCount {
			maxCount = m.Cookies
		}
	}
	return maxCount
}
