package parameter

// MaxMonsters caps the roster; the divisor never exceeds it
const MaxMonsters = 5

// MonsterNames label the roster slots in index order
// The divisor picks how many of them sit at the table
var MonsterNames = [MaxMonsters]string{
	"Gobble",
	"Munch",
	"Chompy",
	"Nibbles",
	"Crumb",
}

// CookiePoolName is the logical name of the shared cookie pool
const CookiePoolName = "Cookie"
