package game

// Cookie is a pooled, recyclable entity handed to the rendering layer
// The core only touches the two hooks below; all tweening and animation
// timing belongs to the presentation layer
type Cookie struct {
	ID int

	// Spawn position assigned on dispatch
	X, Y int

	// Presentation state cleared by ResetState
	Dragging bool
	Order    int
}

// defaultOrder is the visual stacking order a fresh cookie starts with
const defaultOrder = 0

// ResetState zeroes presentation state before the cookie is recycled
// Invoked by the pool's reset hook on every return
func (c *Cookie) ResetState() {
	c.X = 0
	c.Y = 0
	c.Dragging = false
	c.Order = defaultOrder
}

// SetSpawnPosition places the cookie when it is dispatched from the pool
func (c *Cookie) SetSpawnPosition(x, y int) {
	c.X = x
	c.Y = y
}

// NewCookieFactory returns a factory producing cookies with sequential ids
func NewCookieFactory() func() *Cookie {
	next := 0
	return func() *Cookie {
		next++
		return &Cookie{ID: next, Order: defaultOrder}
	}
}
