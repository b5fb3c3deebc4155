package engine

import (
	"time"

	"github.com/lixenwraith/cookie-crunch/parameter"
)

// NewTestContext builds a context with default config and a mock clock
// for deterministic tests
func NewTestContext() (*Context, *MockTimeProvider) {
	ctx := NewContext(parameter.Default())
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx.Time = mock
	return ctx, mock
}
