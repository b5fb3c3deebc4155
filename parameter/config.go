package parameter

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the explicit runtime configuration, constructed once at
// process start and passed by reference into the components that need
// it. No runtime type-name or resource-path lookup.
type Config struct {
	// Run shape
	Lives         int           `env:"CRUNCH_LIVES" envDefault:"3"`
	QuestionCount int           `env:"CRUNCH_QUESTIONS" envDefault:"10"`
	RoundTimer    time.Duration `env:"CRUNCH_ROUND_TIMER" envDefault:"120s"`

	// Question bounds: dividend = divisor * quotient, always exact
	MinDivisor  int `env:"CRUNCH_MIN_DIVISOR" envDefault:"2"`
	MaxDivisor  int `env:"CRUNCH_MAX_DIVISOR" envDefault:"5"`
	MinQuotient int `env:"CRUNCH_MIN_QUOTIENT" envDefault:"1"`
	MaxQuotient int `env:"CRUNCH_MAX_QUOTIENT" envDefault:"9"`

	// Scoring
	PointsPerCorrect int `env:"CRUNCH_POINTS" envDefault:"10"`

	// Cookie pool
	CookiePoolSize int  `env:"CRUNCH_COOKIE_POOL" envDefault:"20"`
	CookiePoolGrow bool `env:"CRUNCH_COOKIE_POOL_GROW" envDefault:"false"`

	// Pacing
	NextQuestionDelay time.Duration `env:"CRUNCH_NEXT_QUESTION_DELAY" envDefault:"1s"`
	TickInterval      time.Duration `env:"CRUNCH_TICK_INTERVAL" envDefault:"50ms"`

	// Distribution behavior (excludeInitiator rule lives in game logic;
	// this only toggles whether a drop feeds the other monsters too)
	AutoDistribute bool `env:"CRUNCH_AUTO_DISTRIBUTE" envDefault:"true"`
}

// Load parses environment overrides on top of the defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration, ignoring the environment
func Default() *Config {
	return &Config{
		Lives:             3,
		QuestionCount:     10,
		RoundTimer:        120 * time.Second,
		MinDivisor:        2,
		MaxDivisor:        5,
		MinQuotient:       1,
		MaxQuotient:       9,
		PointsPerCorrect:  10,
		CookiePoolSize:    20,
		CookiePoolGrow:    false,
		NextQuestionDelay: time.Second,
		TickInterval:      50 * time.Millisecond,
		AutoDistribute:    true,
	}
}

func (c *Config) validate() error {
	if c.Lives < 1 {
		return fmt.Errorf("config: lives must be at least 1, got %d", c.Lives)
	}
	if c.QuestionCount < 1 {
		return fmt.Errorf("config: question count must be at least 1, got %d", c.QuestionCount)
	}
	if c.MinDivisor < 2 || c.MaxDivisor < c.MinDivisor {
		return fmt.Errorf("config: divisor bounds [%d,%d] invalid", c.MinDivisor, c.MaxDivisor)
	}
	if c.MaxDivisor > MaxMonsters {
		return fmt.Errorf("config: max divisor %d exceeds monster roster %d", c.MaxDivisor, MaxMonsters)
	}
	if c.MinQuotient < 1 || c.MaxQuotient < c.MinQuotient {
		return fmt.Errorf("config: quotient bounds [%d,%d] invalid", c.MinQuotient, c.MaxQuotient)
	}
	if c.CookiePoolSize < 1 {
		return fmt.Errorf("config: cookie pool size must be at least 1, got %d", c.CookiePoolSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("config: tick interval must be positive, got %v", c.TickInterval)
	}
	return nil
}
