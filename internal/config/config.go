// Package config provides YAML/TOML game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// Canvas is a logical playfield size in pixels.
type Canvas struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Canvas      Canvas `yaml:"canvas" toml:"canvas"`
	GridSize    int    `yaml:"grid_size" toml:"grid_size"`
	TickMS      int    `yaml:"tick_ms" toml:"tick_ms"`
	StartX      int    `yaml:"start_x" toml:"start_x"`
	StartY      int    `yaml:"start_y" toml:"start_y"`
	FoodRetries int    `yaml:"food_retries" toml:"food_retries"`
}

// TileCount returns the grid size on both axes. Both come from the canvas
// width, matching the square playfield.
func (c SnakeConfig) TileCount() int {
	return int(c.Canvas.Width) / c.GridSize
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Canvas     Canvas           `yaml:"canvas" toml:"canvas"`
	Paddle     BreakoutPaddle   `yaml:"paddle" toml:"paddle"`
	Ball       BreakoutBall     `yaml:"ball" toml:"ball"`
	Bricks     BreakoutBricks   `yaml:"bricks" toml:"bricks"`
	Lives      int              `yaml:"lives" toml:"lives"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// BreakoutBall defines the ball and its launch velocity.
type BreakoutBall struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Radius float64 `yaml:"radius" toml:"radius"`
	DX     float64 `yaml:"dx" toml:"dx"`
	DY     float64 `yaml:"dy" toml:"dy"`
	Spin   float64 `yaml:"spin" toml:"spin"` // horizontal speed range off the paddle
}

// BreakoutBricks defines the brick wall layout.
type BreakoutBricks struct {
	Rows       int     `yaml:"rows" toml:"rows"`
	Cols       int     `yaml:"cols" toml:"cols"`
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Padding    float64 `yaml:"padding" toml:"padding"`
	OffsetTop  float64 `yaml:"offset_top" toml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left" toml:"offset_left"`
	Points     int     `yaml:"points" toml:"points"`
}

// FlappyConfig contains all configuration for Flappy.
type FlappyConfig struct {
	Canvas     Canvas           `yaml:"canvas" toml:"canvas"`
	Physics    FlappyPhysics    `yaml:"physics" toml:"physics"`
	Pipes      FlappyPipes      `yaml:"pipes" toml:"pipes"`
	Bird       FlappyBird       `yaml:"bird" toml:"bird"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"`
}

// FlappyPipes defines pipe generation.
type FlappyPipes struct {
	Width    float64 `yaml:"width" toml:"width"`
	Gap      float64 `yaml:"gap" toml:"gap"`
	Speed    float64 `yaml:"speed" toml:"speed"`
	Interval int     `yaml:"interval" toml:"interval"` // frames between pipes
	Margin   float64 `yaml:"margin" toml:"margin"`     // minimum top pipe height
	Reserve  float64 `yaml:"reserve" toml:"reserve"`   // height excluded from the random top range
}

// FlappyBird defines the player box.
type FlappyBird struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Rows          int `yaml:"rows" toml:"rows"`
	Cols          int `yaml:"cols" toml:"cols"`
	BlockSize     int `yaml:"block_size" toml:"block_size"`
	BaseDropMS    int `yaml:"base_drop_ms" toml:"base_drop_ms"`
	LevelStepMS   int `yaml:"level_step_ms" toml:"level_step_ms"`
	MinDropMS     int `yaml:"min_drop_ms" toml:"min_drop_ms"`
	LinesPerLevel int `yaml:"lines_per_level" toml:"lines_per_level"`
	LinePoints    int `yaml:"line_points" toml:"line_points"`
}

// ClickerConfig contains all configuration for Clicker.
type ClickerConfig struct {
	Canvas     Canvas    `yaml:"canvas" toml:"canvas"`
	TickMS     int       `yaml:"tick_ms" toml:"tick_ms"`
	ClickPower float64   `yaml:"click_power" toml:"click_power"`
	LabelTicks int       `yaml:"label_ticks" toml:"label_ticks"`
	Upgrades   []Upgrade `yaml:"upgrades" toml:"upgrades"`
}

// Upgrade is one purchasable clicker upgrade.
type Upgrade struct {
	Name       string  `yaml:"name" toml:"name"`
	Cost       float64 `yaml:"cost" toml:"cost"`
	Multiplier float64 `yaml:"multiplier" toml:"multiplier"`
	Auto       float64 `yaml:"auto" toml:"auto"`   // added to auto clicks per second
	Click      float64 `yaml:"click" toml:"click"` // added to click power
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // added to speed at max difficulty
	GapReduction    float64 `yaml:"gap_reduction" toml:"gap_reduction"`       // gap shrink at max difficulty
	MinGap          float64 `yaml:"min_gap" toml:"min_gap"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

func invalid(game, field string, v any) error {
	return fmt.Errorf("%w: %s.%s = %v", ErrInvalid, game, field, v)
}

func (c Canvas) validate(game string) error {
	if c.Width <= 0 {
		return invalid(game, "canvas.width", c.Width)
	}
	if c.Height <= 0 {
		return invalid(game, "canvas.height", c.Height)
	}
	return nil
}

// Validate checks the snake configuration.
func (c SnakeConfig) Validate() error {
	if err := c.Canvas.validate("snake"); err != nil {
		return err
	}
	if c.GridSize <= 0 || c.TileCount() < 2 {
		return invalid("snake", "grid_size", c.GridSize)
	}
	if c.TickMS <= 0 {
		return invalid("snake", "tick_ms", c.TickMS)
	}
	n := c.TileCount()
	if c.StartX < 0 || c.StartX >= n || c.StartY < 0 || c.StartY >= n {
		return invalid("snake", "start", fmt.Sprintf("(%d,%d)", c.StartX, c.StartY))
	}
	return nil
}

// Validate checks the breakout configuration.
func (c BreakoutConfig) Validate() error {
	if err := c.Canvas.validate("breakout"); err != nil {
		return err
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width > c.Canvas.Width {
		return invalid("breakout", "paddle.width", c.Paddle.Width)
	}
	if c.Ball.Radius <= 0 {
		return invalid("breakout", "ball.radius", c.Ball.Radius)
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		return invalid("breakout", "bricks", fmt.Sprintf("%dx%d", c.Bricks.Rows, c.Bricks.Cols))
	}
	if c.Lives <= 0 {
		return invalid("breakout", "lives", c.Lives)
	}
	return nil
}

// Validate checks the flappy configuration.
func (c FlappyConfig) Validate() error {
	if err := c.Canvas.validate("flappy"); err != nil {
		return err
	}
	if c.Pipes.Gap <= 0 || c.Pipes.Gap >= c.Canvas.Height {
		return invalid("flappy", "pipes.gap", c.Pipes.Gap)
	}
	if c.Pipes.Interval <= 0 {
		return invalid("flappy", "pipes.interval", c.Pipes.Interval)
	}
	if c.Pipes.Width <= 0 {
		return invalid("flappy", "pipes.width", c.Pipes.Width)
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		return invalid("flappy", "bird", fmt.Sprintf("%vx%v", c.Bird.Width, c.Bird.Height))
	}
	return nil
}

// Validate checks the tetris configuration.
func (c TetrisConfig) Validate() error {
	if c.Rows < 4 || c.Cols < 4 {
		return invalid("tetris", "board", fmt.Sprintf("%dx%d", c.Rows, c.Cols))
	}
	if c.BlockSize <= 0 {
		return invalid("tetris", "block_size", c.BlockSize)
	}
	if c.BaseDropMS <= 0 || c.MinDropMS <= 0 {
		return invalid("tetris", "drop_ms", c.BaseDropMS)
	}
	if c.LinesPerLevel <= 0 {
		return invalid("tetris", "lines_per_level", c.LinesPerLevel)
	}
	return nil
}

// Validate checks the clicker configuration.
func (c ClickerConfig) Validate() error {
	if err := c.Canvas.validate("clicker"); err != nil {
		return err
	}
	if c.TickMS <= 0 {
		return invalid("clicker", "tick_ms", c.TickMS)
	}
	if c.ClickPower <= 0 {
		return invalid("clicker", "click_power", c.ClickPower)
	}
	for i, u := range c.Upgrades {
		if u.Cost <= 0 || u.Multiplier < 1 {
			return invalid("clicker", fmt.Sprintf("upgrades[%d]", i), u.Name)
		}
	}
	return nil
}

// Set bundles the configuration of every game.
type Set struct {
	Snake    SnakeConfig
	Breakout BreakoutConfig
	Flappy   FlappyConfig
	Tetris   TetrisConfig
	Clicker  ClickerConfig
}

// DefaultSet returns the hardcoded defaults for every game.
func DefaultSet() Set {
	return Set{
		Snake:    DefaultSnakeConfig(),
		Breakout: DefaultBreakoutConfig(),
		Flappy:   DefaultFlappyConfig(),
		Tetris:   DefaultTetrisConfig(),
		Clicker:  DefaultClickerConfig(),
	}
}

// Validate checks every game configuration.
func (s Set) Validate() error {
	return errors.Join(
		s.Snake.Validate(),
		s.Breakout.Validate(),
		s.Flappy.Validate(),
		s.Tetris.Validate(),
		s.Clicker.Validate(),
	)
}
