package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/clicker.toml
var defaultClickerTOML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Canvas:      Canvas{Width: 600, Height: 600},
		GridSize:    30,
		TickMS:      100,
		StartX:      10,
		StartY:      10,
		FoodRetries: 64,
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: Canvas{Width: 600, Height: 600},
		Paddle: BreakoutPaddle{X: 250, Y: 560, Width: 100, Height: 15, Speed: 8},
		Ball:   BreakoutBall{X: 300, Y: 300, Radius: 8, DX: 4, DY: -4, Spin: 8},
		Bricks: BreakoutBricks{
			Rows:       5,
			Cols:       10,
			Width:      55,
			Height:     20,
			Padding:    5,
			OffsetTop:  50,
			OffsetLeft: 10,
			Points:     10,
		},
		Lives: 3,
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "score", MaxAt: 500},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultFlappyConfig returns the default Flappy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: Canvas{Width: 400, Height: 500},
		Physics: FlappyPhysics{
			Gravity:     0.5,
			JumpImpulse: -8,
		},
		Pipes: FlappyPipes{
			Width:    60,
			Gap:      150,
			Speed:    3,
			Interval: 90,
			Margin:   50,
			Reserve:  100,
		},
		Bird: FlappyBird{X: 80, Y: 250, Width: 30, Height: 30},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "score", MaxAt: 50},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				GapReduction:    40,
				MinGap:          90,
			},
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Rows:          20,
		Cols:          10,
		BlockSize:     30,
		BaseDropMS:    1000,
		LevelStepMS:   100,
		MinDropMS:     100,
		LinesPerLevel: 10,
		LinePoints:    100,
	}
}

// DefaultClickerConfig returns the default Clicker configuration.
func DefaultClickerConfig() ClickerConfig {
	return ClickerConfig{
		Canvas:     Canvas{Width: 400, Height: 400},
		TickMS:     100,
		ClickPower: 1,
		LabelTicks: 10,
		Upgrades: []Upgrade{
			{Name: "Bit Flipper", Cost: 10, Multiplier: 1.5, Auto: 1},
			{Name: "Byte Farm", Cost: 50, Multiplier: 1.8, Auto: 5},
			{Name: "Overclock", Cost: 100, Multiplier: 2, Click: 1},
			{Name: "Mainframe", Cost: 500, Multiplier: 2.5, Auto: 20},
		},
	}
}
