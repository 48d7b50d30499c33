package game

import (
	"fmt"
	"log"
	"math"

	"glide-snake/game/entity"
	"glide-snake/game/geom"
	"glide-snake/game/manager"
	"glide-snake/game/types"
)

const (
	scoreTextX    = 20
	scoreTextY    = 20
	scoreFontSize = 24
)

// Outcome reports what a single Step did.
type Outcome struct {
	Ate       bool
	Lost      bool
	Collision manager.CollisionType
	Score     int // score after the step; 0 following a loss
}

// Game is the whole simulation state: one snake and one fruit.
type Game struct {
	Config types.Config

	fruit      entity.Fruit
	population *manager.PopulationManager
	food       *manager.FoodManager
	collisions *manager.CollisionManager
	state      *manager.StateManager
	logger     *log.Logger
	frames     uint64
	verbose    bool
}

// NewGame builds a game drawing fruit positions from src. logger may be nil.
func NewGame(cfg types.Config, src entity.Source, logger *log.Logger) *Game {
	g := &Game{
		Config:     cfg,
		population: manager.NewPopulationManager(cfg),
		food:       manager.NewFoodManager(cfg, src),
		collisions: manager.NewCollisionManager(),
		state:      manager.NewStateManager(logger),
		logger:     logger,
	}
	g.fruit = g.food.GenerateFood()
	return g
}

// SetVerbose enables per-frame logging.
func (g *Game) SetVerbose(v bool) {
	g.verbose = v
}

func (g *Game) Snake() *entity.Snake {
	return g.population.Snake()
}

func (g *Game) Fruit() entity.Fruit {
	return g.fruit
}

// SetFruit replaces the live fruit.
func (g *Game) SetFruit(f entity.Fruit) {
	g.fruit = f
}

func (g *Game) State() *manager.StateManager {
	return g.state
}

// Score is the number of body units, shown on screen.
func (g *Game) Score() int {
	return g.Snake().Length() - 1
}

// Reset replaces both the snake and the fruit with fresh instances.
func (g *Game) Reset() {
	g.population.InitializePopulation()
	g.fruit = g.food.GenerateFood()
}

// Step advances the simulation by dt seconds under the given input.
// A negative or non-finite dt moves nothing.
func (g *Game) Step(in types.Input, dt float64) Outcome {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	g.frames++
	g.state.Tick(dt)

	snake := g.Snake()
	snake.Advance(dt, in.RotationRate(g.Config.RotationPerSec))

	var out Outcome
	if g.collisions.IsFoodCollision(snake, g.fruit) {
		g.fruit = g.food.GenerateFood()
		snake.Grow()
		out.Ate = true
	}

	if collision := g.collisions.Check(snake); collision != manager.NoCollision {
		g.state.EndRound(g.Score(), collision)
		g.Reset()
		out.Lost = true
		out.Collision = collision
	}

	out.Score = g.Score()
	if g.verbose && g.logger != nil {
		head := g.Snake().HeadPosition()
		g.logger.Printf("frame %d: dt=%.4f head=(%.3f, %.3f) len=%d ate=%t lost=%t",
			g.frames, dt, head.X, head.Y, g.Snake().Length(), out.Ate, out.Lost)
	}
	return out
}

// Draw paints the whole frame: background, field, snake, fruit and score.
func (g *Game) Draw(p types.Painter) {
	w, h := p.Size()
	vp := geom.NewViewport(w, h, g.Config.FieldSize)

	p.Clear(types.LightGray)
	topLeft, side := vp.FieldRect()
	p.FillRect(topLeft.X, topLeft.Y, side, side, types.Green)

	g.Snake().Render(p, vp)
	g.fruit.Render(p, vp)

	p.Text(ScoreText(g.Score()), scoreTextX, scoreTextY, scoreFontSize, types.Black)
}

func ScoreText(score int) string {
	return fmt.Sprintf("Scores: %d", score)
}
