package manager

import (
	"golang.org/x/exp/rand"

	"glide-snake/game/entity"
	"glide-snake/game/types"
)

// FoodManager owns the random source fruit positions are drawn from.
type FoodManager struct {
	cfg    types.Config
	src    entity.Source
	spawns int
}

func NewFoodManager(cfg types.Config, src entity.Source) *FoodManager {
	return &FoodManager{cfg: cfg, src: src}
}

// NewSeededFoodManager draws positions from a PCG source seeded with seed.
func NewSeededFoodManager(cfg types.Config, seed uint64) *FoodManager {
	return NewFoodManager(cfg, rand.New(rand.NewSource(seed)))
}

func (fm *FoodManager) GenerateFood() entity.Fruit {
	fm.spawns++
	return entity.RespawnFruit(fm.src, fm.cfg)
}

// Spawns counts fruits generated since creation.
func (fm *FoodManager) Spawns() int {
	return fm.spawns
}
