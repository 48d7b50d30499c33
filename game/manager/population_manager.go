package manager

import (
	"glide-snake/game/entity"
	"glide-snake/game/types"
)

// PopulationManager holds the live snake and swaps in a fresh one after a loss.
type PopulationManager struct {
	cfg          types.Config
	currentSnake *entity.Snake
}

func NewPopulationManager(cfg types.Config) *PopulationManager {
	pm := &PopulationManager{cfg: cfg}
	pm.InitializePopulation()
	return pm
}

// InitializePopulation replaces the current snake wholesale with the default one.
func (pm *PopulationManager) InitializePopulation() *entity.Snake {
	pm.currentSnake = entity.NewSnake(pm.cfg)
	return pm.currentSnake
}

func (pm *PopulationManager) Snake() *entity.Snake {
	return pm.currentSnake
}
