package manager

import "glide-snake/game/entity"

// CollisionType represents the reason a round ended
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "unknown"
	}
}

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// Check classifies a snake's losing state. A wall hit takes precedence when
// both conditions hold in the same frame.
func (cm *CollisionManager) Check(snake *entity.Snake) CollisionType {
	if snake.HitsWall() {
		return WallCollision
	}
	if snake.SelfCollides() {
		return SelfCollision
	}
	return NoCollision
}

// IsFoodCollision checks if the snake's head reaches the fruit
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, fruit entity.Fruit) bool {
	return snake.CanEat(fruit)
}
