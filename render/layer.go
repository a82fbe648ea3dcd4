package render

// Priority orders layers; lower values draw first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityObstacle
	PriorityLoot
	PriorityEnemy
	PriorityBoss
	PriorityProjectile
	PriorityPlayer
	PriorityEffect
	PriorityHUD
	PriorityOverlay
)

// Layer is one pass of the frame compositor
type Layer interface {
	Render(ctx Context, buf *Buffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
