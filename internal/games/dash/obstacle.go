package dash

import (
	"fmt"

	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/core"
)

// Kind is the obstacle variety.
type Kind int

const (
	KindFly   Kind = iota // Flies above the ground
	KindSlime             // Crawls along the floor line
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFly:
		return "fly"
	case KindSlime:
		return "slime"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// baseline returns the y of the obstacle's bottom edge.
func (k Kind) baseline() int {
	if k == KindFly {
		return FlyY
	}
	return SlimeY
}

func (k Kind) frames() [walkFrames]assets.Sprite {
	if k == KindFly {
		return [walkFrames]assets.Sprite{assets.SpriteFly1, assets.SpriteFly2}
	}
	return [walkFrames]assets.Sprite{assets.SpriteSlime1, assets.SpriteSlime2}
}

// Obstacle is a single enemy moving right to left at constant speed.
type Obstacle struct {
	kind   Kind
	rect   core.Rect
	frame  float64
	sprite assets.Sprite
	alive  bool
}

// NewObstacle creates an obstacle whose bottom edge is centred on x at the
// kind's baseline.
func NewObstacle(kind Kind, x int, atlas Atlas) *Obstacle {
	frames := kind.frames()
	w, h := atlas.Size(frames[0])
	return &Obstacle{
		kind:   kind,
		rect:   core.RectMidBottom(x, kind.baseline(), w, h),
		sprite: frames[0],
		alive:  true,
	}
}

// AdvanceAnimation cycles between the kind's two frames.
func (o *Obstacle) AdvanceAnimation() {
	o.frame = advanceFrame(o.frame)
	o.sprite = o.kind.frames()[int(o.frame)]
}

// AdvancePosition moves the obstacle left by ObstacleSpeed.
func (o *Obstacle) AdvancePosition() {
	o.rect.X -= ObstacleSpeed
}

// MaybeDestroy marks the obstacle dead once it is past the left margin.
func (o *Obstacle) MaybeDestroy() {
	if o.rect.X <= DespawnX {
		o.alive = false
	}
}

// Update runs one tick: animation, movement, removal check.
func (o *Obstacle) Update() {
	o.AdvanceAnimation()
	o.AdvancePosition()
	o.MaybeDestroy()
}

// Kind returns the obstacle variety.
func (o *Obstacle) Kind() Kind { return o.kind }

// Rect returns the collision rectangle.
func (o *Obstacle) Rect() core.Rect { return o.rect }

// Sprite returns the image to draw this tick.
func (o *Obstacle) Sprite() assets.Sprite { return o.sprite }

// Alive reports whether the obstacle is still in play.
func (o *Obstacle) Alive() bool { return o.alive }

// ObstacleSet holds the live obstacles in spawn order.
type ObstacleSet struct {
	items []*Obstacle
}

// NewObstacleSet creates an empty set.
func NewObstacleSet() *ObstacleSet {
	return &ObstacleSet{items: make([]*Obstacle, 0, 8)}
}

// Add inserts an obstacle.
func (s *ObstacleSet) Add(o *Obstacle) {
	s.items = append(s.items, o)
}

// Update advances every obstacle one tick and drops those that went off-screen.
func (s *ObstacleSet) Update() {
	live := s.items[:0]
	for _, o := range s.items {
		o.Update()
		if o.alive {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = live
}

// Collides reports whether r overlaps any obstacle.
func (s *ObstacleSet) Collides(r core.Rect) bool {
	for _, o := range s.items {
		if r.Intersects(o.rect) {
			return true
		}
	}
	return false
}

// Clear removes every obstacle.
func (s *ObstacleSet) Clear() {
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
}

// Len returns the number of live obstacles.
func (s *ObstacleSet) Len() int {
	return len(s.items)
}

// All returns the live obstacles. The slice is only valid until the next
// mutation of the set.
func (s *ObstacleSet) All() []*Obstacle {
	return s.items
}
