package dash

import (
	"math/rand"
)

// spawnTable yields a fly one time in four.
var spawnTable = [...]Kind{KindFly, KindSlime, KindSlime, KindSlime}

// Spawner creates obstacles with a seeded RNG so runs are reproducible.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// DrawKind picks an obstacle kind from the weighted table.
func (s *Spawner) DrawKind() Kind {
	return spawnTable[s.rng.Intn(len(spawnTable))]
}

// SpawnX picks a starting x uniformly in [SpawnMinX, SpawnMaxX].
func (s *Spawner) SpawnX() int {
	return SpawnMinX + s.rng.Intn(SpawnMaxX-SpawnMinX+1)
}

// Spawn creates one obstacle just past the right edge of the viewport.
func (s *Spawner) Spawn(atlas Atlas) *Obstacle {
	kind := s.DrawKind()
	return NewObstacle(kind, s.SpawnX(), atlas)
}
