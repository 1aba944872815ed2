package dash

import (
	"testing"

	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/core"
)

func TestNewObstacleBaselines(t *testing.T) {
	atlas := assets.NativeSizes{}

	tests := []struct {
		kind   Kind
		bottom int
		sprite assets.Sprite
	}{
		{KindFly, 195, assets.SpriteFly1},
		{KindSlime, 300, assets.SpriteSlime1},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			o := NewObstacle(tc.kind, 1000, atlas)

			if o.Rect().Bottom() != tc.bottom {
				t.Errorf("bottom = %d, expected %d", o.Rect().Bottom(), tc.bottom)
			}
			if cx, _ := o.Rect().Center(); cx != 1000 {
				t.Errorf("centre x = %d, expected 1000", cx)
			}
			if o.Sprite() != tc.sprite {
				t.Errorf("sprite = %s, expected %s", o.Sprite(), tc.sprite)
			}
			if !o.Alive() {
				t.Error("new obstacle should be alive")
			}
		})
	}
}

func TestObstacleMovesFivePerTick(t *testing.T) {
	o := NewObstacle(KindSlime, 1000, assets.NativeSizes{})

	for tick := 0; tick < 50; tick++ {
		before := o.Rect().X
		o.Update()
		if got := before - o.Rect().X; got != ObstacleSpeed {
			t.Fatalf("tick %d: moved %d, expected %d", tick, got, ObstacleSpeed)
		}
	}
}

func TestObstacleDestroyedAtLeftMargin(t *testing.T) {
	o := NewObstacle(KindFly, 0, assets.NativeSizes{})
	o.rect.X = DespawnX + ObstacleSpeed + 1

	o.Update()
	if !o.Alive() {
		t.Fatalf("obstacle at x=%d should still be alive", o.Rect().X)
	}

	o.Update()
	if o.Alive() {
		t.Errorf("obstacle at x=%d should be destroyed", o.Rect().X)
	}
}

func TestObstacleAnimationCycles(t *testing.T) {
	o := NewObstacle(KindSlime, 1000, assets.NativeSizes{})

	seen := map[assets.Sprite]bool{}
	for i := 0; i < 40; i++ {
		o.AdvanceAnimation()
		seen[o.Sprite()] = true
	}
	if !seen[assets.SpriteSlime1] || !seen[assets.SpriteSlime2] || len(seen) != 2 {
		t.Errorf("slime should cycle its two frames, saw %v", seen)
	}
}

func TestObstacleSetDropsOffscreen(t *testing.T) {
	atlas := assets.NativeSizes{}
	set := NewObstacleSet()

	near := NewObstacle(KindSlime, 0, atlas)
	near.rect.X = DespawnX + 3 // One step takes it past the margin
	far := NewObstacle(KindSlime, 1000, atlas)
	set.Add(near)
	set.Add(far)

	set.Update()

	if set.Len() != 1 || set.All()[0] != far {
		t.Fatalf("expected only the far obstacle to remain, got %d", set.Len())
	}
	for _, o := range set.All() {
		if o.Rect().X <= DespawnX {
			t.Errorf("obstacle lingering at x=%d", o.Rect().X)
		}
	}
}

func TestObstacleSetNoneLingerPastMargin(t *testing.T) {
	spawner := NewSpawner(7)
	atlas := assets.NativeSizes{}
	set := NewObstacleSet()

	for tick := 0; tick < 2000; tick++ {
		if tick%90 == 0 {
			set.Add(spawner.Spawn(atlas))
		}
		set.Update()
		for _, o := range set.All() {
			if o.Rect().X < DespawnX {
				t.Fatalf("tick %d: obstacle at x=%d", tick, o.Rect().X)
			}
		}
	}
}

func TestObstacleSetCollidesAndClear(t *testing.T) {
	atlas := assets.NativeSizes{}
	set := NewObstacleSet()
	set.Add(NewObstacle(KindSlime, 1000, atlas))
	set.Add(NewObstacle(KindSlime, PlayerX, atlas))
	set.Add(NewObstacle(KindFly, 500, atlas))

	player := NewPlayer(atlas, nil)
	if !set.Collides(player.Rect()) {
		t.Error("slime under the player should collide")
	}
	if set.Collides(core.NewRect(0, 0, 10, 10)) {
		t.Error("far corner should not collide")
	}

	set.Clear()
	if set.Len() != 0 {
		t.Errorf("Clear left %d obstacles", set.Len())
	}
}

func TestGroundedPlayerPassesUnderFly(t *testing.T) {
	atlas := assets.NativeSizes{}
	player := NewPlayer(atlas, nil)
	fly := NewObstacle(KindFly, PlayerX, atlas)

	if player.Rect().Intersects(fly.Rect()) {
		t.Errorf("fly %+v should clear grounded player %+v", fly.Rect(), player.Rect())
	}
}
