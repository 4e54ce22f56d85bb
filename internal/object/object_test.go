package object

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

const frame = time.Second / 60

// scriptedRand replays fixed IntN results.
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func ctx(dt time.Duration, sig Signals) UpdateContext {
	return UpdateContext{Delta: dt, Signals: sig}
}

func TestPlayer_Update(t *testing.T) {
	tests := []struct {
		name  string
		sig   Signals
		wantX float64
	}{
		{"idle", Signals{}, 0},
		{"right", Signals{MoveRight: true}, 400},
		{"left", Signals{MoveLeft: true}, -400},
		{"both cancel", Signals{MoveLeft: true, MoveRight: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, -180)
			p.Update(ctx(time.Second, tt.sig))
			if !approx(p.X, tt.wantX) || p.Y != -180 {
				t.Errorf("position = (%v, %v), want (%v, -180)", p.X, p.Y, tt.wantX)
			}
		})
	}
}

func TestBullet_Move(t *testing.T) {
	b := NewBullet(0, -180)
	if b.Speed != 400 {
		t.Fatalf("Speed = %v, want 400", b.Speed)
	}

	b.Move(ctx(frame, Signals{}))

	if !approx(b.Speed, 400+10.0/60) {
		t.Errorf("Speed = %v, want ~400.1667", b.Speed)
	}
	if math.Abs(b.Y-(-173.33)) > 0.01 {
		t.Errorf("Y = %v, want ~-173.33", b.Y)
	}
	if hb := b.Hitbox(); hb.X != b.X || hb.Y != b.Y || hb.Radius != 20 {
		t.Errorf("Hitbox() = %+v, want centered on bullet with radius 20", hb)
	}
}

func TestBullet_ExpiresAtTwoSeconds(t *testing.T) {
	b := NewBullet(0, 0)

	for i := range 3 {
		if b.Update(ctx(500*time.Millisecond, Signals{})) {
			t.Fatalf("expired early on tick %d", i)
		}
	}
	if !b.Update(ctx(500*time.Millisecond, Signals{})) {
		t.Error("not expired after 2s")
	}
}

func TestNewEnemy_SizeFormulas(t *testing.T) {
	tests := []struct {
		size                  float64
		health, speed, radius float64
	}{
		{1.2, 72, 776, 84},
		{1.4, 98, 704, 98},
		{1.6, 128, 584, 112},
		{1.8, 162, 416, 126},
		{2.0, 200, 200, 140},
	}

	for _, tt := range tests {
		e := NewEnemy(0, 180, tt.size, true)
		if !approx(e.Health, tt.health) || !approx(e.Speed, tt.speed) || !approx(e.Hitbox().Radius, tt.radius) {
			t.Errorf("size %v: health=%v speed=%v radius=%v, want %v %v %v",
				tt.size, e.Health, e.Speed, e.Hitbox().Radius, tt.health, tt.speed, tt.radius)
		}
	}
}

func TestEnemy_BouncesAndStepsDown(t *testing.T) {
	e := NewEnemy(300, 180, 2.0, true) // 200 units/s

	e.Update(ctx(50*time.Millisecond, Signals{})) // x=310
	if e.Y != 180 || !e.MovingRight {
		t.Fatalf("turned early: x=%v y=%v right=%v", e.X, e.Y, e.MovingRight)
	}

	e.Update(ctx(100*time.Millisecond, Signals{})) // x=330
	if e.MovingRight || e.Y != 130 {
		t.Errorf("after right bound: right=%v y=%v, want false 130", e.MovingRight, e.Y)
	}
	if hb := e.Hitbox(); hb.X != e.X || hb.Y != e.Y {
		t.Errorf("hitbox not following: %+v", hb)
	}

	e.X = -315
	e.Update(ctx(50*time.Millisecond, Signals{})) // x=-325
	if !e.MovingRight || e.Y != 80 {
		t.Errorf("after left bound: right=%v y=%v, want true 80", e.MovingRight, e.Y)
	}
}

func TestEnemy_DamageAndDeath(t *testing.T) {
	e := NewEnemy(0, 0, 1.2, false)
	for range 7 {
		e.Damage(10)
	}
	if e.IsDead() {
		t.Fatalf("dead with health %v", e.Health)
	}
	e.Damage(10)
	if !e.IsDead() {
		t.Errorf("alive with health %v", e.Health)
	}
}

func TestRandomEnemy_UsesRollAndDirection(t *testing.T) {
	rng := &scriptedRand{values: []int{0, 1}} // roll 1 -> size 1.2, moving right
	e := RandomEnemy(rng, 0, 180)

	if !approx(e.Size, 1.2) || !e.MovingRight {
		t.Errorf("size=%v right=%v, want 1.2 true", e.Size, e.MovingRight)
	}
	if e.X != 0 || e.Y != 180 {
		t.Errorf("position = (%v, %v), want (0, 180)", e.X, e.Y)
	}
}

func TestRandomEnemy_SizesInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := map[float64]bool{}
	for range 500 {
		e := RandomEnemy(rng, 0, 0)
		if e.Size < 1.2-1e-9 || e.Size > 2.0+1e-9 {
			t.Fatalf("size %v out of range", e.Size)
		}
		seen[math.Round(e.Size*10)/10] = true
	}
	if len(seen) != 5 {
		t.Errorf("saw %d distinct sizes, want 5", len(seen))
	}
}

func TestEnemySpawner_Cadence(t *testing.T) {
	s := NewEnemySpawner(&scriptedRand{values: []int{0}})

	spawned := 0
	for range 7 {
		if s.Update(ctx(700*time.Millisecond, Signals{})) != nil {
			spawned++
		}
	}
	if spawned != 2 {
		t.Errorf("spawned = %d, want 2", spawned)
	}
	if got := s.Timer().Elapsed(); got != 900*time.Millisecond {
		t.Errorf("carried = %v, want 900ms", got)
	}
}

func TestCollides(t *testing.T) {
	b := NewBullet(0, 0)
	e := NewEnemy(100, 0, 1.2, true) // radii 20 + 84

	if !Collides(b, e) || !Collides(e, b) {
		t.Error("overlapping hitboxes should collide both ways")
	}

	b.Move(ctx(time.Second, Signals{})) // y=410
	if Collides(b, e) {
		t.Error("bullet moved away but still collides")
	}
}
