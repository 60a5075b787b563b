package meteor

import (
	"testing"

	"github.com/arcadeforge/meteorstorm/internal/core"
)

func TestSpawnMeteorBounds(t *testing.T) {
	g := newTestGame(7)
	g.startGame()

	for i := 0; i < 200; i++ {
		for j := range g.meteors {
			g.meteors[j].Active = false
		}
		g.meteorsAlive = 0
		g.spawnMeteor()

		m := g.meteors[0]
		if !m.Active {
			t.Fatal("spawn into an empty pool failed")
		}
		if m.X < 2 || m.X > 35 {
			t.Fatalf("spawn X = %d, out of [2,35]", m.X)
		}
		if m.Y != TopRow {
			t.Fatalf("spawn Y = %d, want %d", m.Y, TopRow)
		}
		if m.Size != SizeLarge || m.HP != 2 {
			t.Fatalf("spawn size=%v hp=%d, want large with 2 hp", m.Size, m.HP)
		}
		if m.Drift < -1 || m.Drift > 1 {
			t.Fatalf("spawn drift = %d", m.Drift)
		}
	}
}

func TestSpawnSpeedRamp(t *testing.T) {
	cases := []struct {
		wave     int
		min, max int
	}{
		{1, 1, 1},
		{2, 1, 1},
		{3, 1, 2},
		{5, 2, 2},
		{7, 2, 3},
		{12, 2, 3},
	}

	for _, tc := range cases {
		g := newTestGame(99)
		g.startGame()
		g.wave = tc.wave

		for i := 0; i < 100; i++ {
			g.meteors[0].Active = false
			g.meteorsAlive = 0
			g.spawnMeteor()
			if s := g.meteors[0].Speed; s < tc.min || s > tc.max {
				t.Fatalf("wave %d: speed %d outside [%d,%d]", tc.wave, s, tc.min, tc.max)
			}
		}
	}
}

func TestSpawnFullPoolDropsSilently(t *testing.T) {
	g := newTestGame(7)
	g.startGame()
	for i := range g.meteors {
		g.meteors[i].Active = true
	}
	g.meteorsAlive = MaxMeteors
	spawned := g.meteorsSpawned

	g.spawnMeteor()
	if g.meteorsAlive != MaxMeteors || g.meteorsSpawned != spawned {
		t.Error("spawn into a full pool changed counters")
	}
}

func TestSplitProducesTwoSmallChildren(t *testing.T) {
	g := newTestGame(7)
	g.startGame()
	parent := Meteor{Active: true, Size: SizeLarge, X: 10, Y: 8, Speed: 2, HP: 0}

	g.splitMeteor(parent)

	var children []Meteor
	for _, m := range g.meteors {
		if m.Active {
			children = append(children, m)
		}
	}
	if len(children) != 2 {
		t.Fatalf("split produced %d children, want 2", len(children))
	}

	left, right := children[0], children[1]
	if left.X != 9 || left.Drift != -1 {
		t.Errorf("left child X=%d drift=%d, want 9/-1", left.X, left.Drift)
	}
	if right.X != 12 || right.Drift != 1 {
		t.Errorf("right child X=%d drift=%d, want 12/+1", right.X, right.Drift)
	}
	for _, c := range children {
		if c.Size != SizeSmall || c.HP != 1 {
			t.Errorf("child size=%v hp=%d, want small with 1 hp", c.Size, c.HP)
		}
		if c.Y != parent.Y || c.Speed != parent.Speed {
			t.Errorf("child Y=%d speed=%d, want parent's %d/%d", c.Y, c.Speed, parent.Y, parent.Speed)
		}
	}
}

func TestSplitClampsAtEdges(t *testing.T) {
	g := newTestGame(7)
	g.startGame()

	g.splitMeteor(Meteor{Size: SizeLarge, X: 1, Y: 5, Speed: 1})
	if g.meteors[0].X != 1 {
		t.Errorf("left child at parent X=1 spawned at %d, want clamp to 1", g.meteors[0].X)
	}

	g2 := newTestGame(7)
	g2.startGame()
	g2.splitMeteor(Meteor{Size: SizeLarge, X: FieldW - 3, Y: 5, Speed: 1})
	if g2.meteors[1].X != FieldW-3 {
		t.Errorf("right child at parent X=%d spawned at %d, want clamp to %d",
			FieldW-3, g2.meteors[1].X, FieldW-3)
	}
}

func TestSplitPartialPool(t *testing.T) {
	g := newTestGame(7)
	g.startGame()
	for i := 1; i < MaxMeteors; i++ {
		g.meteors[i].Active = true
	}
	g.meteorsAlive = MaxMeteors - 1

	g.splitMeteor(Meteor{Size: SizeLarge, X: 10, Y: 8, Speed: 1})
	if g.meteorsAlive != MaxMeteors {
		t.Errorf("alive = %d, want %d (one child in the single free slot)",
			g.meteorsAlive, MaxMeteors)
	}
}

func TestMeteorThrottle(t *testing.T) {
	g := newTestGame(7)
	g.startGame()
	g.meteors[0] = Meteor{Active: true, Size: SizeSmall, X: 10, Y: 5, Speed: 1, HP: 1}
	g.meteorsAlive = 1

	// Speed 1 moves once every 3 frames.
	moves := 0
	startY := g.meteors[0].Y
	for f := uint64(1); f <= 12; f++ {
		g.frame = f
		g.moveMeteors()
	}
	moves = g.meteors[0].Y - startY
	if moves != 4 {
		t.Errorf("speed-1 meteor moved %d rows in 12 frames, want 4", moves)
	}
}

func TestDriftReflectsAtWalls(t *testing.T) {
	g := newTestGame(7)
	g.startGame()
	g.meteors[0] = Meteor{Active: true, Size: SizeSmall, X: 2, Y: 5, Drift: -1, Speed: 3, HP: 1}
	g.meteorsAlive = 1

	g.frame = 1
	g.moveMeteors()
	if g.meteors[0].X != 1 || g.meteors[0].Drift != 1 {
		t.Errorf("at left wall: X=%d drift=%d, want 1/+1", g.meteors[0].X, g.meteors[0].Drift)
	}

	maxX := FieldW - 2
	g.meteors[0] = Meteor{Active: true, Size: SizeSmall, X: maxX - 1, Y: 5, Drift: 1, Speed: 3, HP: 1}
	g.frame = 2
	g.moveMeteors()
	if g.meteors[0].X != maxX || g.meteors[0].Drift != -1 {
		t.Errorf("at right wall: X=%d drift=%d, want %d/-1", g.meteors[0].X, g.meteors[0].Drift, maxX)
	}
}

func TestMeteorConsumedByShieldTile(t *testing.T) {
	g := newTestGame(7)
	g.startGame()
	tiles := g.shieldTileCount()

	bx := shieldBunkerX(0)
	g.meteors[0] = Meteor{Active: true, Size: SizeSmall, X: bx, Y: ShieldRow - 1, Speed: 3, HP: 1}
	g.meteorsAlive = 1

	g.frame = 1
	g.moveMeteors()

	if g.meteors[0].Active {
		t.Error("meteor survived a shield impact")
	}
	if g.meteorsAlive != 0 {
		t.Errorf("alive = %d, want 0", g.meteorsAlive)
	}
	if got := g.shieldTileCount(); got != tiles-1 {
		t.Errorf("shield tiles = %d, want %d", got, tiles-1)
	}
	if g.field.OwnerAt(bx, ShieldRow) == core.OwnerShield {
		t.Error("impacted tile still shield-owned")
	}
}

func TestMeteorReachingShipKills(t *testing.T) {
	g := newTestGame(7)
	g.startGame()
	g.meteors[0] = Meteor{
		Active: true, Size: SizeSmall,
		X: toCell(g.shipX), Y: ShipRow - 1, Speed: 3, HP: 1,
	}
	g.meteorsAlive = 1

	g.frame = 1
	g.moveMeteors()

	if g.Phase() != PhaseDying {
		t.Fatalf("phase = %v, want dying", g.Phase())
	}
	if g.meteorsAlive != 0 {
		t.Errorf("alive = %d, want 0", g.meteorsAlive)
	}
}

func TestMeteorOffBottomExpiresSilently(t *testing.T) {
	g := newTestGame(7)
	g.startGame()
	// Far from the ship so the proximity check cannot trigger.
	g.shipX = shipMinX
	g.meteors[0] = Meteor{Active: true, Size: SizeSmall, X: FieldW - 2, Y: FieldH - 2, Speed: 3, HP: 1}
	g.meteorsAlive = 1
	score := g.Score()

	g.frame = 1
	g.moveMeteors()

	if g.meteors[0].Active {
		t.Error("meteor survived past the bottom edge")
	}
	if g.Score() != score {
		t.Error("off-bottom expiry changed the score")
	}
	if g.Phase() != PhasePlay {
		t.Errorf("phase = %v, want play", g.Phase())
	}
}

func TestShieldLayout(t *testing.T) {
	g := newTestGame(7)
	g.startGame()

	// 4 bunkers, 4x2 tiles each, minus a 2-tile notch.
	want := ShieldCount * (ShieldWidth*2 - 2)
	if got := g.shieldTileCount(); got != want {
		t.Fatalf("intact tiles = %d, want %d", got, want)
	}

	bx := shieldBunkerX(1)
	if g.field.OwnerAt(bx+1, ShieldRow+1) != core.OwnerEmpty {
		t.Error("notch cell is not empty")
	}
	if g.field.OwnerAt(bx, ShieldRow+1) != core.OwnerShield {
		t.Error("bunker corner is not shield-owned")
	}
}

func TestExplosionLifecycle(t *testing.T) {
	g := newTestGame(7)
	g.startGame()

	g.showExplosion(15, 10)
	if g.expCount != 1 {
		t.Fatalf("expCount = %d, want 1", g.expCount)
	}
	if g.field.OwnerAt(15, 10) != core.OwnerExplosion {
		t.Fatal("explosion cell not claimed")
	}

	for i := 0; i < explosionTTL; i++ {
		g.updateExplosions()
	}
	g.updateExplosions()

	if g.expCount != 0 {
		t.Errorf("expCount = %d after TTL, want 0", g.expCount)
	}
	if g.field.OwnerAt(15, 10) != core.OwnerEmpty {
		t.Error("explosion cell not released after TTL")
	}
}

func TestExplosionRespectsReclaimedCell(t *testing.T) {
	g := newTestGame(7)
	g.startGame()

	g.showExplosion(15, 10)
	// Another subsystem takes the cell mid-life.
	g.field.Set(15, 10, GlyphShield, core.ColorGreen, core.OwnerShield)

	for i := 0; i < explosionTTL+1; i++ {
		g.updateExplosions()
	}

	if g.field.OwnerAt(15, 10) != core.OwnerShield {
		t.Error("expiring explosion clobbered a reclaimed cell")
	}
}

func TestExplosionPoolOverflow(t *testing.T) {
	g := newTestGame(7)
	g.startGame()

	for i := 0; i < MaxExplosions+5; i++ {
		g.showExplosion(i+2, 10)
	}
	if g.expCount != MaxExplosions {
		t.Errorf("expCount = %d, want cap %d", g.expCount, MaxExplosions)
	}
}

func TestStarsOnlyTouchOwnCells(t *testing.T) {
	g := newTestGame(7)
	g.startGame()

	// Park a meteor glyph where a star would land.
	g.field.Set(g.stars[0].X, g.stars[0].Y, GlyphSmall1, core.ColorBrown, core.OwnerMeteor)

	for f := uint64(1); f < 200; f++ {
		g.frame = f
		g.updateStars()
	}

	for y := 0; y < FieldH; y++ {
		for x := 0; x < FieldW; x++ {
			o := g.field.OwnerAt(x, y)
			if o == core.OwnerStar && (y < TopRow || y >= ShieldRow) {
				t.Fatalf("star glyph outside the sky band at (%d,%d)", x, y)
			}
		}
	}
	if g.field.OwnerAt(g.stars[0].X, g.stars[0].Y) == core.OwnerStar {
		// Fine if the star moved on; the meteor cell itself must be intact
		// only if the star never legally claimed it after the meteor left.
		t.Log("cell reclaimed by a star after scrolling past")
	}
}
