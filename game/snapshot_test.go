package game

import "testing"

func TestSnapshot_CopiesState(t *testing.T) {
	s := newTestSession(t)
	holdSpawns(s)
	placeFreddie(s, 100, 100, 2)
	placeBox(s, DonutBoxKind, 200, 200)
	placeBox(s, LifeBoxKind, 300, 200)
	s.Launch(400, 0)
	s.burst(50, 50, TintGold, 3)

	var snap Snapshot
	s.Snapshot(&snap)

	if len(snap.Freddies) != 1 || len(snap.Powerups) != 2 || len(snap.Donuts) != 1 || len(snap.Effects) != 3 {
		t.Fatalf("Unexpected counts: %d freddies %d powerups %d donuts %d effects",
			len(snap.Freddies), len(snap.Powerups), len(snap.Donuts), len(snap.Effects))
	}
	if snap.HUD.Donuts != s.Donuts || snap.HUD.Lives != 3 || snap.HUD.Wave != 1 {
		t.Errorf("HUD mismatch: %+v", snap.HUD)
	}
	if snap.Field.Width != s.Config.Width {
		t.Errorf("Expected field width %f, got %f", s.Config.Width, snap.Field.Width)
	}

	// Mutating the snapshot must not touch the session.
	snap.Freddies[0].Y = 9999
	if s.Freddies[0].Y == 9999 {
		t.Error("Expected snapshot to hold copies")
	}
}

func TestSnapshot_ReusesSlices(t *testing.T) {
	s := newTestSession(t)
	holdSpawns(s)
	placeFreddie(s, 100, 100, 1)
	placeFreddie(s, 200, 100, 1)

	var snap Snapshot
	s.Snapshot(&snap)
	first := &snap.Freddies[0]

	s.Freddies = s.Freddies[:1]
	s.Snapshot(&snap)

	if len(snap.Freddies) != 1 {
		t.Fatalf("Expected 1 Freddie, got %d", len(snap.Freddies))
	}
	if &snap.Freddies[0] != first {
		t.Error("Expected the backing array to be reused")
	}
}

func TestHUD_TexasStatus(t *testing.T) {
	s := newTestSession(t)
	s.Texas.Progress = 7
	s.Texas.Stock = 1

	h := s.HUD()
	if !h.TexasReady || h.TexasProgress != 7 || h.TexasRequired != 15 {
		t.Errorf("Unexpected Texas HUD: %+v", h)
	}

	s.UnleashTexasDonut()
	h = s.HUD()
	if h.TexasReady || !h.TexasActive || h.TexasPhase != TexasCharge {
		t.Errorf("Expected active charge phase, got %+v", h)
	}
}
