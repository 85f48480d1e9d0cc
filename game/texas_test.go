package game

import "testing"

func TestTexas_UnleashRequiresCharge(t *testing.T) {
	s := newTestSession(t)
	holdSpawns(s)
	f := placeFreddie(s, 200, 200, 2)

	if s.UnleashTexasDonut() {
		t.Fatal("Expected unleash to fail with no charge")
	}
	if f.Satisfied || s.Texas.Active {
		t.Error("Expected nothing to change on a refused unleash")
	}
}

func TestTexas_UnleashFeedsEveryHungryFreddie(t *testing.T) {
	s := newTestSession(t)
	holdSpawns(s)
	s.Wave = 2
	s.Texas.Stock = 1
	s.Texas.Progress = 4

	hungry := []*Freddie{
		placeFreddie(s, 100, 100, 3),
		placeFreddie(s, 200, 200, 1),
		placeFreddie(s, 300, 300, 2),
	}
	already := placeFreddie(s, 400, 400, 1)
	already.Feed()

	if !s.UnleashTexasDonut() {
		t.Fatal("Expected unleash to succeed")
	}

	for i, f := range hungry {
		if !f.Satisfied {
			t.Errorf("Freddie %d still hungry", i)
		}
	}
	if s.Score != 3*100*2 {
		t.Errorf("Expected score %d, got %d", 3*100*2, s.Score)
	}
	if s.Texas.Stock != 0 || !s.Texas.Active {
		t.Errorf("Expected stock 0 and active, got stock %d active=%v", s.Texas.Stock, s.Texas.Active)
	}
	if s.Texas.Progress != 4 {
		t.Errorf("Expected progress untouched at 4, got %d", s.Texas.Progress)
	}
}

func TestTexas_NoReentryWhileActive(t *testing.T) {
	s := newTestSession(t)
	s.Texas.Stock = 2

	if !s.UnleashTexasDonut() {
		t.Fatal("Expected first unleash to succeed")
	}
	if s.UnleashTexasDonut() {
		t.Error("Expected second unleash to be refused while active")
	}
	if s.Texas.Stock != 1 {
		t.Errorf("Expected one charge left, got %d", s.Texas.Stock)
	}
}

func TestTexas_PhasesAndDuration(t *testing.T) {
	tx := NewTexasDonut(15, 90)
	tx.Stock = 1
	if !tx.activate() {
		t.Fatal("Expected activation")
	}

	tests := []struct {
		ticks int
		want  TexasPhase
	}{
		{0, TexasCharge},
		{19, TexasCharge},
		{20, TexasBurst},
		{49, TexasBurst},
		{50, TexasFade},
		{89, TexasFade},
		{90, TexasIdle},
	}

	elapsed := 0
	for _, tt := range tests {
		for elapsed < tt.ticks {
			tx.Advance()
			elapsed++
		}
		if got := tx.Phase(); got != tt.want {
			t.Errorf("after %d ticks: phase %s, want %s", tt.ticks, got, tt.want)
		}
	}
	if tx.Active {
		t.Error("Expected animation to end after its duration")
	}
}

func TestTexas_ProgressThreshold(t *testing.T) {
	tx := NewTexasDonut(15, 90)

	for i := 0; i < 14; i++ {
		if tx.AddProgress() {
			t.Fatalf("Unexpected charge at progress %d", i+1)
		}
	}
	if !tx.AddProgress() {
		t.Fatal("Expected the 15th Freddie to charge the Texas Donut")
	}
	if tx.Progress != 0 || tx.Stock != 1 {
		t.Errorf("Expected progress 0 stock 1, got %d and %d", tx.Progress, tx.Stock)
	}

	for i := 0; i < 15; i++ {
		tx.AddProgress()
	}
	if tx.Stock != 2 {
		t.Errorf("Expected charges to stockpile, got %d", tx.Stock)
	}
}

func TestTexas_Fraction(t *testing.T) {
	tx := NewTexasDonut(15, 90)
	tx.Progress = 6
	if !almostEqual(tx.Fraction(), 0.4, floatTolerance) {
		t.Errorf("Expected 0.4, got %f", tx.Fraction())
	}
}

func TestTexas_PhaseProgress(t *testing.T) {
	tx := NewTexasDonut(15, 90)
	tx.Active = true

	tests := []struct {
		clock int
		want  float64
	}{
		{0, 0},
		{10, 0.5},
		{20, 0},
		{35, 0.5},
		{50, 0},
		{70, 0.5},
		{89, 39.0 / 40},
	}

	for _, tt := range tests {
		tx.Clock = tt.clock
		if got := tx.PhaseProgress(); !almostEqual(got, tt.want, floatTolerance) {
			t.Errorf("clock %d: PhaseProgress = %v, want %v", tt.clock, got, tt.want)
		}
	}

	tx.Active = false
	if got := tx.PhaseProgress(); got != 0 {
		t.Errorf("idle PhaseProgress = %v, want 0", got)
	}
}

func TestTexas_FedFreddiesDoNotChargeMeter(t *testing.T) {
	s := newTestSession(t)
	holdSpawns(s)
	s.Texas.Stock = 1
	for i := 0; i < 20; i++ {
		placeFreddie(s, float64(50+i*30), 200, 1)
	}

	s.UnleashTexasDonut()
	for i := 0; i < SatisfiedTicks+2; i++ {
		s.Tick()
	}

	if len(s.Freddies) != 0 {
		t.Fatalf("Expected all fed Freddies gone, got %d", len(s.Freddies))
	}
	if s.Texas.Progress != 0 || s.Texas.Stock != 0 {
		t.Errorf("Expected meter untouched, got progress %d stock %d", s.Texas.Progress, s.Texas.Stock)
	}
}

func TestTexas_ClockAdvancesWithTicks(t *testing.T) {
	s := newTestSession(t)
	holdSpawns(s)
	s.Texas.Stock = 1
	s.UnleashTexasDonut()

	for i := 0; i < s.Config.TexasTicks; i++ {
		s.Tick()
	}
	if s.Texas.Active {
		t.Error("Expected the Texas Donut to finish after its duration")
	}
	if s.HUD().TexasReady != (s.Texas.Stock > 0) {
		t.Error("HUD readiness disagrees with stock")
	}
}
