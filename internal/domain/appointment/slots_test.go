package appointment

import (
	"testing"
	"time"
)

func hm(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func TestBuildSlots_SkipsOccupiedAndClose(t *testing.T) {
	// segunda 09:00–12:00, ocupado 10:00–10:30, serviço de 30 min
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	open := hm(day, 9, 0)
	close := hm(day, 12, 0)

	busy := []Interval{
		{Start: hm(day, 10, 0), End: hm(day, 10, 30)},
	}

	slots := BuildSlots(open, close, 30*time.Minute, busy, day)

	want := []time.Time{
		hm(day, 9, 0),
		hm(day, 9, 15),
		hm(day, 9, 30),
		// 09:45 terminaria 10:15, dentro do ocupado; 10:00 e 10:15 idem
		hm(day, 10, 30),
		hm(day, 10, 45),
		hm(day, 11, 0),
		hm(day, 11, 15),
		hm(day, 11, 30),
		// 11:45 terminaria 12:15, depois do fechamento
	}

	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}

	for i := range want {
		if !slots[i].Equal(want[i]) {
			t.Fatalf("slot %d: expected %s, got %s", i, want[i], slots[i])
		}
	}
}

func TestBuildSlots_BackToBackIsNotOverlap(t *testing.T) {
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	open := hm(day, 9, 0)
	close := hm(day, 10, 0)

	// ocupado 09:30–10:00: um slot de 30 min às 09:00 encosta mas não conflita
	busy := []Interval{
		{Start: hm(day, 9, 30), End: hm(day, 10, 0)},
	}

	slots := BuildSlots(open, close, 30*time.Minute, busy, day)

	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d: %v", len(slots), slots)
	}
	if !slots[0].Equal(hm(day, 9, 0)) {
		t.Fatalf("expected 09:00, got %s", slots[0])
	}
}

func TestBuildSlots_IdenticalIntervalExcluded(t *testing.T) {
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	open := hm(day, 9, 0)
	close := hm(day, 10, 0)

	busy := []Interval{
		{Start: hm(day, 9, 0), End: hm(day, 9, 30)},
	}

	slots := BuildSlots(open, close, 30*time.Minute, busy, day)

	for _, s := range slots {
		if s.Equal(hm(day, 9, 0)) {
			t.Fatalf("identical interval must be excluded, got %v", slots)
		}
	}
	if len(slots) != 1 || !slots[0].Equal(hm(day, 9, 30)) {
		t.Fatalf("expected only 09:30, got %v", slots)
	}
}

func TestBuildSlots_SkipsPast(t *testing.T) {
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	open := hm(day, 9, 0)
	close := hm(day, 11, 0)

	now := hm(day, 9, 31)

	slots := BuildSlots(open, close, 30*time.Minute, nil, now)

	if len(slots) == 0 {
		t.Fatal("expected slots after now")
	}
	if !slots[0].Equal(hm(day, 9, 45)) {
		t.Fatalf("expected first slot 09:45, got %s", slots[0])
	}
}

func TestBuildSlots_Deterministic(t *testing.T) {
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	open := hm(day, 9, 0)
	close := hm(day, 12, 0)

	busy := []Interval{
		{Start: hm(day, 10, 0), End: hm(day, 11, 0)},
	}

	first := BuildSlots(open, close, 45*time.Minute, busy, day)
	second := BuildSlots(open, close, 45*time.Minute, busy, day)

	if len(first) != len(second) {
		t.Fatalf("non-deterministic output: %v vs %v", first, second)
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("non-deterministic output at %d", i)
		}
	}
}

func TestBuildSlots_DurationLongerThanWindow(t *testing.T) {
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)

	slots := BuildSlots(hm(day, 9, 0), hm(day, 10, 0), 2*time.Hour, nil, day)
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}

	slots = BuildSlots(hm(day, 9, 0), hm(day, 9, 0), 15*time.Minute, nil, day)
	if len(slots) != 0 {
		t.Fatalf("expected no slots for empty window, got %v", slots)
	}
}

func TestInterval_Overlaps(t *testing.T) {
	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	iv := Interval{Start: hm(day, 10, 0), End: hm(day, 11, 0)}

	if iv.Overlaps(hm(day, 9, 0), hm(day, 10, 0)) {
		t.Fatal("touching end should not overlap")
	}
	if iv.Overlaps(hm(day, 11, 0), hm(day, 12, 0)) {
		t.Fatal("touching start should not overlap")
	}
	if !iv.Overlaps(hm(day, 10, 30), hm(day, 10, 45)) {
		t.Fatal("contained interval must overlap")
	}
	if !iv.Overlaps(hm(day, 9, 30), hm(day, 10, 15)) {
		t.Fatal("crossing interval must overlap")
	}
}
