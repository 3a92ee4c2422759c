package runner

import "testing"

func TestWorldInsertAssignsUniqueIDs(t *testing.T) {
	w := NewWorld()
	seen := make(map[EntityID]bool)
	for i := 0; i < 10; i++ {
		id := w.Insert(Entity{Kind: KindFood, ID: 999})
		if id == 0 || seen[id] {
			t.Fatalf("Insert returned duplicate or zero id %d", id)
		}
		seen[id] = true
	}
	if w.Len() != 10 {
		t.Errorf("Len() = %d, want 10", w.Len())
	}
}

func TestWorldRemove(t *testing.T) {
	w := NewWorld()
	a := w.Insert(Entity{Kind: KindFood})
	b := w.Insert(Entity{Kind: KindEnemy})
	c := w.Insert(Entity{Kind: KindGoldenFood})

	if !w.Remove(b) {
		t.Fatal("Remove of live entity failed")
	}
	if w.Remove(b) {
		t.Error("Remove of destroyed entity should report false")
	}
	if _, ok := w.Get(b); ok {
		t.Error("destroyed entity still reachable")
	}

	got := w.Entities()
	if len(got) != 2 || got[0].ID != a || got[1].ID != c {
		t.Errorf("Entities() = %+v, want spawn order kept", got)
	}

	// IDs are not reused.
	if d := w.Insert(Entity{}); d == a || d == b || d == c {
		t.Errorf("Insert reused id %d", d)
	}
}

func TestWorldRemoveIfAndPurge(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 6; i++ {
		kind := KindFood
		if i%2 == 0 {
			kind = KindEnemy
		}
		w.Insert(Entity{Kind: kind, X: float64(i)})
	}

	n := w.RemoveIf(func(e *Entity) bool { return e.Kind == KindEnemy })
	if n != 3 || w.Count(KindEnemy) != 0 || w.Count(KindFood) != 3 {
		t.Errorf("RemoveIf removed %d, left enemies=%d food=%d", n, w.Count(KindEnemy), w.Count(KindFood))
	}

	if n := w.Purge(); n != 3 {
		t.Errorf("Purge() = %d, want 3", n)
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d after purge", w.Len())
	}
	if n := w.Purge(); n != 0 {
		t.Errorf("second Purge() = %d, want 0", n)
	}
}

func TestWorldMove(t *testing.T) {
	w := NewWorld()
	fast := w.Insert(Entity{X: 10, Speed: 5})
	still := w.Insert(Entity{X: 10, Speed: 0})

	w.Move(0.5)

	if e, _ := w.Get(fast); e.X != 7.5 {
		t.Errorf("fast X = %v, want 7.5", e.X)
	}
	if e, _ := w.Get(still); e.X != 10 {
		t.Errorf("still X = %v, want 10", e.X)
	}
}

func TestWorldEntitiesIsSnapshot(t *testing.T) {
	w := NewWorld()
	id := w.Insert(Entity{X: 1})

	snap := w.Entities()
	snap[0].X = 100
	w.Purge()

	if len(snap) != 1 {
		t.Error("purge should not affect an earlier snapshot")
	}
	if _, ok := w.Get(id); ok {
		t.Error("entity survived purge")
	}
}

func TestWorldEachInSpawnOrder(t *testing.T) {
	w := NewWorld()
	w.Insert(Entity{Kind: KindEnemy})
	w.Insert(Entity{Kind: KindFood})
	w.Insert(Entity{Kind: KindGoldenFood})

	var kinds []Kind
	w.Each(func(e Entity) { kinds = append(kinds, e.Kind) })

	want := []Kind{KindEnemy, KindFood, KindGoldenFood}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d entities, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
	if w.Count(KindFood) != 1 {
		t.Errorf("Count(food) = %d, want 1", w.Count(KindFood))
	}
}
