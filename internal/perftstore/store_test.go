package perftstore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") error: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	})
	return s
}

func TestStore_GetMissing(t *testing.T) {
	s := openMemory(t)

	_, found, err := s.Get(startFEN, 3)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if found {
		t.Error("Get() found = true on empty store; want false")
	}
}

func TestStore_PutGet(t *testing.T) {
	s := openMemory(t)

	want := Result{FEN: startFEN, Depth: 3, Nodes: 8902}
	if err := s.Put(want); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, found, err := s.Get(startFEN, 3)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !found {
		t.Fatal("Get() found = false after Put; want true")
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApproxTime(0)); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}

	if _, found, _ := s.Get(startFEN, 4); found {
		t.Error("Get() at another depth found = true; want false")
	}
}

func TestStore_KeyIgnoresClocks(t *testing.T) {
	s := openMemory(t)

	if err := s.Put(Result{FEN: startFEN, Depth: 2, Nodes: 400}); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, found, err := s.Get("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 7 31", 2)
	if err != nil || !found {
		t.Fatalf("Get() = found %v, err %v; want found", found, err)
	}
	if got.Nodes != 400 {
		t.Errorf("Nodes = %d; want 400", got.Nodes)
	}
}

func TestStore_Count(t *testing.T) {
	s := openMemory(t)

	calls := 0
	compute := func() uint64 {
		calls++
		return 197281
	}

	for i, wantCached := range []bool{false, true, true} {
		nodes, cached, err := s.Count(startFEN, 4, compute)
		if err != nil {
			t.Fatalf("Count() #%d error: %v", i, err)
		}
		if nodes != 197281 {
			t.Errorf("Count() #%d nodes = %d; want 197281", i, nodes)
		}
		if cached != wantCached {
			t.Errorf("Count() #%d cached = %v; want %v", i, cached, wantCached)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times; want 1", calls)
	}
}

func TestStore_List(t *testing.T) {
	s := openMemory(t)

	for depth, nodes := range []uint64{1, 20, 400} {
		if err := s.Put(Result{FEN: startFEN, Depth: depth, Nodes: nodes}); err != nil {
			t.Fatalf("Put() error: %v", err)
		}
	}

	results, err := s.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	var got []uint64
	for _, r := range results {
		got = append(got, r.Nodes)
	}
	if diff := cmp.Diff([]uint64{1, 20, 400}, got); diff != "" {
		t.Errorf("List() nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen_Directory(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error: %v", dir, err)
	}
	if err := s.Put(Result{FEN: startFEN, Depth: 1, Nodes: 20}); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()

	got, found, err := reopened.Get(startFEN, 1)
	if err != nil || !found || got.Nodes != 20 {
		t.Errorf("Get() after reopen = %+v, %v, %v; want 20 nodes", got, found, err)
	}
}
