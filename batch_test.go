package shapemesh

import (
	"errors"
	"sync"
	"testing"
)

func TestBatchRebuild(t *testing.T) {
	b := NewBatch(4)
	defer b.Close()

	if b.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", b.Workers())
	}

	meshes := make([]*Mesh, 32)
	jobs := make([]func(*Builder), len(meshes))
	for i := range meshes {
		m := NewMesh()
		meshes[i] = m
		n := 3 + i
		jobs[i] = func(bl *Builder) {
			poly := PolygonWithHoles{Outer: RegularPolygonRing(n, 0, 0, 10, 0)}
			if _, err := bl.Fill(m, poly, WithAntiAliasing(0.5)); err != nil {
				t.Errorf("Fill(%d) = %v", n, err)
			}
		}
	}
	jobs = append(jobs, nil)

	if err := b.Rebuild(jobs); err != nil {
		t.Fatalf("Rebuild() = %v", err)
	}
	for i, m := range meshes {
		n := 3 + i
		if !m.HasAA() {
			t.Errorf("mesh %d: HasAA() = false", i)
			continue
		}
		if m.AAIndexStart() != 3*(n-2) {
			t.Errorf("mesh %d: fill triangles = %d, want %d", i, m.AAIndexStart()/3, n-2)
		}
	}
}

func TestBatchClosed(t *testing.T) {
	b := NewBatch(1)
	b.Close()
	b.Close()
	if err := b.Rebuild([]func(*Builder){func(*Builder) {}}); !errors.Is(err, ErrBatchClosed) {
		t.Errorf("Rebuild() after Close = %v, want ErrBatchClosed", err)
	}
}

func TestBuilderPool(t *testing.T) {
	pool := NewBuilderPool()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := pool.Get()
			defer pool.Put(b)
			m := NewMesh()
			ok, err := b.Outline(m, RectRing(0, 0, float64(i+1), 1), 0.2)
			if err != nil || !ok {
				t.Errorf("Outline() = %v, %v", ok, err)
			}
		}()
	}
	wg.Wait()
	pool.Put(nil)
}
