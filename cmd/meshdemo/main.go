// Command meshdemo builds a set of shape meshes concurrently and writes the
// packed vertex and index buffers to disk.
package main

import (
	"bytes"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/shapemesh"
)

func main() {
	var (
		aa       = flag.Float64("aa", 1, "anti-aliasing fringe width (0 disables)")
		precise  = flag.Bool("precise", false, "use the precise anti-aliasing strategy")
		workers  = flag.Int("workers", 0, "worker count (0 uses GOMAXPROCS)")
		vertices = flag.String("vertices", "", "write packed vertices to this file")
		indices  = flag.String("indices", "", "write packed indices to this file")
		verbose  = flag.Bool("v", false, "log degenerate geometry fallbacks")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	shapemesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	strategy := shapemesh.StrategyFast
	if *precise {
		strategy = shapemesh.StrategyPrecise
	}
	opts := []shapemesh.Option{
		shapemesh.WithAntiAliasing(*aa),
		shapemesh.WithStrategy(strategy),
	}

	shapes := demoShapes(opts)
	meshes := make([]*shapemesh.Mesh, len(shapes))
	jobs := make([]func(*shapemesh.Builder), len(shapes))
	for i, build := range shapes {
		m := shapemesh.NewMesh()
		meshes[i] = m
		jobs[i] = func(b *shapemesh.Builder) {
			ok, err := build.fn(b, m)
			if err != nil {
				log.Printf("%s: %v", build.name, err)
				return
			}
			if !ok {
				log.Printf("%s: no geometry produced", build.name)
			}
		}
	}

	batch := shapemesh.NewBatch(*workers)
	defer batch.Close()
	if err := batch.Rebuild(jobs); err != nil {
		log.Fatalf("rebuild: %v", err)
	}

	var vb, ib bytes.Buffer
	for i, m := range meshes {
		log.Printf("%-14s %5d vertices %5d triangles fringe=%v", shapes[i].name, m.VertexCount(), m.TriangleCount(), m.HasAA())
		vb.Write(m.VertexBytes())
		ib.Write(m.IndexBytes())
	}

	for _, out := range []struct {
		path string
		data []byte
	}{{*vertices, vb.Bytes()}, {*indices, ib.Bytes()}} {
		if out.path == "" {
			continue
		}
		if err := os.WriteFile(out.path, out.data, 0o644); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Wrote %d bytes to %s", len(out.data), out.path)
	}
}

type shape struct {
	name string
	fn   func(*shapemesh.Builder, *shapemesh.Mesh) (bool, error)
}

func demoShapes(opts []shapemesh.Option) []shape {
	fill := func(poly shapemesh.PolygonWithHoles, extra ...shapemesh.Option) func(*shapemesh.Builder, *shapemesh.Mesh) (bool, error) {
		return func(b *shapemesh.Builder, m *shapemesh.Mesh) (bool, error) {
			return b.Fill(m, poly, append(extra, opts...)...)
		}
	}
	return []shape{
		{"rectangle", fill(shapemesh.PolygonWithHoles{Outer: shapemesh.RectRing(50, 50, 150, 100)},
			shapemesh.WithColor(shapemesh.RGB(0.8, 0.2, 0.2)))},
		{"rounded rect", fill(shapemesh.PolygonWithHoles{Outer: shapemesh.RoundedRectRing(250, 50, 150, 100, 20, 8)},
			shapemesh.WithColor(shapemesh.RGB(0.2, 0.8, 0.2)))},
		{"star", fill(shapemesh.PolygonWithHoles{Outer: shapemesh.StarRing(525, 100, 60, 25, 5)},
			shapemesh.WithColor(shapemesh.Hex("#e6b800")))},
		{"donut", fill(shapemesh.PolygonWithHoles{
			Outer: shapemesh.EllipseRing(125, 300, 75, 75, 48),
			Holes: []shapemesh.Ring{shapemesh.EllipseRing(125, 300, 35, 35, 32)},
		}, shapemesh.WithColor(shapemesh.RGB(0.2, 0.2, 0.8)))},
		{"hexagon outline", func(b *shapemesh.Builder, m *shapemesh.Mesh) (bool, error) {
			ring := shapemesh.RegularPolygonRing(6, 325, 300, 70, 0)
			return b.Outline(m, ring, 8, append([]shapemesh.Option{shapemesh.WithJoin(shapemesh.JoinRound)}, opts...)...)
		}},
	}
}
