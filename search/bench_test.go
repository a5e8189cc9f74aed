package search_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/statespace/digraph"
	"github.com/katalvlaran/statespace/gridworld"
	"github.com/katalvlaran/statespace/search"
)

// BenchmarkSearch_Chain runs every strategy on a linear chain of N+1 vertices.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 2000
	g := digraph.New("v0", fmt.Sprintf("v%d", N))
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}

	for _, s := range strategies {
		b.Run(s.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = s.run(g)
			}
		})
	}
}

// BenchmarkSearch_OpenGrid crosses an empty M×M room corner to corner
// (M² states, ≈4·M² transitions).
func BenchmarkSearch_OpenGrid(b *testing.B) {
	const M = 100
	rows := make([]string, M)
	for y := range rows {
		rows[y] = strings.Repeat(" ", M)
	}
	rows[0] = "P" + rows[0][1:]
	rows[M-1] = rows[M-1][:M-1] + "."
	m, err := gridworld.Parse(rows)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("bfs", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = search.BreadthFirst[gridworld.Pos, gridworld.Dir](m)
		}
	})
	b.Run("ucs", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = search.UniformCost[gridworld.Pos, gridworld.Dir](m)
		}
	})
	b.Run("astar-manhattan", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = search.BestFirst(m, gridworld.Manhattan)
		}
	})
}

// BenchmarkSearch_Random runs every strategy on a dense seeded random graph.
func BenchmarkSearch_Random(b *testing.B) {
	g, _ := randomGraph(b, 7, 300, 0.05)

	for _, s := range strategies {
		b.Run(s.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = s.run(g)
			}
		})
	}
}
