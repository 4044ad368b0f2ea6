// Comparison tool for validating animlist output quality and speed against
// another diff implementation.
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/accelthreat/animlist"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
)

func main() {
	testCases := []struct {
		name string
		a, b []string
	}{
		{
			name: "Fox example (common anchor word)",
			a:    []string{"The", "quick", "brown", "fox", "jumps"},
			b:    []string{"A", "slow", "red", "fox", "leaps"},
		},
		{
			name: "Prose with common words",
			a:    strings.Split("The quick brown fox jumps over the lazy dog in the park", " "),
			b:    strings.Split("A slow red fox leaps over the sleeping cat in the garden", " "),
		},
		{
			name: "Reordered-free list mutation",
			a:    strings.Split("alpha beta gamma delta epsilon zeta", " "),
			b:    strings.Split("alpha gamma NEW delta zeta omega", " "),
		},
	}

	// Add a large test case
	largeA := generateLargeList(500, 0)
	largeB := generateLargeList(500, 42) // Same structure, different seed for changes
	testCases = append(testCases, struct {
		name string
		a, b []string
	}{
		name: "Large list (500 items, scattered changes)",
		a:    largeA,
		b:    largeB,
	})

	cmp := animlist.StringsComparator()

	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)
		fmt.Printf("old: %d items, new: %d items\n", len(tc.a), len(tc.b))

		// Run the animlist pipeline
		start := time.Now()
		edits, err := animlist.ComputeEdits(context.Background(), tc.a, tc.b, cmp)
		if err != nil {
			fmt.Printf("ComputeEdits failed: %v\n", err)
			continue
		}
		ops, err := animlist.Coalesce(edits)
		if err != nil {
			fmt.Printf("Coalesce failed: %v\n", err)
			continue
		}
		animlistTime := time.Since(start)

		// Run go-diff (operates on strings, so join/split)
		dmp := godiff.New()
		start = time.Now()
		goDiffs := dmp.DiffMain(strings.Join(tc.a, "\n"), strings.Join(tc.b, "\n"), true)
		goDiffTime := time.Since(start)

		opStats := analyzeOps(ops)
		goDiffStats := analyzeGoDiff(goDiffs)

		fmt.Printf("\nanimlist: %v\n", animlistTime)
		fmt.Printf("  Raw edits: %d, coalesced ops: %d\n", len(edits), len(ops))
		fmt.Printf("  Insert: %d, Remove: %d, Replace: %d, Change: %d\n",
			opStats.insert, opStats.remove, opStats.replace, opStats.change)

		fmt.Printf("\ngo-diff: %v\n", goDiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
			goDiffStats.total, goDiffStats.equal, goDiffStats.delete, goDiffStats.insert)

		// Show detailed output for small cases
		if len(tc.a) <= 20 {
			fmt.Println("\nanimlist ops:")
			for _, op := range ops {
				fmt.Printf("  %v\n", op)
			}
		}
	}
}

type opStats struct {
	insert, remove, replace, change int
}

func analyzeOps(ops []animlist.Op) opStats {
	var s opStats
	for _, op := range ops {
		switch op.Kind {
		case animlist.OpInsert:
			s.insert++
		case animlist.OpRemove:
			s.remove++
		case animlist.OpReplace:
			s.replace++
		case animlist.OpChange:
			s.change++
		}
	}
	return s
}

type goDiffStats struct {
	total, equal, delete, insert int
}

func analyzeGoDiff(diffs []godiff.Diff) goDiffStats {
	var s goDiffStats
	s.total = len(diffs)
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.equal++
		case godiff.DiffDelete:
			s.delete++
		case godiff.DiffInsert:
			s.insert++
		}
	}
	return s
}

func generateLargeList(items int, seed int) []string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, items)
	for i := 0; i < items; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	// Introduce some changes based on seed
	for i := seed % 10; i < items; i += 10 + seed%5 {
		result[i] = "CHANGED ITEM " + fmt.Sprint(i)
	}

	return result
}
