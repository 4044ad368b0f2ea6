// Demo driver: feeds a sequence of list snapshots through a Dispatcher wired
// to a console controller, then hammers it with rapid redispatches to show
// the single-flight discard behavior.
package main

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/accelthreat/animlist"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type item = animlist.Entry[int, string]

// consoleController prints every notification the way a list view would
// consume it.
type consoleController struct{}

func (consoleController) NotifyInsertedRange(pos, count int) {
	fmt.Printf("  insert   pos=%d count=%d\n", pos, count)
}

func (consoleController) NotifyRemovedRange(pos, count int, old animlist.ItemMaker[string]) {
	fmt.Printf("  remove   pos=%d count=%d outgoing=%q\n", pos, count, span(old, count))
}

func (consoleController) NotifyReplacedRange(pos, removeCount, insertCount int, old animlist.ItemMaker[string]) {
	fmt.Printf("  replace  pos=%d remove=%d insert=%d outgoing=%q\n", pos, removeCount, insertCount, span(old, removeCount))
}

func (consoleController) NotifyChangedRange(pos, count int, old animlist.ItemMaker[string]) {
	fmt.Printf("  change   pos=%d count=%d outgoing=%q\n", pos, count, span(old, count))
}

func (consoleController) DispatchChanges() {
	fmt.Println("  -- dispatch changes --")
}

func span(old animlist.ItemMaker[string], count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = old(i)
	}
	return out
}

func build(list []item, index int, kind animlist.BuildKind) string {
	e := list[index]
	return fmt.Sprintf("%s#%d[%s]", e.Value, e.ID, kind)
}

func main() {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	initial := []item{{ID: 1, Value: "alpha"}, {ID: 2, Value: "beta"}, {ID: 3, Value: "gamma"}}
	d := animlist.NewDispatcher(
		consoleController{},
		animlist.EntryComparator[int, string](),
		build,
		initial,
		animlist.WithLogger(log),
	)

	transitions := [][]item{
		{{ID: 1, Value: "alpha"}, {ID: 3, Value: "gamma"}, {ID: 4, Value: "delta"}},          // remove beta, append delta
		{{ID: 1, Value: "alpha"}, {ID: 5, Value: "zeta"}, {ID: 4, Value: "delta"}},           // gamma slot swapped for zeta
		{{ID: 1, Value: "ALPHA"}, {ID: 5, Value: "zeta"}, {ID: 4, Value: "delta"}, {ID: 6, Value: "o"}}, // alpha changed, one appended
	}

	ctx := context.Background()
	for i, next := range transitions {
		fmt.Printf("\ntransition %d: -> %v\n", i+1, ids(next))
		ops, err := d.Dispatch(next).Wait(ctx)
		if err != nil {
			fmt.Printf("  discarded: %v\n", err)
			continue
		}
		fmt.Print(litter.Sdump(ops), "\n")
	}

	// Rapid redispatch: issue many snapshots concurrently with no waiting in
	// between. All but the last-issued result are discarded.
	fmt.Println("\nrapid redispatch:")
	var superseded atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < 20; i++ {
		next := append([]item{{ID: 100 + i, Value: "burst"}}, d.CurrentList()...)
		fut := d.Dispatch(next)
		g.Go(func() error {
			_, err := fut.Wait(gctx)
			if errors.Is(err, animlist.ErrSuperseded) {
				superseded.Add(1)
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Println("stress error:", err)
	}
	fmt.Printf("superseded results discarded: %d/20\n", superseded.Load())
	fmt.Printf("final list: %v\n", ids(d.CurrentList()))
}

func ids(list []item) []int {
	out := make([]int, len(list))
	for i, e := range list {
		out[i] = e.ID
	}
	return out
}
