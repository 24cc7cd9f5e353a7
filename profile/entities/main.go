// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"log"

	"github.com/edwinsyarief/flatecs"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	if err := run(count, iters, entities); err != nil {
		log.Fatal(err)
	}
	p.Stop()
}

func run(rounds, iters, numEntities int) error {
	for range rounds {
		w, err := flatecs.NewWorld(flatecs.WithInitialCapacity(numEntities))
		if err != nil {
			return err
		}
		id1, err := flatecs.Register[comp1](w)
		if err != nil {
			return err
		}
		id2, err := flatecs.Register[comp2](w)
		if err != nil {
			return err
		}
		if err := w.CommitLayout(); err != nil {
			return err
		}
		mask := flatecs.Filter(id1, id2)
		entities := make([]flatecs.EntityID, 0, numEntities)

		for range iters {
			ids, err := w.CreateEntities(numEntities)
			if err != nil {
				return err
			}
			for _, e := range ids {
				_ = flatecs.AddAs(w, e, id1, comp1{V: 1})
				_ = flatecs.AddAs(w, e, id2, comp2{V: 2, W: 3})
			}
			entities = w.AppendQuery(entities[:0], mask, flatecs.DefaultFlags)
			for _, e := range entities {
				c1, _ := flatecs.GetAs[comp1](w, e, id1)
				c2, _ := flatecs.GetAs[comp2](w, e, id2)
				c1.V += c2.V
				c1.W += c2.W
			}
			w.DeleteEntities(entities...)
		}
		w.Free()
	}
	return nil
}
