// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.prof

package main

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/edwinsyarief/flatecs"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	// CPU Profiling
	f, err := os.Create("cpu.prof")
	if err != nil {
		log.Fatal(err)
	}
	_ = pprof.StartCPUProfile(f)

	count := 50
	iters := 1000
	entities := 100000
	if err := run(count, iters, entities); err != nil {
		log.Fatal(err)
	}
	pprof.StopCPUProfile()

	// Memory Profiling
	memFile, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) error {
	for range rounds {
		w, err := flatecs.NewWorld(flatecs.WithInitialCapacity(numEntities))
		if err != nil {
			return err
		}
		id1, _ := flatecs.Register[comp1](w)
		id2, _ := flatecs.Register[comp2](w)
		id3, _ := flatecs.Register[comp3](w)
		id4, _ := flatecs.Register[comp4](w)
		even, _ := w.RegisterFlag()
		if err := w.CommitLayout(); err != nil {
			return err
		}
		ids, err := w.CreateEntities(numEntities)
		if err != nil {
			return err
		}
		for i, e := range ids {
			_ = flatecs.AddAs(w, e, id1, comp1{V: 1})
			_ = flatecs.AddAs(w, e, id2, comp2{V: 1})
			if i%2 == 0 {
				_ = flatecs.AddAs(w, e, id3, comp3{})
				_ = w.SetFlag(e, even)
			} else {
				_ = flatecs.AddAs(w, e, id4, comp4{})
			}
		}

		mask := flatecs.Filter(id1, id2, id3)
		flags := flatecs.Filter(even)
		for range iters {
			res := w.RunQuery(mask, flags)
			for _, e := range res.Entities {
				c1, _ := flatecs.GetAs[comp1](w, e, id1)
				c2, _ := flatecs.GetAs[comp2](w, e, id2)
				c1.V += c2.V
				c1.W += c2.W
			}
		}
		w.Free()
	}
	return nil
}
