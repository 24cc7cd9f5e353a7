package flatecs

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// QueryResult holds the entities matched by RunQuery in ascending ID order.
// The World owns it: the next RunQuery overwrites it.
type QueryResult struct {
	Entities []EntityID
	Count    int
}

// RunQuery scans every entity slot and collects the live entities whose
// component mask contains components and whose flag mask contains flags. The
// alive flag is always required, so deleted slots never match.
//
// The returned result is the World's shared buffer. Running another query
// overwrites it; use AppendQuery to keep results.
//
// Parameters:
//   - components: Components an entity must have, or Unfiltered.
//   - flags: Flags an entity must have, or DefaultFlags.
//
// Returns:
//   - The shared QueryResult.
func (w *World) RunQuery(components, flags Mask) *QueryResult {
	w.query.Entities = w.appendMatches(w.query.Entities[:0], components, flags)
	w.query.Count = len(w.query.Entities)
	return &w.query
}

// AppendQuery runs the same scan as RunQuery but appends matches to dst, so
// the result does not alias any World storage.
func (w *World) AppendQuery(dst []EntityID, components, flags Mask) []EntityID {
	return w.appendMatches(dst, components, flags)
}

// CountQuery returns the number of entities RunQuery would match without
// touching the result buffer.
func (w *World) CountQuery(components, flags Mask) int {
	if w.state != stateCommitted {
		return 0
	}
	flags = flags.With(AliveFlag)
	n := 0
	masks := w.entities.masks[:w.entities.count]
	fl := w.entities.flags[:w.entities.count]
	for i := range masks {
		if fl[i].Contains(flags) && masks[i].Contains(components) {
			n++
		}
	}
	return n
}

func (w *World) appendMatches(dst []EntityID, components, flags Mask) []EntityID {
	if w.state != stateCommitted {
		return dst
	}
	flags = flags.With(AliveFlag)
	masks := w.entities.masks[:w.entities.count]
	fl := w.entities.flags[:w.entities.count]
	for i := range masks {
		if fl[i].Contains(flags) && masks[i].Contains(components) {
			dst = append(dst, EntityID(i))
		}
	}
	return dst
}

// Bitmap copies the result into a roaring bitmap, which supports set algebra
// between the results of different queries.
func (r *QueryResult) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for _, id := range r.Entities[:r.Count] {
		bm.Add(uint32(id))
	}
	return bm
}

// Contains reports whether id is in the result.
func (r *QueryResult) Contains(id EntityID) bool {
	_, ok := slices.BinarySearch(r.Entities[:r.Count], id)
	return ok
}
