package drc

import (
	"github.com/Jimyzzp/LibrePCB/pkg/board"
	"github.com/Jimyzzp/LibrePCB/pkg/fixed"
	"github.com/Jimyzzp/LibrePCB/pkg/layer"
	"github.com/Jimyzzp/LibrePCB/pkg/polygon"
)

// copperCacheKey identifies one memoized copper union: a layer plus
// the exact net-set (or "unrestricted") a check asked for.
type copperCacheKey struct {
	layer        layer.Layer
	unrestricted bool
	nets         string // canonical, sorted join of net UUIDs; empty when unrestricted
}

// copperCache memoizes PathGenerator.CopperOnLayerForNetSet for the
// lifetime of a single run. It is a plain map guarded only by
// single-ownership (§4.G "Caching"): the run's owner goroutine is the
// only writer, and the worker-pool phases (§5) never read or write it —
// each worker computes its own geometry.
type copperCache struct {
	gen   *board.PathGenerator
	byKey map[copperCacheKey]polygon.PolygonSet
}

func newCopperCache(gen *board.PathGenerator) *copperCache {
	return &copperCache{gen: gen, byKey: make(map[copperCacheKey]polygon.PolygonSet)}
}

func netSetKey(nets map[board.UUID]bool) string {
	if len(nets) == 0 {
		return ""
	}
	ids := make([]string, 0, len(nets))
	for id := range nets {
		ids = append(ids, string(id))
	}
	// Stable key regardless of map iteration order.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	out := ids[0]
	for _, id := range ids[1:] {
		out += "," + id
	}
	return out
}

func (c *copperCache) layerUnrestricted(l layer.Layer, maxTol fixed.Length) polygon.PolygonSet {
	key := copperCacheKey{layer: l, unrestricted: true}
	if set, ok := c.byKey[key]; ok {
		return set
	}
	set := c.gen.CopperOnLayerForNetSet(l, nil, true, maxTol)
	c.byKey[key] = set
	return set
}

func (c *copperCache) layerForNets(l layer.Layer, nets map[board.UUID]bool, maxTol fixed.Length) polygon.PolygonSet {
	key := copperCacheKey{layer: l, nets: netSetKey(nets)}
	if set, ok := c.byKey[key]; ok {
		return set
	}
	set := c.gen.CopperOnLayerForNetSet(l, nets, false, maxTol)
	c.byKey[key] = set
	return set
}
