package catwalk

import (
	"math"
	"sort"
)

// TreeSeed is the fixed seed used by GenerateTrees. Keeping it constant makes
// the generated forest reproducible, so tests can assert exact output.
const TreeSeed = 1337

// layerSpeeds maps a parallax layer to its horizontal scroll speed in pixels
// per second. Farther layers scroll slower to fake depth.
var layerSpeeds = [NumLayers]float64{14, 30, 55}

// NumLayers is the number of parallax tiers (0 = far, 2 = near).
const NumLayers = 3

// Tree describes one background tree. Immutable after generation.
type Tree struct {
	X      float64 // horizontal position in the scroll span [0, 2*width)
	BaseY  float64 // trunk base (ground contact) in surface coordinates
	Height float64 // trunk-base to canopy-top distance
	Width  float64 // canopy radius reference
	Layer  int     // parallax tier, 0 = far
	Hue    float64 // canopy hue in degrees
}

// LayerSpeed returns the scroll speed for a parallax layer. Layers outside
// [0, NumLayers) clamp to the nearest tier.
func LayerSpeed(layer int) float64 {
	if layer < 0 {
		layer = 0
	}
	if layer >= NumLayers {
		layer = NumLayers - 1
	}
	return layerSpeeds[layer]
}

// GenerateTrees builds count tree descriptors for a surface of the given
// size, drawn from the package's fixed seed. The result is sorted ascending
// by Layer so far trees paint before near ones; within a layer, generation
// order is preserved. Callers must treat the slice as read-only.
func GenerateTrees(count int, width, height float64) []Tree {
	rnd := SeededRandom(TreeSeed)
	trees := make([]Tree, 0, count)
	for i := 0; i < count; i++ {
		layer := i % NumLayers
		depth := float64(layer)
		trees = append(trees, Tree{
			// The scroll span is twice the surface width so trees can wrap
			// off one edge and re-enter the other without popping.
			X:      rnd() * width * 2,
			BaseY:  height*0.74 + depth*height*0.055 + rnd()*0.02*height,
			Height: height*(0.11+0.055*depth) + rnd()*0.04*height,
			Width:  14 + depth*11 + rnd()*9,
			Layer:  layer,
			Hue:    95 + rnd()*50,
		})
	}
	sort.SliceStable(trees, func(i, j int) bool {
		return trees[i].Layer < trees[j].Layer
	})
	return trees
}

// ScreenX returns the tree's horizontal screen position at the given elapsed
// time, for a surface of the given width. Position wraps over the 2*width
// scroll span and is offset half a width left so trees slide in from either
// edge; the wrap period is 2*width/LayerSpeed(t.Layer).
func (t Tree) ScreenX(elapsed, width float64) float64 {
	span := 2 * width
	x := math.Mod(t.X-elapsed*LayerSpeed(t.Layer), span)
	if x < 0 {
		x += span
	}
	return x - width/2
}
