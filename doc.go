// Package srep models elliptical skeletal representations (s-reps): medial
// shape models made of a grid of skeletal points whose spokes reach the
// object boundary.
//
// Subpackages:
//
//	skeletal     Spoke and Point (one medial sample), with change subscriptions
//	spokemesh    immutable flat spoke meshes with neighbour lists
//	elliptical   the s-rep grid: bounds-checked edits, crest rule, cached mesh view,
//	             batched modification notifications, deep Clone
//	interpolate  refined copies of a grid at a given level, pluggable Refiner
//	scene        node registry and Logic: create, load and interpolate s-rep nodes
//
// Quick ASCII picture of a 4-line, 3-step s-rep:
//
//	line 0: spine ── step 1 ── crest
//	line 1: spine ── step 1 ── crest
//	line 2: spine ── step 1 ── crest
//	line 3: spine ── step 1 ── crest   (next line is line 0)
//
// Typical flow:
//
//	g, _ := elliptical.NewWithSize(4, 3)
//	_ = g.SetSkeletalPoint(0, 0, skeletal.NewInteriorPoint(up, down))
//	mesh := g.UpSpokes()
//	dense, err := interpolate.Interpolate(g, 2)
package srep
