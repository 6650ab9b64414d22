// Package elliptical implements the elliptical skeletal representation
// (s-rep): a grid of skeletal.Point indexed by (line, step), together with
// a lazily derived mesh view of its spokes.
//
// Grid layout:
//
//   - line ∈ [0, L) walks around the elliptical spine and wraps: line L−1 is
//     next to line 0. The seam is not duplicated.
//   - step ∈ [0, S) walks outward. Step 0 is the spine, step S−1 the crest.
//     A cell holds a crest point iff it is on the crest step.
//   - The spine is a curve traversed out and back, so the spine points of
//     lines l and L−l coincide. Lines 0..L/2 hold the distinct spine points.
//
//	  line 0 ─ spine(0) ── step 1 ── … ── crest
//	  line 1 ─ spine(1) ── step 1 ── … ── crest
//	    ⋮
//	  line L−1 ─ spine(1) ── …            (same spine point as line 1)
//
// Mesh view:
//
//   - UpSpokes/DownSpokes: the up/down spokes of every non-crest cell, indexed
//     step-major (spine row first), cells lacking the spoke skipped.
//   - CrestSpokes: the crest spokes of the crest row, in line order.
//   - CrestToUp/DownSpokeConnections: for each crest entry, the up/down index
//     of the cell just inside it on the same line, or spokemesh.NoIndex.
//   - UpSpine/DownSpine: up/down indices of the distinct spine points.
//
// The view is rebuilt on first read after any change to the grid or to one
// of its points. Changes are also published to observers registered with
// Observe; BlockModify, UnblockModify and Batch coalesce a burst of changes
// into a single notification.
//
// Errors:
//
//   - ErrOutOfRange: (line, step) outside the grid.
//   - ErrInvalidAssignment: nil point, or crest-ness not matching the step.
//   - ErrNegativeSize: Resize with a negative dimension.
//
// An SRep is not safe for concurrent use.
package elliptical
