// Package skeletal defines the building blocks of a skeletal representation:
// the Spoke (a vector from a medial-axis sample to the object boundary) and
// the Point (one medial-axis sample with its spokes).
//
// What:
//
//   - Spoke stores a skeletal position and a direction vector whose norm is
//     the spoke radius. Boundary() is the point the spoke reaches.
//   - Point is either interior (up and down spokes towards opposite boundary
//     sheets) or crest (the fold of the skeletal sheet, with an extra crest
//     spoke). Crest-ness is fixed when the Point is constructed.
//   - Points publish every successful mutation to their subscribers through
//     Observe/Unobserve. A Point never references whoever observes it.
//
// Errors:
//
//   - ErrNotCrest: crest spoke assigned to an interior point.
//   - ErrZeroDirection: spoke built from a zero-length direction.
//
// Points are not safe for concurrent use.
package skeletal
