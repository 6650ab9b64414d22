// Package scene is the thin document layer around elliptical s-reps.
//
// What:
//
//   - Scene registers nodes under generated IDs and publishes additions and
//     removals through optional hooks.
//   - SRepNode is a named container owning one *elliptical.SRep
//     (Grid/SetGrid). DisplayNode holds its presentation settings and
//     StorageNode fills a grid from a file through a Loader.
//   - Logic wires these together: it creates s-rep nodes with their display
//     node, loads s-reps, and installs interpolated copies into new nodes.
//
// The package has no file format of its own. Loader implementations provide
// persistence.
//
// Failure model:
//
//   - Every operation returns an error; operations that return an ID return
//     "" exactly when they fail.
//   - InterpolateSRep and LoadSRep remove the nodes they created when they
//     fail, leaving the scene as it was.
//
// Scene, nodes and Logic are not safe for concurrent use.
package scene
