// Package scene loads rays and shapes from YAML or TOML files and queries
// them in batches.
//
// A scene file lists rays, shapes and default query options:
//
//	rays:
//	  - name: probe
//	    origin: [-5, 0]
//	    direction: [1, 0]
//	shapes:
//	  - name: box
//	    kind: rect
//	    min: [-1, -1]
//	    max: [1, 1]
//	query:
//	  limit: 1
//
// Build validates every entry, so a built Scene only holds shapes that can
// be hit. Query then evaluates every ray/shape pair concurrently.
package scene
