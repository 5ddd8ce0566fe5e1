// Package campusroute finds walking routes across a campus modeled as a
// weighted directed graph of named locations.
//
// Layout
//
//	hashmap/        — chained hash map with load-factor resizing (node index)
//	core/           — Graph[K]: nodes, weighted directed edges, mutation & lookup
//	dijkstra/       — minimum-cost paths with a lazy-deletion priority queue
//	bfs/            — hop-count traversal: reachability and fewest-stops paths
//	loader/         — edge-list (DOT-like) file ingestion
//	route/          — Service: string-keyed queries, via routes, per-leg times
//	config/         — YAML → .env → CAMPUSROUTE_* environment layering
//	logging/        — zap logger construction
//	cmd/campusroute — command-line front end
//
// Quick start
//
//	svc := route.NewService()
//	_ = svc.Connect("Union", "Library", 120)
//	_ = svc.Connect("Library", "Lab", 90)
//	path, _ := svc.ShortestPath("Union", "Lab")  // [Union Library Lab]
//	total, _ := svc.TotalTime("Union", "Lab")    // 210
//
// Graphs are not safe for concurrent mutation; route.Service serializes
// access with a read/write lock.
package campusroute
