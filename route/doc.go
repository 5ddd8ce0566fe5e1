// Package route is the query façade over a campus graph: it loads data,
// lists locations, and answers shortest-path and travel-time questions,
// including routes forced through an intermediate "via" location.
//
// A via route is the concatenation of two independent shortest paths,
// start→via and via→end, with the duplicated via node dropped at the join.
// It is therefore not necessarily the cheapest start→end walk overall, and
// it may legitimately revisit nodes.
//
// Service serialises access with a sync.RWMutex: loads and Connect take the
// write lock, queries take the read lock, so queries never observe a graph
// under mutation.
package route
