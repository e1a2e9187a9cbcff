// Package stagegraph indexes almanac stages by their source category and
// resolves the ordered path of stages that leads from one category to another.
//
// A graph is built once, before any query runs. Resolving a path eagerly lets
// structural problems in the chain surface at load time instead of on every
// traversal.
package stagegraph
