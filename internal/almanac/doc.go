// Package almanac assembles the immutable almanac model (seed values, seed
// ranges and the resolved seed-to-location stage path) and answers the
// lowest-location queries.
package almanac
