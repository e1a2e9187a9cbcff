// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that loads an almanac,
// answers the lowest-location queries and optionally serves or publishes
// the answers, decoupled from any specific entrypoint like a CLI.
package app
