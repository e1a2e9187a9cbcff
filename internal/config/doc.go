// Package config defines the format-agnostic almanac definition together
// with the Loader interface that every input format implements.
//
// The `config.Definition` is the single source the almanac model is built
// from. Concrete loaders for the plain-text, HCL and YAML formats live in
// separate packages.
package config
