// Package hcl provides the HCL implementation of config.Loader. It is
// responsible for parsing almanac files, decoding their blocks, and binding
// CTY numbers to Go integers.
//
// An almanac file looks like:
//
//	seeds = [79, 14, 55, 13]
//
//	stage "seed" "soil" {
//	  mapping = [
//	    [50, 98, 2],
//	    [52, 50, 48],
//	  ]
//	}
//
// Rows may also be written as range blocks with destination_start,
// source_start and length attributes, and seed ranges as seed_range blocks.
package hcl
