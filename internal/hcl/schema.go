package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level construct an almanac file may hold.
type fileRoot struct {
	Seeds      hcl.Expression    `hcl:"seeds,optional"`
	SeedRanges []*seedRangeBlock `hcl:"seed_range,block"`
	Stages     []*stageBlock     `hcl:"stage,block"`
}

// seedRangeBlock is an explicit (start, length) seed declaration.
type seedRangeBlock struct {
	Start  uint64 `hcl:"start"`
	Length uint64 `hcl:"length"`
}

// stageBlock is one category-to-category map.
type stageBlock struct {
	Source      string         `hcl:"source,label"`
	Destination string         `hcl:"destination,label"`
	Mapping     hcl.Expression `hcl:"mapping,optional"`
	Ranges      []*rangeBlock  `hcl:"range,block"`
}

// rangeBlock is the long-hand form of one mapping row.
type rangeBlock struct {
	DestinationStart uint64 `hcl:"destination_start"`
	SourceStart      uint64 `hcl:"source_start"`
	Length           uint64 `hcl:"length"`
}
