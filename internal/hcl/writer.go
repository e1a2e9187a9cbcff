package hcl

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/almanac/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Encode renders def as an HCL almanac. Parse reads the result back into an
// equal definition.
func Encode(def *config.Definition) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if len(def.Seeds) > 0 {
		body.SetAttributeValue("seeds", cty.ListVal(numbers(def.Seeds...)))
	}
	for _, r := range def.SeedRanges {
		b := body.AppendNewBlock("seed_range", nil).Body()
		b.SetAttributeValue("start", cty.NumberUIntVal(r.Start))
		b.SetAttributeValue("length", cty.NumberUIntVal(r.Length))
	}

	for _, s := range def.Stages {
		body.AppendNewline()
		sb := body.AppendNewBlock("stage", []string{s.Source, s.Destination}).Body()
		if len(s.Mappings) == 0 {
			continue
		}
		rows := make([]cty.Value, 0, len(s.Mappings))
		for _, m := range s.Mappings {
			rows = append(rows, cty.TupleVal(numbers(m.DestinationStart, m.SourceStart, m.Length)))
		}
		sb.SetAttributeValue("mapping", cty.TupleVal(rows))
	}
	return f.Bytes()
}

func numbers(vs ...uint64) []cty.Value {
	out := make([]cty.Value, len(vs))
	for i, v := range vs {
		out[i] = cty.NumberUIntVal(v)
	}
	return out
}
