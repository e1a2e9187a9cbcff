package yamlalmanac

import (
	"github.com/specialistvlad/almanac/internal/config"
	"gopkg.in/yaml.v3"
)

// Encode renders def as a YAML almanac.
func Encode(def *config.Definition) ([]byte, error) {
	doc := document{Seeds: def.Seeds}
	for _, r := range def.SeedRanges {
		doc.SeedRanges = append(doc.SeedRanges, rangeDocument{Start: r.Start, Length: r.Length})
	}
	for _, s := range def.Stages {
		sd := stageDocument{From: s.Source, To: s.Destination}
		for _, m := range s.Mappings {
			sd.Mappings = append(sd.Mappings, []uint64{m.DestinationStart, m.SourceStart, m.Length})
		}
		doc.Stages = append(doc.Stages, sd)
	}
	return yaml.Marshal(&doc)
}
