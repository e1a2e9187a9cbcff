package textalmanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/almanac/internal/config"
)

// ErrUnrepresentable is returned by Write for a definition the plain-text
// format cannot hold.
var ErrUnrepresentable = errors.New("definition cannot be written as plain text")

// Write renders def in the plain-text format. Explicit seed ranges are
// flattened into start/length pairs on the seeds line. The format has a
// single seeds line, so a definition with both seed values and explicit
// seed ranges is rejected.
func Write(w io.Writer, def *config.Definition) error {
	if len(def.Seeds) > 0 && len(def.SeedRanges) > 0 {
		return fmt.Errorf("%w: both seed values and seed ranges are declared", ErrUnrepresentable)
	}
	bw := bufio.NewWriter(w)

	seeds := def.Seeds
	if len(seeds) == 0 {
		for _, r := range def.SeedRanges {
			seeds = append(seeds, r.Start, r.Length)
		}
	}
	fmt.Fprint(bw, seedsPrefix)
	for _, s := range seeds {
		fmt.Fprintf(bw, " %d", s)
	}
	fmt.Fprintln(bw)

	for _, s := range def.Stages {
		fmt.Fprintf(bw, "\n%s-to-%s%s\n", s.Source, s.Destination, mapSuffix)
		for _, m := range s.Mappings {
			fmt.Fprintf(bw, "%d %d %d\n", m.DestinationStart, m.SourceStart, m.Length)
		}
	}
	return bw.Flush()
}
