// Package textalmanac reads the classic plain-text almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each map block lists "destination source length" rows.
package textalmanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/specialistvlad/almanac/internal/config"
)

var (
	// ErrMissingSeeds indicates a document whose first non-blank line is not a seeds line.
	ErrMissingSeeds = errors.New("missing seeds line")

	// ErrInvalidSeed indicates a seed that is not an unsigned 64-bit integer.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrInvalidMapName indicates a map header not of the form "<source>-to-<destination> map:".
	ErrInvalidMapName = errors.New("invalid map name")

	// ErrInvalidRange indicates a mapping row that is not three unsigned integers.
	ErrInvalidRange = errors.New("invalid range")
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
)

// Parse reads one almanac document.
func Parse(r io.Reader) (*config.Definition, error) {
	scanner := bufio.NewScanner(r)
	def := &config.Definition{}
	lineNo := 0

	// The seeds line must be the first non-blank line.
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		seeds, err := parseSeeds(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		def.Seeds = seeds
		break
	}
	if def.Seeds == nil {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, ErrMissingSeeds
	}

	var current *config.StageDefinition
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, mapSuffix) {
			source, destination, err := parseMapName(strings.TrimSuffix(line, mapSuffix))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			current = &config.StageDefinition{Source: source, Destination: destination}
			def.Stages = append(def.Stages, current)
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("line %d: %w: expected a map header, got %q", lineNo, ErrInvalidMapName, line)
		}
		m, err := parseRange(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		current.Mappings = append(current.Mappings, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return def, nil
}

func parseSeeds(line string) ([]uint64, error) {
	rest, ok := strings.CutPrefix(line, seedsPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: got %q", ErrMissingSeeds, line)
	}
	fields := strings.Fields(rest)
	seeds := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrInvalidSeed, f)
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

// parseMapName splits "seed-to-soil" into its two categories.
func parseMapName(name string) (string, string, error) {
	parts := strings.Split(strings.TrimSpace(name), "-")
	if len(parts) != 3 || parts[1] != "to" || parts[0] == "" || parts[2] == "" {
		return "", "", fmt.Errorf("%w %q", ErrInvalidMapName, name)
	}
	return parts[0], parts[2], nil
}

func parseRange(line string) (config.MappingDefinition, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return config.MappingDefinition{}, fmt.Errorf("%w %q: want 3 numbers, got %d", ErrInvalidRange, line, len(fields))
	}
	var nums [3]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return config.MappingDefinition{}, fmt.Errorf("%w %q: %q is not an unsigned integer", ErrInvalidRange, line, f)
		}
		nums[i] = v
	}
	return config.MappingDefinition{DestinationStart: nums[0], SourceStart: nums[1], Length: nums[2]}, nil
}
