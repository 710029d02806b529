package answers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/adventofcode/internal/solution"
)

// File is a set of expected answers.
type File struct {
	Answers []Answer `yaml:"answers" json:"answers"`
}

// Answer holds the expected values for one day. A nil part has no
// recorded answer.
type Answer struct {
	Year  int    `yaml:"year" json:"year"`
	Day   int    `yaml:"day" json:"day"`
	Part1 *int64 `yaml:"part1,omitempty" json:"part1,omitempty"`
	Part2 *int64 `yaml:"part2,omitempty" json:"part2,omitempty"`
}

// Lookup finds the answer for (year, day).
func (f *File) Lookup(year, day int) (Answer, bool) {
	for _, a := range f.Answers {
		if a.Year == year && a.Day == day {
			return a, true
		}
	}
	return Answer{}, false
}

// Format identifies an answers file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", fmt.Errorf("unsupported answers file %q: expected .yaml, .yml or .cue", path)
	}
}

// Load reads and parses an answers file.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes answers from data and validates them.
func Parse(data []byte, format Format) (*File, error) {
	var (
		f   *File
		err error
	)
	switch format {
	case FormatYAML:
		f, err = parseYAML(data)
	case FormatCUE:
		f, err = parseCUE(data)
	default:
		return nil, fmt.Errorf("unsupported answers format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := validateFile(f); err != nil {
		return nil, fmt.Errorf("invalid answers: %w", err)
	}
	return f, nil
}

func parseYAML(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &f, nil
}

// cueSchema closes each answer so typos in field names are errors.
const cueSchema = `
#Answer: {
	year:   int & >0
	day:    int & >=1 & <=24
	part1?: int
	part2?: int
}
answers: [...#Answer]
`

func parseCUE(data []byte) (*File, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(cueSchema, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling answers schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename("answers.cue"))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("failed to validate CUE: %w", err)
	}

	var f File
	if err := unified.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode CUE: %w", err)
	}
	return &f, nil
}

// validateFile checks ranges, empty entries and duplicates.
func validateFile(f *File) error {
	type key struct{ year, day int }
	seen := make(map[key]bool, len(f.Answers))

	for i, a := range f.Answers {
		if a.Year <= 0 {
			return fmt.Errorf("answers[%d]: year must be positive, got %d", i, a.Year)
		}
		if !solution.ValidDay(a.Day) {
			return fmt.Errorf("answers[%d]: day %d out of range, must be between %d..%d",
				i, a.Day, solution.FirstDay, solution.LastDay)
		}
		if a.Part1 == nil && a.Part2 == nil {
			return fmt.Errorf("answers[%d]: %d day %d has neither part1 nor part2", i, a.Year, a.Day)
		}
		k := key{a.Year, a.Day}
		if seen[k] {
			return fmt.Errorf("answers[%d]: duplicate entry for %d day %d", i, a.Year, a.Day)
		}
		seen[k] = true
	}
	return nil
}
