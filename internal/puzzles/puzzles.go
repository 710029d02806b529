// Package puzzles assembles the registered solutions into a Registry.
//
// Each year lives in its own package (year2020, year2021, ...) that embeds its
// inputs and exposes a Solutions table. Registry builds a fresh, immutable
// Registry from those tables; nothing here is a package-level mutable value.
package puzzles

import (
	_ "embed"
	"fmt"

	"github.com/roach88/adventofcode/internal/answers"
	"github.com/roach88/adventofcode/internal/puzzles/year2020"
	"github.com/roach88/adventofcode/internal/puzzles/year2021"
	"github.com/roach88/adventofcode/internal/puzzles/year2022"
	"github.com/roach88/adventofcode/internal/puzzles/year2023"
	"github.com/roach88/adventofcode/internal/puzzles/year2024"
	"github.com/roach88/adventofcode/internal/solution"
)

//go:embed answers.yaml
var answersYAML []byte

// Tables returns the per-year solution tables keyed by year.
func Tables() map[int]solution.YearTable {
	return map[int]solution.YearTable{
		2020: year2020.Solutions(),
		2021: year2021.Solutions(),
		2022: year2022.Solutions(),
		2023: year2023.Solutions(),
		2024: year2024.Solutions(),
	}
}

// Registry returns the registry of every registered year.
func Registry() *solution.Registry {
	reg, err := solution.NewRegistry(Tables())
	if err != nil {
		// Years above are literals; a failure here is a programming error.
		panic(fmt.Sprintf("puzzles: %v", err))
	}
	return reg
}

// Answers returns the expected answers for the embedded inputs.
func Answers() (*answers.File, error) {
	f, err := answers.Parse(answersYAML, answers.FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded answers: %w", err)
	}
	return f, nil
}
