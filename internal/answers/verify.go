package answers

import "github.com/roach88/adventofcode/internal/runner"

// Status classifies one checked part.
type Status string

const (
	StatusPass     Status = "pass"
	StatusFail     Status = "fail"
	StatusUnsolved Status = "unsolved" // answer known, no producer
	StatusUnknown  Status = "unknown"  // producer ran, no answer known
)

// Check is the verdict for one part.
type Check struct {
	Year   int    `json:"year"`
	Day    int    `json:"day"`
	Part   int    `json:"part"`
	Status Status `json:"status"`
	Got    *int64 `json:"got,omitempty"`
	Want   *int64 `json:"want,omitempty"`
}

// Verification is the result of checking a report.
type Verification struct {
	Checks   []Check `json:"checks"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Unsolved int     `json:"unsolved"`
	Unknown  int     `json:"unknown"`
}

// OK reports whether no part failed.
func (v *Verification) OK() bool {
	return v.Failed == 0
}

// Failures returns only the failed checks.
func (v *Verification) Failures() []Check {
	var out []Check
	for _, c := range v.Checks {
		if c.Status == StatusFail {
			out = append(out, c)
		}
	}
	return out
}

// Verify compares every part in rep against f.
// Parts with neither a producer nor an answer are not checked.
func Verify(rep *runner.Report, f *File) *Verification {
	v := &Verification{Checks: []Check{}}
	for _, y := range rep.Years {
		for _, d := range y.Days {
			want, _ := f.Lookup(y.Year, d.Day)
			v.add(y.Year, d.Day, 1, d.Part1, want.Part1)
			v.add(y.Year, d.Day, 2, d.Part2, want.Part2)
		}
	}
	return v
}

func (v *Verification) add(year, day, part int, got runner.Outcome, want *int64) {
	c := Check{Year: year, Day: day, Part: part, Want: want}
	if got.Solved {
		value := got.Value
		c.Got = &value
	}

	switch {
	case got.Solved && want == nil:
		c.Status = StatusUnknown
		v.Unknown++
	case got.Solved && *want == got.Value:
		c.Status = StatusPass
		v.Passed++
	case got.Solved:
		c.Status = StatusFail
		v.Failed++
	case want != nil:
		c.Status = StatusUnsolved
		v.Unsolved++
	default:
		return
	}
	v.Checks = append(v.Checks, c)
}
