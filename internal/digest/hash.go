package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainDayAnswers prefixes every day digest. The version suffix leaves room
// for changing the encoding later.
const DomainDayAnswers = "aoc/day-answers/v1"

// PartValue is the hashed view of one part.
type PartValue struct {
	Solved bool
	Value  int64
}

func (p PartValue) canonical() map[string]any {
	if !p.Solved {
		return map[string]any{"solved": false}
	}
	return map[string]any{"solved": true, "value": p.Value}
}

// hashWithDomain computes SHA256(domain + 0x00 + data) as hex.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// DayDigest fingerprints the answers of one day.
func DayDigest(year, day int, part1, part2 PartValue) (string, error) {
	canonical, err := MarshalCanonical(map[string]any{
		"year":  year,
		"day":   day,
		"part1": part1.canonical(),
		"part2": part2.canonical(),
	})
	if err != nil {
		return "", fmt.Errorf("DayDigest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainDayAnswers, canonical), nil
}

// MustDayDigest is like DayDigest but panics on error.
func MustDayDigest(year, day int, part1, part2 PartValue) string {
	d, err := DayDigest(year, day, part1, part2)
	if err != nil {
		panic(err)
	}
	return d
}
