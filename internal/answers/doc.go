// Package answers loads expected puzzle answers and checks reports against them.
//
// An answers file lists known-good values per (year, day). Files are YAML
// (strict: unknown fields are rejected) or CUE (validated against a closed
// schema). Verify walks a runner.Report and classifies every part as pass,
// fail, unsolved (an answer is known but no producer exists) or unknown (a
// producer exists but no answer is recorded).
package answers
