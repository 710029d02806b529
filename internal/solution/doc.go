// Package solution defines the registry of Advent of Code answers.
//
// A Registry maps a year to a YearTable of exactly 24 DaySlots. Each slot
// holds up to two Parts, and each Part either wraps a Producer or is
// unsolved. Producers take no arguments: every puzzle embeds its own input at
// build time, so calling a Producer is a closed computation to one int64.
//
// The registry is a value. It is built once from explicit declarations and
// handed to whoever needs it; nothing in this package keeps global state.
package solution
