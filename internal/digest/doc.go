// Package digest computes content-addressed fingerprints of day answers.
//
// Answers are serialized with a canonical JSON encoding (sorted keys, NFC
// strings, integers only, no null) and hashed as
// SHA256(domain + 0x00 + canonical). Two runs that produced the same answers
// for a day always share a digest, which is how the history log spots a day
// whose answer changed.
package digest
