// Package varstruct builds typed, non-owning views over tightly packed
// structs whose members mix fixed-size scalars and variable-length arrays.
//
// A Layout declares the ordered member list once; Bind attaches it to an
// existing buffer together with one element count per array member, computing
// every member's byte offset as a running sum with no padding. Views never
// copy or own the buffer, and read-only bindings have no setters at all.
//
// Length mismatches at Bind time and out-of-range indices on checked
// accessors are treated as caller defects and panic rather than returning
// errors; the *Unchecked accessor variants opt out of the index check for
// pre-validated call sites.
//
// The cmd/varstruct-gen tool generates per-struct named accessors on top of
// this package from @varstruct-annotated Go struct declarations.
package varstruct
