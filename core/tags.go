package core

// These empty structs serve as declarative annotations embedded within user-defined
// structs to indicate CLI metadata such as whether a field is a short or long flag,
// required, or holds descriptive information.
//
// The model builder uses reflection to detect these markers by type name and adjust
// behavior accordingly.

// === META TAGS ===

type Clifford struct{}
type Version struct{}
type Help struct{}

// === TAGGING ===

type ShortTag struct{}
type LongTag struct{}
type Required struct{}
type Desc struct{}

// Subcommand marks a sub-struct as a subcommand target. The parser sets it to true on
// the subcommand that was dispatched, so callers can tell which one ran.
//
// An explicit name may be given with `name:"..."`; otherwise the lowercased field name
// is used.
type Subcommand bool
