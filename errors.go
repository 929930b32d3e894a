package jipg

import "errors"

// === Arena and Registration Errors ===
var (
	// ErrArenaExhausted is returned (as a panic value, recovered at the
	// top of cmd/jipggen) when a schema tree needs more *Value nodes
	// than the process-global arena was sized for.
	ErrArenaExhausted = errors.New("arena exhausted")

	// ErrDuplicateParserName names two registered parsers sharing one
	// top-level name. Check reports this as a Diagnostic with code
	// duplicate_parser_name; no function in this module returns the
	// sentinel itself.
	ErrDuplicateParserName = errors.New("duplicate parser name")

	// ErrUnknownParserName names a reference to a parser that was never
	// registered. No function in this module returns it: manifest
	// entries are matched by header path or package name, not by
	// parser name.
	ErrUnknownParserName = errors.New("unknown parser name")
)

// === Schema Shape Errors ===
//
// Check reports the shape problems below as Diagnostics (see build.go)
// rather than returning these sentinels; of this group only
// ErrCyclicSchema is returned, by cmd/jipggen's emission-order pass.
var (
	// ErrEmptyFieldKey names a Field declared with an empty key
	// (Diagnostic code empty_object_key).
	ErrEmptyFieldKey = errors.New("empty field key")

	// ErrDuplicateFieldKey names an Object declaring the same key twice
	// (Diagnostic code duplicate_object_key).
	ErrDuplicateFieldKey = errors.New("duplicate field key")

	// ErrInvalidArrayCapacity names a negative ArrayCap or StringCap
	// capacity (Diagnostic code invalid_capacity). A capacity of 0 is
	// not rejected; it means unbounded.
	ErrInvalidArrayCapacity = errors.New("invalid fixed capacity")

	// ErrInvalidIntBits names an IntT bit width other than 8, 16, 32,
	// or 64 (Diagnostic code invalid_int_bits).
	ErrInvalidIntBits = errors.New("invalid integer bit width")

	// ErrInvalidFloatBits names a FloatT bit width other than 32 or 64
	// (Diagnostic code invalid_float_bits).
	ErrInvalidFloatBits = errors.New("invalid float bit width")

	// ErrKeyHashCollision names two keys of the same object that hash
	// to the same sbox value, so the emitted dispatch switch cannot
	// tell them apart by hash alone (Diagnostic code sbox_collision).
	ErrKeyHashCollision = errors.New("sbox hash collision within object")

	// ErrCyclicSchema is returned when a schema tree references itself,
	// directly or transitively — the generator emits a fixed set of Go
	// types and cannot represent recursive ones.
	ErrCyclicSchema = errors.New("cyclic schema reference")
)

// === Generation Errors ===
var (
	// ErrNoParsersRegistered is returned when cmd/jipggen is asked to
	// generate code but no parser was registered.
	ErrNoParsersRegistered = errors.New("no parsers registered")

	// ErrTemplateExecution is returned when a code-generation template
	// fails to execute.
	ErrTemplateExecution = errors.New("template execution failed")

	// ErrSourceFormat is returned when go/format cannot format
	// generated source — almost always a bug in a template, not in the
	// caller's schema.
	ErrSourceFormat = errors.New("generated source formatting failed")

	// ErrManifestDecode is returned when a jipggen manifest file fails
	// to parse.
	ErrManifestDecode = errors.New("manifest decode failed")

	// ErrOutputOpen is returned when an output sink cannot be opened
	// for writing.
	ErrOutputOpen = errors.New("output open failed")

	// ErrOutputWrite is returned when writing to an opened output sink
	// fails partway through.
	ErrOutputWrite = errors.New("output write failed")
)
