package jipg

// Value is a node in a schema tree: an object, one key of an object, an
// array, or one of the scalar leaves (string, int, float, bool).
//
// A tree built from the constructors in constructor.go is plain data.
// RegisteredParsers sets Head and Name on each root and then runs
// AssignNames, which fills in Name on every nested aggregate in the
// order schemas were registered in; each RegisteredParsers call builds
// and names fresh trees.
type Value struct {
	Kind Kind

	// Head is true for the value at the root of a registered parser.
	// Head values get their Name from the caller (RegisterParser's
	// name argument) rather than from the name-assignment counter.
	Head bool

	// Name is the Go type name this value will be declared under. Only
	// populated for KindObject and KindArray after AssignNames has run;
	// every other kind is represented inline by its Go type.
	Name string

	// Fields holds the child KindObjectField nodes of a KindObject,
	// in declaration order. Declaration order is also field order in
	// the emitted struct; dispatch on an incoming key at parse time
	// goes by sbox hash alone; see Check for the collision guard that
	// makes trusting the hash safe.
	Fields []*Value

	// Key and Elem are populated for KindObjectField: the JSON object
	// key this field matches, and the schema for its value.
	Key  string
	Elem *Value

	// Cap is the fixed capacity for a KindArray (0 means an
	// unbounded, append-growing slice) or the maximum byte length of a
	// KindString (0 means no length limit).
	Cap int

	// IntBits and FloatBits select the emitted Go integer/float width
	// for KindInt and KindFloat (64 unless the caller narrows it).
	IntBits   int
	FloatBits int
}

// IsAggregate reports whether v declares its own named Go type (struct
// or slice) rather than being emitted inline as a scalar.
func (v *Value) IsAggregate() bool {
	return v.Kind == KindObject || v.Kind == KindArray
}
