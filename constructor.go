package jipg

// Object declares an object schema from an ordered list of fields built
// with Field. Field order is preserved into the emitted struct; the
// emitted parser dispatches on each incoming key's sbox hash alone, with
// no fallback comparison, so Check rejects any object whose declared
// keys collide under that hash before code generation ever runs.
func Object(fields ...*Value) *Value {
	v := newValue(KindObject)
	v.Fields = fields
	return v
}

// Field declares one key of an Object.
func Field(key string, schema *Value) *Value {
	v := newValue(KindObjectField)
	v.Key = key
	v.Elem = schema
	return v
}

// Array declares an unbounded array of elem, emitted as a growing slice.
func Array(elem *Value) *Value {
	v := newValue(KindArray)
	v.Elem = elem
	return v
}

// ArrayCap declares a fixed-capacity array of elem. Parsing more than
// cap elements is a parse error rather than a silent truncation or a
// reallocation.
func ArrayCap(elem *Value, cap int) *Value {
	v := newValue(KindArray)
	v.Elem = elem
	v.Cap = cap
	return v
}

// String declares an unbounded string leaf.
func String() *Value {
	return newValue(KindString)
}

// StringCap declares a fixed-capacity string leaf. Parsing a longer
// JSON string value is a parse error.
func StringCap(cap int) *Value {
	v := newValue(KindString)
	v.Cap = cap
	return v
}

// Int declares a 64-bit signed integer leaf.
func Int() *Value {
	v := newValue(KindInt)
	v.IntBits = 64
	return v
}

// IntT declares a signed integer leaf narrowed to bits (8, 16, 32, or
// 64), emitted as int8/int16/int32/int64.
func IntT(bits int) *Value {
	v := newValue(KindInt)
	v.IntBits = bits
	return v
}

// Float declares a 64-bit floating point leaf.
func Float() *Value {
	v := newValue(KindFloat)
	v.FloatBits = 64
	return v
}

// FloatT declares a floating point leaf narrowed to bits (32 or 64),
// emitted as float32/float64.
func FloatT(bits int) *Value {
	v := newValue(KindFloat)
	v.FloatBits = bits
	return v
}

// Bool declares a boolean leaf.
func Bool() *Value {
	return newValue(KindBool)
}
