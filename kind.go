package jipg

// Kind identifies the shape of a Value node in a schema tree.
type Kind int

const (
	KindObject Kind = iota
	KindObjectField
	KindArray
	KindString
	KindInt
	KindFloat
	KindBool
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindObjectField:
		return "object_field"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}
