// Package short re-exports the jipg DSL under the short, upper-case
// names the original C macros used (JIPG_OBJECT, JIPG_OBJECT_KV, ...).
// Go has no macro layer to rename call sites the way the C #define
// forms did, so a dot-import of this package is the closest
// equivalent: `import . "github.com/macsencasaus/jipg-go/short"`.
package short

import "github.com/macsencasaus/jipg-go"

type Value = jipg.Value

func OBJECT(fields ...*Value) *Value        { return jipg.Object(fields...) }
func KV(key string, v *Value) *Value        { return jipg.Field(key, v) }
func ARRAY(elem *Value) *Value              { return jipg.Array(elem) }
func ARRAY_CAP(elem *Value, cap int) *Value { return jipg.ArrayCap(elem, cap) }
func STRING() *Value                        { return jipg.String() }
func STRING_CAP(cap int) *Value             { return jipg.StringCap(cap) }
func INT() *Value                           { return jipg.Int() }
func INT_T(bits int) *Value                 { return jipg.IntT(bits) }
func FLOAT() *Value                         { return jipg.Float() }
func FLOAT_T(bits int) *Value               { return jipg.FloatT(bits) }
func BOOL() *Value                          { return jipg.Bool() }

func PARSER(name string, build func() *Value) {
	jipg.RegisterParser(name, build)
}
