// Package testdata holds the canonical example schemas used across
// jipggen's test suite — the same shapes spec.md's end-to-end
// scenarios describe — so generation tests, emitter tests, and the
// fixture-compile-and-run tests all exercise one shared definition
// instead of three hand-duplicated copies of it.
package testdata

import "github.com/macsencasaus/jipg-go"

// Person returns {name:String, age:Int, friends:Array(String)},
// end-to-end scenarios #1, #2, #5, and #6.
func Person() *jipg.Value {
	return jipg.Object(
		jipg.Field("name", jipg.String()),
		jipg.Field("age", jipg.Int()),
		jipg.Field("friends", jipg.Array(jipg.String())),
	)
}

// PersonWithBoundedParents returns {parents:Array(String,2)},
// end-to-end scenario #3.
func PersonWithBoundedParents() *jipg.Value {
	return jipg.Object(
		jipg.Field("parents", jipg.ArrayCap(jipg.String(), 2)),
	)
}

// Shapes returns Array(Object{sides:Int, radius:Float,
// coord:Object{x:Float,y:Float}}), end-to-end scenario #4.
func Shapes() *jipg.Value {
	coord := jipg.Object(
		jipg.Field("x", jipg.Float()),
		jipg.Field("y", jipg.Float()),
	)
	shape := jipg.Object(
		jipg.Field("sides", jipg.Int()),
		jipg.Field("radius", jipg.Float()),
		jipg.Field("coord", coord),
	)
	return jipg.Array(shape)
}
