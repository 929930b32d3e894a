// Package jipg implements a schema-driven JSON parser generator.
//
// A caller declares one or more named top-level shapes with the
// constructors in this package (Object, Field, Array, ArrayCap, String,
// Int, Float, Bool) and registers them with RegisterParser. The
// cmd/jipggen tool then walks the resulting schema tree and emits Go type
// declarations and recursive-descent parser functions for it — a hand
// written lexer and a perfect-prefix S-box hash drive object-field
// dispatch in the emitted code, never reflection or encoding/json.
//
// Credit to macsencasaus/jipg, whose single-header C generator this
// package ports to Go.
package jipg
