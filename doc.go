// Package swizgen emits the swizzle accessor macro invocations for a
// 4-component vector type, skipping the invocations already generated
// for the 3-component type.
//
// A swizzle such as .xyw or .wwx names an ordered selection of vector
// components, with repeats allowed. For a vector of rank 4 over the
// components x, y, z and w there are 4^3 = 64 rank-3 swizzles. Of
// those, the 3^3 = 27 swizzles drawn entirely from x, y and z are
// already instantiated for the rank-3 vector type, so the generator
// for the rank-4 type must emit exactly the remaining 37.
//
// The package separates the three concerns involved: Product
// enumerates a Cartesian power of an alphabet lazily and in
// lexicographic order, a Filter decides which tuples are suppressed,
// and Emitter formats each surviving tuple into one macro invocation
// line. The alphabets are plain values handed to the constructors, so
// the same machinery works for any rank and any component naming,
// though the vec4-over-vec3 case is the only one the command in main/
// ever asks for.
//
// The enumeration is deterministic: tuples are produced in standard
// odometer order, with the rightmost position varying fastest, and
// suppressed tuples are skipped in place so the survivors keep their
// relative order within the full enumeration.
package swizgen
