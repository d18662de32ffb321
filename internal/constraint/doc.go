// Package constraint implements the pin-attribute classification and
// enumeration rules that turn the generic design model into the per-pin
// records the Efinity constraint schema requires.
//
// Efinity spreads a pin's attributes over the whole GPIO definition as well
// as over its inner input/output/output-enable configuration elements, so a
// flat attribute mapping has to be partitioned into those buckets before it
// can be rendered. Bucket membership is decided purely by attribute name
// against static tables; the resource's direction only decides which buckets
// the renderer ends up emitting.
package constraint
