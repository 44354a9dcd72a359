// Package gen provides the generator contract, the registry that maps
// region kinds to generators, and the built-in generators.
//
// Generators are pure: the same declarations always yield the same lines.
//
// Built-in kinds:
//   - Read, Write, Size: one serializer call per public, non-pointer member
//   - Init: default value assignment per member
//   - Property: managed property with getter, setter and change notification
//   - Function: managed method forwarding to the native object
package gen
