// Package diagnostic collects the non-fatal findings of descriptor
// generation: types that get no descriptor and generic instantiations that
// cannot be described.
package diagnostic
