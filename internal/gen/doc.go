// Package gen generates descriptor registration code for Go packages.
//
// For each exported struct and integer enum of a package it emits a
// descriptor variable, constructed descriptors for the generic
// instantiations the package uses, and a RegisterLiteralTypes function
// called from init. Generation uses text/template + go/format.
//
// Descriptor expressions:
//   - Structs: typedesc.NewPlain / typedesc.NewDefinition
//   - Integer types: typedesc.NewEnum over the built-in of the underlying type
//   - Instances: Construct on the definition with argument descriptors
package gen
