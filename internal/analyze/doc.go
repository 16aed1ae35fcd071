// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to collect the
// exported named types of a package and the instantiations of its generic
// types, the input of descriptor code generation.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind (struct/enum/basic/interface) and generic parameters
//   - Instance: a generic type with concrete type arguments
package analyze
