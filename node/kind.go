package node

//go:generate go tool stringer -type=DispatcherEnum -output=kind_string.go

// DispatcherEnum names the rendering chosen for a value.
type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherNull
	DispatcherEnumeration
	DispatcherConverter
	DispatcherPrimitive
	DispatcherSequence
	DispatcherMap
	DispatcherStruct

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)
