package typedesc

import "literal-generator/primitive"

const (
	systemNamespace      = "System"
	collectionsNamespace = "System.Collections.Generic"
)

// Built-in descriptors for the types the generated literals refer to.
var (
	Object   = NewPlain(systemNamespace, "Object")
	Boolean  = NewPlain(systemNamespace, "Boolean")
	SByte    = NewPlain(systemNamespace, "SByte")
	Byte     = NewPlain(systemNamespace, "Byte")
	Int16    = NewPlain(systemNamespace, "Int16")
	UInt16   = NewPlain(systemNamespace, "UInt16")
	Int32    = NewPlain(systemNamespace, "Int32")
	UInt32   = NewPlain(systemNamespace, "UInt32")
	Int64    = NewPlain(systemNamespace, "Int64")
	UInt64   = NewPlain(systemNamespace, "UInt64")
	UIntPtr  = NewPlain(systemNamespace, "UIntPtr")
	Single   = NewPlain(systemNamespace, "Single")
	Double   = NewPlain(systemNamespace, "Double")
	String   = NewPlain(systemNamespace, "String")
	Char     = NewPlain(systemNamespace, "Char")
	DateTime = NewPlain(systemNamespace, "DateTime")
	Guid     = NewPlain(systemNamespace, "Guid")

	Nullable   = NewDefinition(systemNamespace, "Nullable", "T")
	List       = sequence(NewDefinition(collectionsNamespace, "List", "T"))
	Dictionary = NewDefinition(collectionsNamespace, "Dictionary", "TKey", "TValue")
)

func sequence(t *Type) *Type {
	t.Sequence = true

	return t
}

// Builtin returns the descriptor for a primitive kind, or nil.
func Builtin(kind primitive.KindEnum) *Type {
	switch kind {
	default:
		return nil
	case primitive.KindBool:
		return Boolean
	case primitive.KindInt8:
		return SByte
	case primitive.KindUint8:
		return Byte
	case primitive.KindInt16:
		return Int16
	case primitive.KindUint16:
		return UInt16
	case primitive.KindInt32:
		return Int32
	case primitive.KindUint32:
		return UInt32
	case primitive.KindInt, primitive.KindInt64:
		return Int64
	case primitive.KindUint, primitive.KindUint64:
		return UInt64
	case primitive.KindUintptr:
		return UIntPtr
	case primitive.KindFloat32:
		return Single
	case primitive.KindFloat64:
		return Double
	case primitive.KindString:
		return String
	case primitive.KindChar:
		return Char
	case primitive.KindTime:
		return DateTime
	case primitive.KindGuid:
		return Guid
	}
}

// NullableOf wraps a value type in System.Nullable<T>.
func NullableOf(t *Type) *Type { return Nullable.Construct(t) }

// ListOf describes System.Collections.Generic.List<T>.
func ListOf(elem *Type) *Type { return List.Construct(elem) }

// DictionaryOf describes System.Collections.Generic.Dictionary<TKey, TValue>.
func DictionaryOf(key, value *Type) *Type { return Dictionary.Construct(key, value) }
