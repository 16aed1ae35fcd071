package convert

import (
	"path"
	"reflect"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"

	"literal-generator/typedesc"
	"literal-generator/utils"
)

var (
	ErrIsNotAConverter         = errors.New("provided function is not a recognizable converter")
	ErrConverterIsNotAFunction = errors.New("provided converter is not a function")
)

var (
	stringType = reflect.TypeFor[string]()
	errorType  = reflect.TypeFor[error]()
)

// ParseConverter wraps a plain function as a Converter for its argument type.
//
// Supports signatures:
//   - func(v Type) string
//   - func(v Type) (string, error)
func ParseConverter(fn any) (*Func, error) {
	if fn == nil {
		return nil, ErrConverterIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return nil, ErrConverterIsNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.IsVariadic() {
		return nil, errors.Wrapf(ErrIsNotAConverter, "%s takes %d arguments", fnType, fnType.NumIn())
	}

	if fnType.NumOut() == 0 || fnType.Out(0) != stringType {
		return nil, errors.Wrapf(ErrIsNotAConverter, "%s must return a string", fnType)
	}

	hasErr := false
	switch fnType.NumOut() {
	default:
		return nil, errors.Wrapf(ErrIsNotAConverter, "%s returns too many values", fnType)
	case 1:
	case 2:
		if fnType.Out(1) != errorType {
			return nil, errors.Wrapf(ErrIsNotAConverter, "%s: second result must be an error", fnType)
		}
		hasErr = true
	}

	f := New(fnType.In(0), func(_ *typedesc.Type, v reflect.Value) (string, error) {
		out := fnVal.Call([]reflect.Value{v})
		if hasErr && !out[1].IsNil() {
			return "", out[1].Interface().(error)
		}

		return out[0].String(), nil
	})

	if name := funcName(fnVal); name != "" {
		f.Name = name
	}

	return f, nil
}

// funcName returns "alias.Name" for a named function; closures keep their
// compiler-generated suffix.
func funcName(fnVal reflect.Value) string {
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	if fnPC == nil {
		return ""
	}

	file := utils.Second(path.Split(fnPC.Name()))
	alias, name := utils.Unpack2(strings.SplitN(file, ".", 2))
	if name == "" {
		return alias
	}

	return alias + "." + name
}
