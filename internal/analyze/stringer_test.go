package analyze

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeStringer(t *testing.T) {
	local := types.NewPackage("example.com/shop", "shop")
	other := types.NewPackage("github.com/google/uuid", "uuid")

	order := types.NewNamed(types.NewTypeName(0, local, "Order", nil), types.NewStruct(nil, nil), nil)
	id := types.NewNamed(types.NewTypeName(0, other, "UUID", nil), types.NewArray(types.Typ[types.Byte], 16), nil)

	s := NewTypeStringer("example.com/shop")

	assert.Equal(t, "Order", s.TypeString(order))
	assert.Empty(t, s.Imports())

	assert.Equal(t, "map[uuid.UUID][]*Order", s.TypeString(types.NewMap(id, types.NewSlice(types.NewPointer(order)))))
	assert.Equal(t, map[string]string{"github.com/google/uuid": "uuid"}, s.Imports())
}
