package typedesc

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type Base struct {
	ID      string
	Created string `literal:",prop"`
	Name    string
}

type Audit struct {
	By string
}

type unexported struct {
	Lost string
}

type order struct {
	Base
	*Audit
	unexported

	Total  int `literal:",prop"`
	Name   string
	Note   string `literal:"Comment"`
	Secret string `literal:"-"`
	hidden int
}

func memberNames(ms []Member) []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
	}

	return names
}

func TestMembers(t *testing.T) {
	ms := Members(reflect.TypeFor[order]())

	// properties first; own before embedded; shadowed Name from Base omitted;
	// unexported embedded structs are not followed
	assert.Equal(t, []string{"Total", "Created", "Name", "Comment", "ID", "By"}, memberNames(ms))

	byName := make(map[string]Member)
	for _, m := range ms {
		byName[m.Name] = m
	}

	assert.True(t, byName["Total"].Property)
	assert.True(t, byName["Created"].Property)
	assert.False(t, byName["ID"].Property)
	assert.Equal(t, []int{0, 0}, byName["ID"].Index)
	assert.Equal(t, []int{1, 0}, byName["By"].Index)
	assert.Equal(t, []int{5}, byName["Comment"].Index)
}

func TestMembers_Pointer(t *testing.T) {
	assert.Equal(t, []string{"Created", "ID", "Name"}, memberNames(Members(reflect.TypeFor[*Base]())))
	assert.Nil(t, Members(reflect.TypeFor[int]()))
}

type Label string

type Handler interface{ Handle() }

type Left struct{ X, OnlyLeft string }

type Right struct{ X string }

type Tagged struct {
	Y string `literal:"X"`
}

type Mid struct{ Right }

type stamped struct {
	Label
	Handler
	time.Time
	*uuid.UUID
	Other string
}

func TestMembers_EmbeddedValues(t *testing.T) {
	ms := Members(reflect.TypeFor[stamped]())

	// embedded scalars, interfaces and built-ins are members named after
	// their type
	assert.Equal(t, []string{"Label", "Handler", "Time", "UUID", "Other"}, memberNames(ms))
	assert.Equal(t, []int{2}, ms[2].Index)
}

func TestMembers_AtomicEmbedded(t *testing.T) {
	type wrapped struct {
		Base
		Extra string
	}

	atomic := func(rt reflect.Type) bool { return rt == reflect.TypeFor[Base]() }

	assert.Equal(t, []string{"Extra", "Created", "ID", "Name"}, memberNames(Members(reflect.TypeFor[wrapped]())))
	assert.Equal(t, []string{"Base", "Extra"}, memberNames(MembersFunc(reflect.TypeFor[wrapped](), atomic)))
}

func TestMembers_Ambiguous(t *testing.T) {
	type both struct {
		Left
		Right
	}

	// X is declared twice at the same depth and promoted from neither
	assert.Equal(t, []string{"OnlyLeft"}, memberNames(Members(reflect.TypeFor[both]())))

	// the shallower X shadows the one promoted through Mid
	type deeper struct {
		Left
		Mid
	}

	ms := Members(reflect.TypeFor[deeper]())
	assert.Equal(t, []string{"X", "OnlyLeft"}, memberNames(ms))
	assert.Equal(t, []int{0, 0}, ms[0].Index)

	type withTag struct {
		Right
		Tagged
	}

	ms = Members(reflect.TypeFor[withTag]())
	assert.Equal(t, []string{"X"}, memberNames(ms))
	assert.Equal(t, []int{1, 0}, ms[0].Index)
}
