package typedesc

import (
	"reflect"
	"slices"
	"strings"

	"literal-generator/primitive"
)

// TagKey is the struct tag consulted when listing members.
//
//	Name string `literal:"DisplayName"`   // rename
//	Secret string `literal:"-"`          // skip
//	Total int `literal:",prop"`           // list among properties
const TagKey = "literal"

// Member is one publicly readable instance member of a struct.
type Member struct {
	Name     string
	Property bool
	// Index is the reflect field index path, through embedded structs.
	Index []int
}

// Members lists the members of struct type rt in literal order: properties
// before fields; within each group own-declared members come before
// inherited (embedded) ones, each in declaration order.
//
// Visibility follows Go's promotion rules: a member shadowed by a shallower
// one of the same name is omitted, and when several members share a name at
// the shallowest depth, a lone tagged one wins and otherwise all are omitted.
// Exported embedded fields that are not promoted through (scalars,
// interfaces, built-ins such as time.Time) are members named after their type.
func Members(rt reflect.Type) []Member {
	return MembersFunc(rt, nil)
}

// MembersFunc is Members where atomic reports embedded struct types written
// as a single value, e.g. by a converter; those are members rather than
// promoted through. A nil atomic promotes every non-built-in struct.
func MembersFunc(rt reflect.Type, atomic func(reflect.Type) bool) []Member {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	w := walker{atomic: atomic, visiting: make(map[reflect.Type]struct{})}
	w.collect(rt, nil, 0)

	members := visible(w.candidates)

	// stable partition: properties first
	slices.SortStableFunc(members, func(a, b Member) int {
		switch {
		case a.Property == b.Property:
			return 0
		case a.Property:
			return -1
		default:
			return 1
		}
	})

	return members
}

type candidate struct {
	Member
	depth  int
	tagged bool
}

type walker struct {
	atomic     func(reflect.Type) bool
	visiting   map[reflect.Type]struct{}
	candidates []candidate
}

// collect appends the members of rt, own before embedded, in declaration order.
func (w *walker) collect(rt reflect.Type, prefix []int, depth int) {
	if _, ok := w.visiting[rt]; ok {
		return
	}
	w.visiting[rt] = struct{}{}
	defer delete(w.visiting, rt)

	var embedded []reflect.StructField

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)

		name, prop, skip := parseTag(field.Tag.Get(TagKey))
		if skip || !field.IsExported() {
			continue
		}

		if field.Anonymous && name == "" && w.promotes(field.Type) {
			embedded = append(embedded, field)
			continue
		}

		tagged := name != ""
		if !tagged {
			name = field.Name
		}

		w.candidates = append(w.candidates, candidate{
			Member: Member{Name: name, Property: prop, Index: appendIndex(prefix, field.Index...)},
			depth:  depth,
			tagged: tagged,
		})
	}

	for _, field := range embedded {
		ft := field.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}

		w.collect(ft, appendIndex(prefix, field.Index...), depth+1)
	}
}

// promotes reports embedded types whose members are listed in place of the
// embedded field itself. Members promoted through an unexported embedded
// type are read-only to reflection, so only exported fields get here.
func (w *walker) promotes(ft reflect.Type) bool {
	elem := ft
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	if elem.Kind() != reflect.Struct || primitive.FromReflectType(elem) != 0 {
		return false
	}

	return w.atomic == nil || (!w.atomic(ft) && !w.atomic(elem))
}

// visible keeps the candidates that win their name, preserving order.
func visible(cs []candidate) []Member {
	winner := make(map[string]int) // name -> index into cs, -1 when ambiguous

	byName := make(map[string][]int)
	for i, c := range cs {
		byName[c.Name] = append(byName[c.Name], i)
	}

	for name, idx := range byName {
		shallowest := cs[idx[0]].depth
		for _, i := range idx[1:] {
			shallowest = min(shallowest, cs[i].depth)
		}

		var atDepth, tagged []int
		for _, i := range idx {
			if cs[i].depth != shallowest {
				continue
			}

			atDepth = append(atDepth, i)
			if cs[i].tagged {
				tagged = append(tagged, i)
			}
		}

		switch {
		case len(atDepth) == 1:
			winner[name] = atDepth[0]
		case len(tagged) == 1:
			winner[name] = tagged[0]
		default:
			winner[name] = -1
		}
	}

	var members []Member
	for i, c := range cs {
		if winner[c.Name] == i {
			members = append(members, c.Member)
		}
	}

	return members
}

func appendIndex(prefix []int, index ...int) []int {
	out := make([]int, 0, len(prefix)+len(index))
	out = append(out, prefix...)

	return append(out, index...)
}

func parseTag(tag string) (name string, prop, skip bool) {
	if tag == "-" {
		return "", false, true
	}

	name, opts, _ := strings.Cut(tag, ",")
	for _, opt := range strings.Split(opts, ",") {
		if opt == "prop" {
			prop = true
		}
	}

	return name, prop, false
}
