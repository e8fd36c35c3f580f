package docnode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is the set of Go types a document value can be coerced to. Node
// itself is included so arrays of objects can be read with ArrayOrFail.
type Value interface {
	string | bool | int | int32 | int64 | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | Node
}

// As coerces n to T. Integral targets accept strings holding a base-sensed
// integer literal ("0x1F", "037", "31"); out-of-range values do not coerce.
func As[T Value](n Node) (T, bool) {
	var zero T
	switch p := any(&zero).(type) {
	case *Node:
		*p = n
	case *string:
		s, ok := n.v.(string)
		if !ok {
			return zero, false
		}
		*p = s
	case *bool:
		b, ok := n.v.(bool)
		if !ok {
			return zero, false
		}
		*p = b
	case *float64:
		f, ok := n.float()
		if !ok {
			return zero, false
		}
		*p = f
	case *float32:
		f, ok := n.float()
		if !ok {
			return zero, false
		}
		*p = float32(f)
	default:
		i, ok := n.integer()
		if !ok || !setInt(p, i) {
			return zero, false
		}
	}
	return zero, true
}

func setInt(p any, i int64) bool {
	switch p := p.(type) {
	case *int:
		if i < math.MinInt || i > math.MaxInt {
			return false
		}
		*p = int(i)
	case *int32:
		if i < math.MinInt32 || i > math.MaxInt32 {
			return false
		}
		*p = int32(i)
	case *int64:
		*p = i
	case *uint8:
		if i < 0 || i > math.MaxUint8 {
			return false
		}
		*p = uint8(i)
	case *uint16:
		if i < 0 || i > math.MaxUint16 {
			return false
		}
		*p = uint16(i)
	case *uint32:
		if i < 0 || i > math.MaxUint32 {
			return false
		}
		*p = uint32(i)
	case *uint64:
		if i < 0 {
			return false
		}
		*p = uint64(i)
	default:
		return false
	}
	return true
}

// FieldOrFail returns the named field of obj coerced to T. It fails with
// ErrMissingField when the field is absent and ErrWrongType when it cannot be
// coerced.
func FieldOrFail[T Value](obj Node, name string) (T, error) {
	var zero T
	f, ok := obj.Field(name)
	if !ok {
		return zero, fmt.Errorf("field %q in %s: %w", name, obj, ErrMissingField)
	}
	v, ok := As[T](f)
	if !ok {
		return zero, fmt.Errorf("field %q in %s: %w (want %T, got %s)", name, obj, ErrWrongType, zero, f)
	}
	return v, nil
}

// FieldOr is FieldOrFail that returns def instead of failing.
func FieldOr[T Value](obj Node, name string, def T) T {
	v, err := FieldOrFail[T](obj, name)
	if err != nil {
		return def
	}
	return v
}

// FieldOrNil is FieldOrFail that returns nil instead of failing.
func FieldOrNil[T Value](obj Node, name string) *T {
	v, err := FieldOrFail[T](obj, name)
	if err != nil {
		return nil
	}
	return &v
}

// ArrayOrFail returns the elements of the named array field coerced to T. It
// fails with ErrMissingArray when the field is absent or not an array, and
// with ErrWrongType on the first element that does not coerce.
func ArrayOrFail[T Value](obj Node, name string) ([]T, error) {
	f, ok := obj.Field(name)
	if !ok || f.Kind() != KindArray {
		return nil, fmt.Errorf("array %q in %s: %w", name, obj, ErrMissingArray)
	}
	return coerceElems[T](obj, name, f)
}

// ArrayOr is ArrayOrFail that returns def when the field is absent. A field
// that is present but not an array still fails with ErrWrongType.
func ArrayOr[T Value](obj Node, name string, def []T) ([]T, error) {
	f, ok := obj.Field(name)
	if !ok {
		return def, nil
	}
	if f.Kind() != KindArray {
		return nil, fmt.Errorf("array %q in %s: %w (got %s)", name, obj, ErrWrongType, f)
	}
	return coerceElems[T](obj, name, f)
}

func coerceElems[T Value](obj Node, name string, arr Node) ([]T, error) {
	elems := arr.Elems()
	out := make([]T, 0, len(elems))
	for i, e := range elems {
		v, ok := As[T](e)
		if !ok {
			var zero T
			return nil, fmt.Errorf("array %q[%d] in %s: %w (want %T, got %s)", name, i, obj, ErrWrongType, zero, e)
		}
		out = append(out, v)
	}
	return out, nil
}

// FindChildByNameOrFail returns the first element of arr whose "name" field
// equals name. Elements without a string "name" compare as "".
func FindChildByNameOrFail(arr Node, name string) (Node, error) {
	for _, e := range arr.Elems() {
		if FieldOr(e, "name", "") == name {
			return e, nil
		}
	}
	return Node{}, fmt.Errorf("child %q in %s: %w", name, arr, ErrNotFound)
}

// GetByPath resolves a slash-delimited path ("/textures", "sprites/0/name")
// from root. Array steps are decimal indices; "~1" and "~0" unescape to "/"
// and "~". ok is false when any step is missing and also when the target is
// null or an empty array or object.
func GetByPath(root Node, path string) (Node, bool) {
	cur := root
	if trimmed := strings.TrimPrefix(path, "/"); trimmed != "" {
		for _, step := range strings.Split(trimmed, "/") {
			step = pointerUnescaper.Replace(step)
			next, ok := cur.step(step)
			if !ok {
				return Node{}, false
			}
			cur = next
		}
	}
	if cur.Empty() {
		return Node{}, false
	}
	return cur, true
}

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

func (n Node) step(s string) (Node, bool) {
	switch n.Kind() {
	case KindObject:
		return n.Field(s)
	case KindArray:
		// Leading zeros are not valid indices.
		if s == "" || len(s) > 1 && s[0] == '0' {
			return Node{}, false
		}
		idx, err := strconv.Atoi(s)
		elems := n.Elems()
		if err != nil || idx < 0 || idx >= len(elems) {
			return Node{}, false
		}
		return elems[idx], true
	}
	return Node{}, false
}
