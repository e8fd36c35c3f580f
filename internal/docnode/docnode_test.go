package docnode

import (
	"errors"
	"strings"
	"testing"
)

const fieldsJSON = `{
  "name": "board",
  "dec": 31,
  "hex": "0x1F",
  "oct": "037",
  "str": "31",
  "bad": "abc",
  "frac": 1.5,
  "whole": 2.0,
  "neg": -4,
  "big": 300,
  "flag": true,
  "list": [1, "0x2", 3],
  "mixed": [1, "nope"],
  "objs": [{"name": "a", "v": 1}, {"v": 2}, {"name": "b", "v": 3}],
  "empty": [],
  "nested": {"inner": {"k": "v"}, "a/b": 7, "t~x": 8}
}`

func mustParse(t *testing.T, data string, f Format) Node {
	t.Helper()
	n, err := Parse([]byte(data), f)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return n
}

func TestFieldOrFail_IntegerForms(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	for _, name := range []string{"dec", "hex", "oct", "str"} {
		got, err := FieldOrFail[int](root, name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != 31 {
			t.Errorf("%s = %d, want 31", name, got)
		}
	}
}

func TestFieldOrFail_NonNumericString(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	_, err := FieldOrFail[int](root, "bad")
	if !errors.Is(err, ErrWrongType) {
		t.Errorf("err = %v, want ErrWrongType", err)
	}
}

func TestFieldOrFail_Missing(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	_, err := FieldOrFail[string](root, "nope")
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("err = %v, want ErrMissingField", err)
	}
}

func TestFieldOrFail_WrongScalarType(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	if _, err := FieldOrFail[string](root, "dec"); !errors.Is(err, ErrWrongType) {
		t.Errorf("string from number: err = %v, want ErrWrongType", err)
	}
	if _, err := FieldOrFail[int](root, "flag"); !errors.Is(err, ErrWrongType) {
		t.Errorf("int from bool: err = %v, want ErrWrongType", err)
	}
	if _, err := FieldOrFail[int](root, "frac"); !errors.Is(err, ErrWrongType) {
		t.Errorf("int from 1.5: err = %v, want ErrWrongType", err)
	}
	if _, err := FieldOrFail[uint8](root, "big"); !errors.Is(err, ErrWrongType) {
		t.Errorf("uint8 from 300: err = %v, want ErrWrongType", err)
	}
	if _, err := FieldOrFail[uint32](root, "neg"); !errors.Is(err, ErrWrongType) {
		t.Errorf("uint32 from -4: err = %v, want ErrWrongType", err)
	}
}

func TestFieldOrFail_OtherTypes(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	if got, _ := FieldOrFail[string](root, "name"); got != "board" {
		t.Errorf("name = %q, want board", got)
	}
	if got, _ := FieldOrFail[bool](root, "flag"); !got {
		t.Error("flag = false, want true")
	}
	if got, _ := FieldOrFail[float64](root, "frac"); got != 1.5 {
		t.Errorf("frac = %v, want 1.5", got)
	}
	if got, _ := FieldOrFail[int](root, "whole"); got != 2 {
		t.Errorf("whole = %d, want 2", got)
	}
	if got, _ := FieldOrFail[int64](root, "neg"); got != -4 {
		t.Errorf("neg = %d, want -4", got)
	}
}

func TestFieldOr_Default(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	if got := FieldOr(root, "missing", 7); got != 7 {
		t.Errorf("missing = %d, want 7", got)
	}
	if got := FieldOr(root, "bad", 9); got != 9 {
		t.Errorf("malformed = %d, want 9", got)
	}
	if got := FieldOr(root, "hex", 0); got != 31 {
		t.Errorf("hex = %d, want 31", got)
	}
}

func TestFieldOrNil(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	if p := FieldOrNil[int](root, "missing"); p != nil {
		t.Errorf("missing = %v, want nil", *p)
	}
	if p := FieldOrNil[int](root, "bad"); p != nil {
		t.Errorf("bad = %v, want nil", *p)
	}
	p := FieldOrNil[string](root, "name")
	if p == nil || *p != "board" {
		t.Errorf("name = %v, want board", p)
	}
}

func TestArrayOrFail(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	got, err := ArrayOrFail[int](root, "list")
	if err != nil {
		t.Fatalf("ArrayOrFail: %v", err)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("list[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestArrayOrFail_Errors(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	if _, err := ArrayOrFail[int](root, "missing"); !errors.Is(err, ErrMissingArray) {
		t.Errorf("missing: err = %v, want ErrMissingArray", err)
	}
	if _, err := ArrayOrFail[int](root, "dec"); !errors.Is(err, ErrMissingArray) {
		t.Errorf("scalar: err = %v, want ErrMissingArray", err)
	}
	if _, err := ArrayOrFail[int](root, "mixed"); !errors.Is(err, ErrWrongType) {
		t.Errorf("mixed: err = %v, want ErrWrongType", err)
	}
}

func TestArrayOr(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	got, err := ArrayOr(root, "missing", []string{"x"})
	if err != nil || len(got) != 1 || got[0] != "x" {
		t.Errorf("missing = %v, %v, want [x], nil", got, err)
	}
	if _, err := ArrayOr(root, "name", []string{}); !errors.Is(err, ErrWrongType) {
		t.Errorf("non-array: err = %v, want ErrWrongType", err)
	}
}

func TestFindChildByNameOrFail(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	objs, _ := root.Field("objs")

	b, err := FindChildByNameOrFail(objs, "b")
	if err != nil {
		t.Fatalf("find b: %v", err)
	}
	if v := FieldOr(b, "v", 0); v != 3 {
		t.Errorf("b.v = %d, want 3", v)
	}

	// The unnamed element compares as "".
	anon, err := FindChildByNameOrFail(objs, "")
	if err != nil {
		t.Fatalf("find empty: %v", err)
	}
	if v := FieldOr(anon, "v", 0); v != 2 {
		t.Errorf("anon.v = %d, want 2", v)
	}

	if _, err := FindChildByNameOrFail(objs, "zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetByPath(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)

	if n, ok := GetByPath(root, "/nested/inner/k"); !ok || n.Kind() != KindString {
		t.Errorf("/nested/inner/k: ok=%v kind=%v", ok, n.Kind())
	}
	if n, ok := GetByPath(root, "/objs/2/name"); !ok {
		t.Error("/objs/2/name not found")
	} else if s, _ := As[string](n); s != "b" {
		t.Errorf("/objs/2/name = %q, want b", s)
	}
	if n, ok := GetByPath(root, "/nested/a~1b"); !ok {
		t.Error("escaped slash not resolved")
	} else if v, _ := As[int](n); v != 7 {
		t.Errorf("/nested/a~1b = %d, want 7", v)
	}
	if _, ok := GetByPath(root, "/nested/t~0x"); !ok {
		t.Error("escaped tilde not resolved")
	}
	if _, ok := GetByPath(root, "/objs/01"); ok {
		t.Error("leading-zero index resolved")
	}
	if _, ok := GetByPath(root, "/objs/9"); ok {
		t.Error("out-of-range index resolved")
	}
	if _, ok := GetByPath(root, "/nope"); ok {
		t.Error("missing key resolved")
	}
	if _, ok := GetByPath(root, "/"); !ok {
		t.Error("root not resolved")
	}
}

func TestGetByPath_EmptyContainerIsAbsent(t *testing.T) {
	root := mustParse(t, fieldsJSON, FormatJSON)
	if _, ok := GetByPath(root, "/empty"); ok {
		t.Error("empty array reported present")
	}
	root = mustParse(t, `{"a": {}, "b": null, "c": 0}`, FormatJSON)
	if _, ok := GetByPath(root, "/a"); ok {
		t.Error("empty object reported present")
	}
	if _, ok := GetByPath(root, "/b"); ok {
		t.Error("null reported present")
	}
	if _, ok := GetByPath(root, "/c"); !ok {
		t.Error("zero scalar reported absent")
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{`{"a":`, `{} {}`, `[1,]`} {
		if _, err := Parse([]byte(in), FormatJSON); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) err = %v, want ErrParse", in, err)
		}
	}
	if _, err := Parse([]byte("a: [1, 2"), FormatYAML); !errors.Is(err, ErrParse) {
		t.Errorf("yaml err = %v, want ErrParse", err)
	}
}

func TestParse_YAML(t *testing.T) {
	root := mustParse(t, `
textures:
  - name: pieces
    file: pieces.png
    transparencyX: "0x10"
    transparencyY: 2
`, FormatYAML)
	arr, ok := GetByPath(root, "/textures")
	if !ok {
		t.Fatal("/textures missing")
	}
	tex, err := FindChildByNameOrFail(arr, "pieces")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if x := FieldOr(tex, "transparencyX", 0); x != 16 {
		t.Errorf("transparencyX = %d, want 16", x)
	}
	if y := FieldOr(tex, "transparencyY", 0); y != 2 {
		t.Errorf("transparencyY = %d, want 2", y)
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"a.json":     FormatJSON,
		"a.yaml":     FormatYAML,
		"dir/B.YML":  FormatYAML,
		"noext":      FormatJSON,
		"x.yaml.bak": FormatJSON,
	}
	for in, want := range cases {
		if got := FormatFromPath(in); got != want {
			t.Errorf("FormatFromPath(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestNode_String_Truncates(t *testing.T) {
	long := `{"k": "` + strings.Repeat("a", 200) + `"}`
	n := mustParse(t, long, FormatJSON)
	if s := n.String(); len(s) != maxDump+3 {
		t.Errorf("len(String()) = %d, want %d", len(s), maxDump+3)
	}
}
