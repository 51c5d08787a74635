package stc

import (
	"testing"
)

type patchTest struct {
	name  string
	doc   string
	patch string
	want  string
}

var patchTests = []patchTest{
	{
		name:  "replace",
		doc:   "a: 1\nb: 2\n",
		patch: `[{"op":"replace","path":"/b","value":3}]`,
		want:  "a: 1\nb: 3\n",
	},
	{
		name:  "add",
		doc:   "a: 1\n",
		patch: `[{"op":"add","path":"/b","value":[1,2]}]`,
		want:  "a: 1\nb.$0: 1\nb.$1: 2\n",
	},
	{
		name:  "remove",
		doc:   "a: 1\nb: 2\n",
		patch: `[{"op":"remove","path":"/a"}]`,
		want:  "b: 2\n",
	},
	{
		name:  "list-insert",
		doc:   "xs.$0: 1\nxs.$1: 3\n",
		patch: `[{"op":"add","path":"/xs/1","value":2}]`,
		want:  "xs.$0: 1\nxs.$1: 2\nxs.$2: 3\n",
	},
}

func TestPatch(t *testing.T) {
	for _, tc := range patchTests {
		t.Run(tc.name, func(t *testing.T) {
			doc := MustParse([]byte(tc.doc))
			got, err := Patch(doc, []byte(tc.patch))
			if err != nil {
				t.Fatal(err)
			}
			want := MustParse([]byte(tc.want))
			if !got.Equal(want) {
				d, _ := Diff(want, got)
				t.Errorf("patch result differs:\n%s", d)
			}
		})
	}
}

func TestPatchErrors(t *testing.T) {
	doc := MustParse([]byte("a: 1\n"))
	if _, err := Patch(doc, []byte(`{"not":"a patch"}`)); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := Patch(doc, []byte(`[{"op":"remove","path":"/missing"}]`)); err == nil {
		t.Fatal("expected apply error")
	}
}

func TestMergePatch(t *testing.T) {
	doc := MustParse([]byte("a: 1\nb.c: 2\nb.d: 3\n"))
	patch := MustParse([]byte("b.c: 9\ne: 4\n"))
	got, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := MustParse([]byte("a: 1\nb.c: 9\nb.d: 3\ne: 4\n"))
	if !got.Equal(want) {
		d, _ := Diff(want, got)
		t.Errorf("merge patch result differs:\n%s", d)
	}
}
