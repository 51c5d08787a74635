package ir

import "testing"

func TestFromMapSortsFields(t *testing.T) {
	v := FromMap(map[string]*Value{
		"zed":   FromInt(1),
		"alpha": FromInt(2),
		"mid":   FromInt(3),
	})
	want := []string{"alpha", "mid", "zed"}
	for i, f := range v.Fields {
		if f != want[i] {
			t.Fatalf("field %d: got %q, want %q", i, f, want[i])
		}
	}
	if got := v.Get("mid"); got == nil || got.Int64 != 3 {
		t.Fatalf("Get(mid) = %v", got)
	}
	if v.Get("nope") != nil {
		t.Fatal("Get on absent field should be nil")
	}
}

func TestSetKeepsOrder(t *testing.T) {
	v := EmptyObject()
	v.Set("b", FromInt(1))
	v.Set("a", FromInt(2))
	v.Set("b", FromInt(3))
	if len(v.Fields) != 2 || v.Fields[0] != "a" || v.Fields[1] != "b" {
		t.Fatalf("fields: %v", v.Fields)
	}
	if v.Get("b").Int64 != 3 {
		t.Fatalf("Set did not replace: %v", v.Get("b"))
	}
}

func TestGetPath(t *testing.T) {
	doc := FromMap(map[string]*Value{
		"list": FromSlice([]*Value{
			FromInt(2),
			FromMap(map[string]*Value{"x": FromString("deep")}),
		}),
		"name": FromInt(1),
	})
	got, err := doc.GetPath("list.$1.x")
	if err != nil {
		t.Fatal(err)
	}
	if got.String != "deep" {
		t.Fatalf("got %v", got)
	}
	got, err = doc.GetPath("list.nope")
	if err == nil {
		t.Fatalf("field lookup in array should error, got %v", got)
	}
	got, err = doc.GetPath("missing")
	if err != nil || got != nil {
		t.Fatalf("absent field: got %v, %v", got, err)
	}
	if _, err := doc.GetPath("list.$7"); err == nil {
		t.Fatal("out of bounds index should error")
	}
}

func TestCompareIntFloat(t *testing.T) {
	if Compare(FromInt(3), FromFloat(3.0)) != 0 {
		t.Fatal("3 and 3.0 should compare equal")
	}
	if Equal(FromInt(3), FromFloat(3.0)) {
		t.Fatal("3 and 3.0 must not be Equal")
	}
	if !Equal(FromInt(3), FromInt(3)) {
		t.Fatal("3 == 3")
	}
	if Compare(FromInt(2), FromFloat(2.5)) >= 0 {
		t.Fatal("2 < 2.5")
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := FromMap(map[string]*Value{
		"a": FromSlice([]*Value{FromInt(1)}),
	})
	cp := orig.Clone()
	cp.Get("a").Values[0].Int64 = 99
	if orig.Get("a").Values[0].Int64 != 1 {
		t.Fatal("clone shares structure with original")
	}
	if !Equal(orig, orig.Clone()) {
		t.Fatal("clone should be equal to original")
	}
}

func TestMarshalJSON(t *testing.T) {
	doc := FromMap(map[string]*Value{
		"name": FromInt(1),
		"list": FromSlice([]*Value{FromInt(2), FromInt(3)}),
		"f":    FromFloat(3.0),
	})
	d, err := doc.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"f":3.0,"list":[2,3],"name":1}`
	if string(d) != want {
		t.Fatalf("got %s, want %s", d, want)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(doc, back) {
		t.Fatalf("JSON round trip changed value: %v", back)
	}
}

func TestMarshalJSONNonFinite(t *testing.T) {
	if _, err := FromFloat(1.0 / zero()).MarshalJSON(); err == nil {
		t.Fatal("Inf must not marshal")
	}
}

func zero() float64 { return 0 }

func TestTruth(t *testing.T) {
	truthy := []*Value{FromBool(true), FromInt(1), FromFloat(0.5), FromString("x"),
		FromSlice([]*Value{Null()}), FromMap(map[string]*Value{"a": Null()})}
	falsy := []*Value{Null(), FromBool(false), FromInt(0), FromFloat(0), FromString(""),
		EmptyArray(), EmptyObject()}
	for _, v := range truthy {
		if !Truth(v) {
			t.Fatalf("%s should be true", v.Type)
		}
	}
	for _, v := range falsy {
		if Truth(v) {
			t.Fatalf("%s should be false", v.Type)
		}
	}
}
