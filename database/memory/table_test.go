package memory

import "testing"

func TestTable(t *testing.T) {
	tbl := NewTable[string]()
	if !tbl.Insert("a", "alpha", nil) || !tbl.Insert("b", "beta", nil) {
		t.Fatal("insert failed")
	}
	if tbl.Insert("a", "again", nil) {
		t.Fatal("duplicate id accepted")
	}
	if tbl.Insert("c", "alpha", func(v string) bool { return v == "alpha" }) {
		t.Fatal("conflicting row accepted")
	}
	if !tbl.Replace("b", "bravo") || tbl.Replace("z", "zulu") {
		t.Fatal("replace semantics wrong")
	}
	if v, ok := tbl.Find(func(v string) bool { return v == "bravo" }); !ok || v != "bravo" {
		t.Fatalf("find = %q %v", v, ok)
	}
	if !tbl.Delete("a") || tbl.Delete("a") {
		t.Fatal("delete semantics wrong")
	}
	if all := tbl.All(); len(all) != 1 || all[0] != "bravo" {
		t.Fatalf("all = %v", all)
	}
}
