package search

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestPrefixFolds(t *testing.T) {
	r := Prefix("Kim")
	if r["$gte"] != "kim" {
		t.Errorf("$gte = %v, want folded keyword", r["$gte"])
	}
	if r["$lt"] != "kim￿" {
		t.Errorf("$lt = %v, want folded keyword plus high sentinel", r["$lt"])
	}
}

func TestPrefixRawKeepsCase(t *testing.T) {
	r := PrefixRaw("CS101")
	if r["$gte"] != "CS101" || r["$lt"] != "CS101￿" {
		t.Errorf("range = %v", r)
	}
}

func TestAnyField(t *testing.T) {
	or := AnyField("kim", "login_id_ci", "full_name_ci")
	if len(or) != 2 {
		t.Fatalf("len = %d, want 2", len(or))
	}
	first, ok := or[0].(bson.M)
	if !ok {
		t.Fatalf("element type %T", or[0])
	}
	if _, present := first["login_id_ci"]; !present {
		t.Errorf("first clause = %v", first)
	}
}
