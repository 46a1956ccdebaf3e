package userRepo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestUserIndexes(t *testing.T) {
	unique := map[string]bool{}
	names := map[string]bool{}
	for _, m := range userIndexes() {
		keys := m.Keys.(bson.D)
		if m.Options == nil || m.Options.Name == nil {
			t.Fatalf("index on %v has no name", keys)
		}
		if names[*m.Options.Name] {
			t.Fatalf("duplicate index name %q", *m.Options.Name)
		}
		names[*m.Options.Name] = true
		if len(keys) == 1 && m.Options.Unique != nil && *m.Options.Unique {
			unique[keys[0].Key] = true
		}
	}
	for _, field := range []string{"id", "username", "email"} {
		if !unique[field] {
			t.Fatalf("%s is not uniquely indexed", field)
		}
	}
}
