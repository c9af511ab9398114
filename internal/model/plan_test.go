package model

import "testing"

func TestSourceSpecMatchesExtension(t *testing.T) {
	spec := SourceSpec{Extensions: []string{".java", ".kt"}}

	if !spec.MatchesExtension("modules/user/User.java") {
		t.Fatal("expected .java to match")
	}

	if !spec.MatchesExtension("modules/user/User.kt") {
		t.Fatal("expected .kt to match")
	}

	if spec.MatchesExtension("modules/user/User.class") {
		t.Fatal("expected .class not to match")
	}
}

func TestImportRuleParents(t *testing.T) {
	rule := ImportRule{
		Old: "com.demo.auth.entity.User",
		New: "com.demo.auth.modules.user.entity.User",
	}

	if rule.OldParent() != "com.demo.auth.entity" {
		t.Fatalf("OldParent() = %q", rule.OldParent())
	}

	if rule.NewParent() != "com.demo.auth.modules.user.entity" {
		t.Fatalf("NewParent() = %q", rule.NewParent())
	}
}
