package search

import "testing"

func TestStateQueryAndVisibility(t *testing.T) {
	s := New()
	if got := s.Snapshot(); got != (Snapshot{}) {
		t.Fatalf("expected zero state, got %+v", got)
	}

	s.SetQuery("shirt")
	s.Show()
	if got := s.Snapshot(); got.Query != "shirt" || !got.Visible {
		t.Fatalf("unexpected state %+v", got)
	}

	s.Clear()
	s.Hide()
	if got := s.Snapshot(); got.Query != "" || got.Visible {
		t.Fatalf("expected cleared hidden state, got %+v", got)
	}
}

func TestVisibleOnRequiresFlagAndCollectionPath(t *testing.T) {
	s := New()
	if s.VisibleOn("/collection") {
		t.Fatal("hidden state must not render")
	}

	s.Show()
	cases := map[string]bool{
		"/collection":          true,
		"/collection/men":      true,
		"/api/v1/collection?x": true,
		"/":                    false,
		"/cart":                false,
		"/products/p001":       false,
	}
	for path, want := range cases {
		if got := s.VisibleOn(path); got != want {
			t.Fatalf("VisibleOn(%q) = %v, want %v", path, got, want)
		}
	}
}
