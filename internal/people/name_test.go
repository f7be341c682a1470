package people

import "testing"

func TestFull(t *testing.T) {
	n := Name{First: "Ada", Last: "Lovelace"}
	if got := n.Full(); got != "Ada Lovelace" {
		t.Fatalf("Full = %q", got)
	}
	if got := (Name{Last: "Aristotle"}).Full(); got != "Aristotle" {
		t.Fatalf("Full without first = %q", got)
	}
}

func TestLastFirst(t *testing.T) {
	n := Name{First: "Ada", Last: "Lovelace"}
	if got := n.LastFirst(); got != "Lovelace, Ada" {
		t.Fatalf("LastFirst = %q", got)
	}
	if got := (Name{Last: "Aristotle"}).LastFirst(); got != "Aristotle" {
		t.Fatalf("LastFirst without first = %q", got)
	}
}

func TestSlugFoldsDiacritics(t *testing.T) {
	cases := []struct {
		name Name
		want string
	}{
		{Name{First: "José", Last: "García"}, "jose-garcia"},
		{Name{First: "Zoë", Last: "O'Brien"}, "zoe-o-brien"},
		{Name{First: "Ada", Last: "Lovelace"}, "ada-lovelace"},
		{Name{First: "Đông", Last: "Nguyễn"}, "ong-nguyen"},
	}
	for _, tc := range cases {
		if got := tc.name.Slug(); got != tc.want {
			t.Errorf("Slug(%v) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSlugifyCollapsesSeparators(t *testing.T) {
	if got := Slugify("  A.  B--C  "); got != "a-b-c" {
		t.Fatalf("Slugify = %q", got)
	}
	if got := Slugify("???"); got != "" {
		t.Fatalf("Slugify of symbols = %q, want empty", got)
	}
}
