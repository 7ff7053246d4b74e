package event

import "testing"

func TestIDRoundTrip(t *testing.T) {
	id := ID{1, 2, 3}
	parsed, err := IDFromHex(id.String())
	if err != nil {
		t.Fatalf("IDFromHex: %v", err)
	}
	if parsed != id {
		t.Fatalf("round trip mismatch: got %v want %v", parsed, id)
	}
}

func TestIDFromHexInvalid(t *testing.T) {
	if _, err := IDFromHex("not-hex"); err == nil {
		t.Fatal("expected error for invalid hex")
	}
	if _, err := IDFromHex("ab"); err == nil {
		t.Fatal("expected error for short id")
	}
}

func TestIsParentMarker(t *testing.T) {
	cases := []struct {
		tag  Tag
		want bool
	}{
		{EventTag(ID{1}, ""), true},
		{EventTag(ID{1}, MarkerParent), true},
		{EventTag(ID{1}, "reply"), false},
		{HashtagTag("x"), false},
	}
	for _, c := range cases {
		if got := c.tag.IsParentMarker(); got != c.want {
			t.Errorf("IsParentMarker(%+v) = %v, want %v", c.tag, got, c.want)
		}
	}
}

func TestLessTiebreak(t *testing.T) {
	a := Event{ID: ID{1}, CreatedAt: 100}
	b := Event{ID: ID{2}, CreatedAt: 100}
	if !Less(a, b) {
		t.Fatal("expected a < b on id tiebreak")
	}
	if Less(b, a) {
		t.Fatal("expected b not < a")
	}
	c := Event{ID: ID{0}, CreatedAt: 50}
	if !Less(c, a) {
		t.Fatal("expected earlier created_at to sort first")
	}
}

func TestIsStateKind(t *testing.T) {
	for k := KindStateOpen; k <= KindStateActive; k++ {
		if !k.IsStateKind() {
			t.Errorf("%d should be a state kind", k)
		}
	}
	if KindTextNote.IsStateKind() || KindTracking.IsStateKind() {
		t.Fatal("text note / tracking must not be state kinds")
	}
}
