package sim

import (
	"fmt"
	"testing"
)

func TestMessageLog_Recent(t *testing.T) {
	l := NewMessageLog()
	l.Add(1, MsgInfo, "first")
	l.Add(1, MsgGood, "second")
	l.Add(2, MsgBad, "third")

	got := l.Recent(2)
	if len(got) != 2 {
		t.Fatalf("Recent(2) returned %d entries", len(got))
	}
	if got[0].Text != "second" || got[1].Text != "third" {
		t.Errorf("Recent(2) = %q, %q; want oldest first", got[0].Text, got[1].Text)
	}

	if l.Recent(0) != nil {
		t.Error("Recent(0) should be nil")
	}
	if len(l.Recent(10)) != 3 {
		t.Error("Recent beyond length should return everything")
	}
}

func TestMessageLog_Bounded(t *testing.T) {
	l := NewMessageLog()
	for i := 0; i < maxMessages+20; i++ {
		l.Add(1, MsgInfo, fmt.Sprintf("message %d", i))
	}

	if l.Len() != maxMessages {
		t.Fatalf("log holds %d entries, want cap %d", l.Len(), maxMessages)
	}
	newest := l.Recent(1)[0]
	if want := fmt.Sprintf("message %d", maxMessages+19); newest.Text != want {
		t.Errorf("newest = %q, want %q", newest.Text, want)
	}
}
