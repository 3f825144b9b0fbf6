package notation

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestTags_Ordered(t *testing.T) {
	tags := Tags{
		"ECO":     "B01",
		EventTag:  "Club",
		FENTag:    "8/8/8/8/8/8/8/K6k w - - 0 1",
		ResultTag: Draw,
		SetupTag:  "1",
	}
	want := []TagPair{
		{EventTag, "Club"},
		{SiteTag, "?"},
		{DateTag, "????.??.??"},
		{RoundTag, "?"},
		{WhiteTag, "?"},
		{BlackTag, "?"},
		{ResultTag, Draw},
		{"ECO", "B01"},
		{FENTag, "8/8/8/8/8/8/8/K6k w - - 0 1"},
		{SetupTag, "1"},
	}
	testutil.AssertEqual(t, tags.Ordered(), want)
}

func TestTags_CloneIsIndependent(t *testing.T) {
	orig := Tags{WhiteTag: "Kasparov"}
	clone := orig.Clone()
	clone[WhiteTag] = "Karpov"
	testutil.AssertEqual(t, orig.Get(WhiteTag), "Kasparov")
	testutil.AssertEqual(t, clone.Get(BlackTag), "")
}

func TestIsSevenTagRosterTag(t *testing.T) {
	for _, name := range SevenTagRoster {
		testutil.AssertTrue(t, IsSevenTagRosterTag(name), name)
	}
	testutil.AssertFalse(t, IsSevenTagRosterTag(FENTag))
	testutil.AssertFalse(t, IsSevenTagRosterTag("event"))
}

func TestEscapeTagValue(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{`C:\games`, `C:\\games`},
		{`\"`, `\\\"`},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, EscapeTagValue(tt.in), tt.want)
	}
}
