// Package testutil provides shared test utilities for the chess-rules-go project.
package testutil

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		reportDiff(t, diff, msgAndArgs...)
	}
}

// AssertSameElements compares two string slices ignoring order, as needed
// for move lists whose generation order is unspecified.
func AssertSameElements(t testing.TB, got, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		reportDiff(t, diff, msgAndArgs...)
	}
}

// AssertBoardEqual compares two boards square by square, including side to
// move, castling rights, en passant target and clocks.
func AssertBoardEqual(t testing.TB, got, want chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(chess.Board{})); diff != "" {
		reportDiff(t, fmt.Sprintf("want FEN %s\n got FEN %s\n%s", want.FEN(), got.FEN(), diff), msgAndArgs...)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		if msg := formatMessage(msgAndArgs...); msg != "" {
			t.Errorf("%s: unexpected error: %v", msg, err)
		} else {
			t.Errorf("unexpected error: %v", err)
		}
	}
}

// AssertErrorIs fails unless err wraps target.
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !stderrors.Is(err, target) {
		if msg := formatMessage(msgAndArgs...); msg != "" {
			t.Errorf("%s: error = %v; want %v", msg, err, target)
		} else {
			t.Errorf("error = %v; want %v", err, target)
		}
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		if msg := formatMessage(msgAndArgs...); msg != "" {
			t.Errorf("%s: %q does not contain %q", msg, got, substr)
		} else {
			t.Errorf("%q does not contain %q", got, substr)
		}
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		if msg := formatMessage(msgAndArgs...); msg != "" {
			t.Errorf("%s: expected true but got false", msg)
		} else {
			t.Error("expected true but got false")
		}
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		if msg := formatMessage(msgAndArgs...); msg != "" {
			t.Errorf("%s: expected false but got true", msg)
		} else {
			t.Error("expected false but got true")
		}
	}
}

// reportDiff prints a cmp diff with the optional message prefix.
func reportDiff(t testing.TB, diff string, msgAndArgs ...interface{}) {
	t.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	} else {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
