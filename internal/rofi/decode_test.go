package rofi

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestAcceptedEnvelope(t *testing.T) {
	for code := -1; code <= 40; code++ {
		want := code == 0 || (code >= 10 && code <= 30)
		if got := Accepted(code); got != want {
			t.Fatalf("Accepted(%d) = %v, want %v", code, got, want)
		}
	}
	if KeybindingID(9) != 0 || KeybindingID(31) != 0 {
		t.Fatalf("expected codes outside the band to map to no keybinding")
	}
}

func TestDecodeIndex(t *testing.T) {
	cases := []struct {
		name  string
		code  int
		out   string
		idx   int
		kind  error
		count int
	}{
		{name: "selected", code: 0, out: "1\n", idx: 1, count: 3},
		{name: "first", code: 0, out: "0\n", idx: 0, count: 3},
		{name: "last", code: 0, out: "2\n", idx: 2, count: 3},
		{name: "past end", code: 0, out: "3\n", idx: NoIndex, count: 3},
		{name: "out of range", code: 0, out: "5\n", idx: NoIndex, count: 3},
		{name: "negative", code: 0, out: "-1\n", idx: NoIndex, count: 3},
		{name: "custom band", code: 11, out: "2\n", idx: 2, count: 3},
		{name: "no newline", code: 0, out: "2", idx: 2, count: 3},
		{name: "blank", code: 0, out: "", idx: NoIndex, kind: ErrBlank, count: 2},
		{name: "only newline", code: 0, out: "\n", idx: NoIndex, kind: ErrBlank, count: 2},
		{name: "not a number", code: 0, out: "abc\n", idx: NoIndex, kind: ErrParse, count: 2},
		{name: "two newlines", code: 0, out: "1\n\n", idx: NoIndex, kind: ErrParse, count: 2},
		{name: "cancelled", code: 1, out: "1\n", idx: NoIndex, kind: ErrInterrupted, count: 2},
		{name: "killed", code: -1, out: "", idx: NoIndex, kind: ErrInterrupted, count: 2},
		{name: "below band", code: 9, out: "1\n", idx: NoIndex, kind: ErrInterrupted, count: 2},
		{name: "above band", code: 31, out: "1\n", idx: NoIndex, kind: ErrInterrupted, count: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, idx, err := decodeIndex(tc.code, strings.NewReader(tc.out), tc.count)
			if tc.kind != nil {
				if !errors.Is(err, tc.kind) {
					t.Fatalf("expected %v, got %v", tc.kind, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if code != tc.code {
				t.Fatalf("expected code %d, got %d", tc.code, code)
			}
			if idx != tc.idx {
				t.Fatalf("expected index %d, got %d", tc.idx, idx)
			}
		})
	}
}

func TestDecodeIndexParseErrorWrapsCause(t *testing.T) {
	_, _, err := decodeIndex(0, strings.NewReader("x\n"), 1)
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected wrapped *strconv.NumError, got %v", err)
	}
}

func TestDecodeTextStripsOneNewline(t *testing.T) {
	cases := map[string]string{
		"hello\n":   "hello",
		"hello":     "hello",
		"hello\n\n": "hello\n",
		" spaced \n": " spaced ",
	}
	for out, want := range cases {
		_, got, err := decodeText(0, strings.NewReader(out))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", out, err)
		}
		if got != want {
			t.Fatalf("%q: expected %q, got %q", out, want, got)
		}
	}
}

func TestDecodeTextInterruptedMessageHasCode(t *testing.T) {
	_, _, err := decodeText(65, strings.NewReader("ignored"))
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
	if !strings.Contains(err.Error(), "exit code 65") {
		t.Fatalf("expected exit code in message, got %q", err.Error())
	}
}
