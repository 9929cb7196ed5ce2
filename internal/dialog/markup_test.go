package dialog

import (
	"strconv"
	"testing"
)

func TestEscapeMarkdown(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"1. Item - 5000", "1\\. Item \\- 5000"},
		{"a_b", "a\\_b"},
		{"*bold*", "*bold*"}, // bold markers survive escaping
		{"already \\. escaped", "already \\. escaped"},
		{"(parens) [brackets]", "\\(parens\\) \\[brackets\\]"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := EscapeMarkdown(tc.in); got != tc.want {
			t.Errorf("EscapeMarkdown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPackButtonsRowWidths(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{1, []int{1}},
		{3, []int{3}},
		{5, []int{5}},
		{6, []int{6}}, // 6%5==1, probed width 7 takes all six in one row
		{8, []int{5, 3}},
		{10, []int{5, 5}},
		{11, []int{7, 4}}, // 11%5==1, width 7 avoids the lone trailing button
		{12, []int{5, 5, 2}},
		{16, []int{7, 7, 2}},
	}
	for _, tc := range cases {
		buttons := make([]Button, tc.n)
		for i := range buttons {
			buttons[i] = Button{Text: strconv.Itoa(i + 1), Data: strconv.Itoa(i + 1)}
		}
		rows := PackButtons(buttons)
		if len(rows) != len(tc.want) {
			t.Errorf("n=%d: got %d rows, want %d", tc.n, len(rows), len(tc.want))
			continue
		}
		for i, row := range rows {
			if len(row) != tc.want[i] {
				t.Errorf("n=%d row %d: got %d buttons, want %d", tc.n, i, len(row), tc.want[i])
			}
		}
	}
}

func TestPackButtonsNeverStrandsOne(t *testing.T) {
	for n := 2; n <= 60; n++ {
		buttons := make([]Button, n)
		rows := PackButtons(buttons)
		last := rows[len(rows)-1]
		if len(rows) > 1 && len(last) == 1 {
			t.Errorf("n=%d: last row has a single button", n)
		}
		total := 0
		for _, row := range rows {
			total += len(row)
		}
		if total != n {
			t.Errorf("n=%d: rows hold %d buttons", n, total)
		}
	}
}
