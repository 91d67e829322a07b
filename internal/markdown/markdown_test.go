package markdown

import (
	"strings"
	"testing"
)

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func TestToPlainText_Structure(t *testing.T) {
	md := "# Voting\n\nPolls open at **7am**.\n\n- Bring ID.\n- Bring a *pen*.\n"

	got := nonEmptyLines(ToPlainText([]byte(md)))
	want := []string{"Voting", "Polls open at 7am.", "Bring ID.", "Bring a pen."}

	if len(got) != len(want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestToPlainText_LinksAndCode(t *testing.T) {
	md := "See the [county site](https://example.gov/vote) and run `civiclink`."

	got := ToPlainText([]byte(md))
	if got != "See the county site and run civiclink." {
		t.Errorf("unexpected output %q", got)
	}
}

func TestToPlainText_DropsMarkup(t *testing.T) {
	md := "## Deadlines\n\n> Register by **October 1**.\n\n<div>hidden</div>\n"

	got := ToPlainText([]byte(md))
	for _, bad := range []string{"#", "**", ">", "<div>", "hidden"} {
		if strings.Contains(got, bad) {
			t.Errorf("output %q still contains %q", got, bad)
		}
	}
	if !strings.Contains(got, "Register by October 1.") {
		t.Errorf("expected quote text in output, got %q", got)
	}
}

func TestToPlainText_Empty(t *testing.T) {
	if got := ToPlainText(nil); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
