// Copyright © 2024 The seqgen authors

package diagnostic

import (
	"bytes"
	"strings"
	"testing"

	"github.com/luthersystems/seqgen/parser"
)

func testRenderer() *Renderer {
	return &Renderer{Color: ColorNever}
}

func TestRenderError(t *testing.T) {
	r := testRenderer()

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "invalid range operator",
		Source:   "{1...5}",
		Spans: []Span{
			{Col: 3, EndCol: 5, Label: "expected '..' or '..='"},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "error: invalid range operator")
	assertContains(t, got, "--> input:3")
	assertContains(t, got, "{1...5}")
	assertContains(t, got, "^^^")
	assertContains(t, got, "expected '..' or '..='")
}

func TestRenderWarning(t *testing.T) {
	r := testRenderer()

	d := Diagnostic{
		Severity: SeverityWarning,
		Message:  "step of zero produces no values",
		Source:   "{1..=5, s:0}",
		Spans: []Span{
			{Col: 9, EndCol: 11},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "warning: step of zero produces no values")
	assertContains(t, got, "--> input:9")
	assertContains(t, got, "{1..=5, s:0}")
}

func TestRenderNoSource(t *testing.T) {
	r := testRenderer()

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "some error",
		Spans: []Span{
			{Col: 3},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "error: some error")
	assertContains(t, got, "--> input:3")
	// Should have a gutter but no source line
	assertContains(t, got, "|")
	assertNotContains(t, got, "^")
}

func TestRenderNotes(t *testing.T) {
	r := testRenderer()

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "division by zero",
		Source:   "(1 / 0)",
		Spans: []Span{
			{Col: 4},
		},
		Notes: []string{
			"the divisor evaluated to zero",
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "= note: the divisor evaluated to zero")
}

func TestRenderUnderlineAlignment(t *testing.T) {
	r := testRenderer()

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "unexpected comma",
		Source:   "1,,2,3",
		Spans: []Span{
			{Col: 3, EndCol: 3},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	for _, line := range strings.Split(buf.String(), "\n") {
		if !strings.Contains(line, "^") {
			continue
		}
		// The underline sits two spaces past the gutter, like the source
		// line, so col 3 lands under the second comma.
		want := "   |  " + strings.Repeat(" ", 2) + "^"
		if line != want {
			t.Errorf("underline misaligned: %q != %q", line, want)
		}
		return
	}
	t.Errorf("no underline in output:\n%s", buf.String())
}

func TestRenderMultipleDiagnostics(t *testing.T) {
	r := testRenderer()

	diags := []Diagnostic{
		{
			Severity: SeverityWarning,
			Message:  "first",
			Source:   "1,2",
			Spans:    []Span{{Col: 1}},
		},
		{
			Severity: SeverityWarning,
			Message:  "second",
			Source:   "1,2",
			Spans:    []Span{{Col: 3}},
		},
	}

	var buf bytes.Buffer
	if err := r.RenderAll(&buf, diags); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	parts := strings.Split(got, "\n\n")
	if len(parts) < 2 {
		t.Errorf("expected diagnostics separated by blank line, got:\n%s", got)
	}
	assertContains(t, got, "warning: first")
	assertContains(t, got, "warning: second")
}

func TestRenderNoSpans(t *testing.T) {
	r := testRenderer()

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "io error: broken pipe",
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "error: io error: broken pipe")
	assertNotContains(t, got, "-->")
}

func TestFromError(t *testing.T) {
	_, err := parser.Eval("{1.=5}")
	if err == nil {
		t.Fatal("expected an error")
	}

	d := FromError(err)
	if d.Severity != SeverityError {
		t.Errorf("severity: %v", d.Severity)
	}
	if d.Source != "{1.=5}" {
		t.Errorf("source: %q", d.Source)
	}
	if len(d.Spans) != 1 {
		t.Fatalf("spans: %v", d.Spans)
	}
	if d.Spans[0].Col != 3 || d.Spans[0].EndCol != 4 {
		t.Errorf("span: %+v", d.Spans[0])
	}

	var buf bytes.Buffer
	if err := testRenderer().Render(&buf, d); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "{1.=5}")
	assertContains(t, buf.String(), "^^")
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("output does not contain %q:\n%s", want, got)
	}
}

func assertNotContains(t *testing.T, got, unwanted string) {
	t.Helper()
	if strings.Contains(got, unwanted) {
		t.Errorf("output unexpectedly contains %q:\n%s", unwanted, got)
	}
}
