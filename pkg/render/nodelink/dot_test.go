package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/ventriglisse/pkg/maze"
	"github.com/matzehuels/ventriglisse/pkg/slide"
)

func lGraph(t *testing.T) (*slide.Graph, slide.Path) {
	t.Helper()
	g, err := maze.ParseGrid(strings.NewReader("TLRS . .\nLR . .\nLB TB TBRE\n"))
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	sg := slide.Build(g)
	p, err := slide.Solve(sg)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return sg, p
}

func TestToDOT(t *testing.T) {
	g, _ := lGraph(t)
	dot := ToDOT(g, Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`"start" [label="start", shape=circle, fillcolor=palegreen];`,
		`"end" [label="end", shape=doublecircle, fillcolor=lightcoral];`,
		`"(0,0)" -> "(0,2)";`,
		`"(2,2)" -> "end";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "color=red") {
		t.Error("DOT highlights edges without a path")
	}
	if got := strings.Count(dot, "->"); got != g.EdgeCount() {
		t.Errorf("DOT has %d edges, want %d", got, g.EdgeCount())
	}
}

func TestToDOTPath(t *testing.T) {
	g, p := lGraph(t)
	dot := ToDOT(g, Options{Path: p})

	if got := strings.Count(dot, "color=red"); got != p.Hops() {
		t.Errorf("highlighted %d edges, want %d", got, p.Hops())
	}
	if !strings.Contains(dot, `"(0,2)" -> "(2,2)" [color=red, penwidth=3];`) {
		t.Errorf("path edge not highlighted:\n%s", dot)
	}
	if strings.Contains(dot, `"(1,2)" -> "(2,2)" [color=red`) {
		t.Error("edge off the path is highlighted")
	}
}

func TestToDOTPinned(t *testing.T) {
	g, _ := lGraph(t)
	dot := ToDOT(g, Options{Pinned: true})

	if !strings.Contains(dot, "layout=neato;") {
		t.Error("pinned DOT does not select neato")
	}
	if !strings.Contains(dot, `pos="2.40,-2.40!"`) {
		t.Errorf("cell (2,2) not pinned:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	g, p := lGraph(t)
	svg, err := RenderSVG(context.Background(), ToDOT(g, Options{Path: p}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("output is not SVG")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="x"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox() = %s, want %s", out, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}
