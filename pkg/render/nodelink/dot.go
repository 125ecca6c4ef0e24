package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ventriglisse/pkg/slide"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Path highlights the edges of a solved path.
	Path slide.Path

	// Pinned places every cell at its grid position (neato "pos" with "!"),
	// so the diagram looks like the maze. Otherwise Graphviz lays it out.
	Pinned bool
}

// ToDOT converts a slide graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(g *slide.Graph, opts Options) string {
	onPath := pathEdges(opts.Path)
	pathNodes := make(map[slide.Node]bool, len(opts.Path))
	for _, n := range opts.Path {
		pathNodes[n] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.Pinned {
		buf.WriteString("  layout=neato;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.1,0.05\"];\n")
	buf.WriteString("  edge [color=grey40];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := fmtAttrs(n, pathNodes[n], opts.Pinned)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if onPath[e] {
			fmt.Fprintf(&buf, "  %q -> %q [color=red, penwidth=3];\n", e.From.String(), e.To.String())
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From.String(), e.To.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func pathEdges(p slide.Path) map[slide.Edge]bool {
	edges := make(map[slide.Edge]bool, len(p))
	for i := 0; i+1 < len(p); i++ {
		edges[slide.Edge{From: p[i], To: p[i+1]}] = true
	}
	return edges
}

// pinScale is the distance in inches between two neighbouring cells.
const pinScale = 1.2

func fmtAttrs(n slide.Node, onPath, pinned bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", n.String())}
	switch n.Kind {
	case slide.NodeStart:
		attrs = append(attrs, "shape=circle", "fillcolor=palegreen")
	case slide.NodeEnd:
		attrs = append(attrs, "shape=doublecircle", "fillcolor=lightcoral")
	default:
		if onPath {
			attrs = append(attrs, "fillcolor=mistyrose")
		}
		if pinned {
			// Graphviz y grows upward, grid y grows downward.
			x := float64(n.Coord.X) * pinScale
			y := -float64(n.Coord.Y) * pinScale
			attrs = append(attrs, fmt.Sprintf("pos=\"%.2f,%.2f!\"", x, y))
		}
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz svg tag with one whose size
// matches its viewBox, so the image scales when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
