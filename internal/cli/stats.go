package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clbarnes/jsoncanvas/pkg/canvas"
	"github.com/clbarnes/jsoncanvas/pkg/canvasio"
)

// newStatsCmd creates the stats command, a read-only summary of one
// canvas file: node counts per kind, edge count, and the bounding box
// enclosing all node rectangles.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize the contents of a canvas file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := canvasio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			printStats(cmd, args[0], c)
			return nil
		},
	}
}

// bounds is the smallest rectangle enclosing a set of node rectangles.
type bounds struct {
	minX, minY, maxX, maxY canvas.Coordinate
}

// boundingBox computes the bounding box of all nodes.
// ok is false for a canvas with no nodes.
func boundingBox(c *canvas.Canvas) (bounds, bool) {
	if len(c.Nodes) == 0 {
		return bounds{}, false
	}
	g := c.Nodes[0].Generic()
	b := bounds{g.X, g.Y, g.X + canvas.Coordinate(g.Width), g.Y + canvas.Coordinate(g.Height)}
	for _, n := range c.Nodes[1:] {
		g := n.Generic()
		b.minX = min(b.minX, g.X)
		b.minY = min(b.minY, g.Y)
		b.maxX = max(b.maxX, g.X+canvas.Coordinate(g.Width))
		b.maxY = max(b.maxY, g.Y+canvas.Coordinate(g.Height))
	}
	return b, true
}

func printStats(cmd *cobra.Command, path string, c *canvas.Canvas) {
	out := cmd.OutOrStdout()

	kinds := make(map[canvas.NodeType]int)
	for _, n := range c.Nodes {
		kinds[n.Type()]++
	}

	printSuccess(out, "%s", styleTitle.Render(path))
	printField(out, "nodes", len(c.Nodes))
	for _, t := range []canvas.NodeType{canvas.NodeTypeText, canvas.NodeTypeFile, canvas.NodeTypeLink, canvas.NodeTypeGroup} {
		if kinds[t] > 0 {
			printField(out, "  "+string(t), kinds[t])
		}
	}
	printField(out, "edges", len(c.Edges))
	if b, ok := boundingBox(c); ok {
		printField(out, "bounds", fmt.Sprintf("(%d, %d) to (%d, %d)", b.minX, b.minY, b.maxX, b.maxY))
	}
	if unknown := c.UnknownNodes(); len(unknown) > 0 {
		printWarning(out, "%d unknown node reference(s)", len(unknown))
	}
}
