package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/clbarnes/jsoncanvas/pkg/canvas"
	"github.com/clbarnes/jsoncanvas/pkg/canvasio"
)

// newNewCmd creates the new command, which scaffolds a starter canvas:
// a text node, a link node, and an arrowed edge between them. Node and
// edge ids are generated UUIDs, so scaffolded documents can be merged
// without id collisions.
func newNewCmd() *cobra.Command {
	var empty bool

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Write a starter canvas",
		Long: `New writes a small starter canvas to the given file, or to stdout when
no file is given. With --empty the canvas has no nodes or edges.

Examples:
  jsoncanvas new board.canvas
  jsoncanvas new --empty > blank.canvas`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := starterCanvas(empty)
			if len(args) == 0 {
				return canvasio.WriteJSON(c, cmd.OutOrStdout())
			}
			if err := canvasio.ExportJSON(c, args[0]); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "wrote %s", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&empty, "empty", false, "write a canvas with no nodes or edges")

	return cmd
}

// starterCanvas builds the scaffolded document.
func starterCanvas(empty bool) *canvas.Canvas {
	if empty {
		return &canvas.Canvas{}
	}

	text := &canvas.TextNode{
		GenericNode: canvas.GenericNode{
			ID:    uuid.NewString(),
			X:     0,
			Y:     0,
			Width: 250, Height: 60,
		},
		Text: "New canvas",
	}
	link := &canvas.LinkNode{
		GenericNode: canvas.GenericNode{
			ID:    uuid.NewString(),
			X:     0,
			Y:     180,
			Width: 250, Height: 60,
		},
		URL: "https://jsoncanvas.org/",
	}

	edge := canvas.NewEdge(
		uuid.NewString(),
		canvas.Terminal{Node: text.ID, Side: canvas.SideBottom},
		canvas.Terminal{Node: link.ID, Side: canvas.SideTop, End: canvas.EndArrow},
	)

	return &canvas.Canvas{
		Nodes: []canvas.Node{text, link},
		Edges: []canvas.Edge{edge},
	}
}
