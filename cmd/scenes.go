package cmd

import (
	"fmt"
	"io"

	"github.com/df07/go-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	writeSceneTable(ctx.App.Writer)
	return nil
}

func writeSceneTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Integrator", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.Name, info.Integrator, info.Description})
	}
	table.SetFooter([]string{"", "TOTAL", fmt.Sprintf("%d scenes", len(scene.List()))})
	table.Render()
}
