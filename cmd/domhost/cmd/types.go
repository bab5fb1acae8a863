package cmd

import (
	"fmt"

	"github.com/go-drift/domhost/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "types",
		Short: "List supported component types",
		Long: `List the component types the renderer can construct views for.

Types marked "text" are measured before the engine lays them out.`,
		Usage: "domhost types",
		Run:   runTypes,
	})
}

func runTypes(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("types takes no arguments\n\nUsage: domhost types")
	}
	for _, typ := range view.SupportedTypes() {
		kind := ""
		if typ.IsText() {
			kind = "text"
		}
		fmt.Fprintf(stdout, "  %-14s %s\n", typ, kind)
	}
	return nil
}
