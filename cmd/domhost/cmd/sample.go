package cmd

import (
	"fmt"

	"github.com/go-drift/domhost/pkg/component"
	"github.com/go-drift/domhost/pkg/dom"
	"github.com/go-drift/domhost/pkg/log"
	"github.com/go-drift/domhost/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "sample",
		Short: "Render a sample component tree as HTML",
		Long: `Resolve a small built-in component tree into a headless document and
print the resulting HTML.

The tree holds a text header, an image and a video inside a vertical
sequence. Settings from domhost.yaml apply to the video view.`,
		Usage: "domhost sample",
		Run:   runSample,
	})
}

type sampleNode struct {
	handle   *component.Static
	children []sampleNode
}

func sampleTree(cfg sampleSettings) sampleNode {
	leaf := func(id string, typ component.Type, props map[string]any) sampleNode {
		return sampleNode{handle: &component.Static{ID: id, Kind: typ, Props: props}}
	}
	return sampleNode{
		handle: &component.Static{ID: "root", Kind: component.TypeContainer, Props: map[string]any{"width": 640}},
		children: []sampleNode{{
			handle: &component.Static{ID: "column", Kind: component.TypeSequence, Props: map[string]any{"scrollDirection": "vertical"}},
			children: []sampleNode{
				leaf("title", component.TypeText, map[string]any{"text": "domhost sample", "fontSize": 24}),
				leaf("poster", component.TypeImage, map[string]any{"source": "poster.png", "width": 320, "height": 180}),
				leaf("clip", component.TypeVideo, map[string]any{
					"source": "clip.mp4",
					"volume": cfg.volume,
					"muted":  cfg.muted,
				}),
			},
		}},
	}
}

type sampleSettings struct {
	volume float64
	muted  bool
}

// resolveTree resolves n and its descendants, laying out and splicing each
// view into its parent in tree order.
func resolveTree(r *view.Renderer, n sampleNode, parent view.View) (view.View, error) {
	v, err := r.Resolve(n.handle, parent, view.EnsureLayout())
	if err != nil {
		return nil, err
	}
	for _, child := range n.children {
		if _, err := resolveTree(r, child, v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func runSample(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("sample takes no arguments\n\nUsage: domhost sample")
	}
	cfg, reg, m, err := setup()
	if err != nil {
		return err
	}

	doc := dom.NewHeadlessDocument()
	logger := log.WithComponent("renderer")
	r := view.NewRenderer(view.Options{
		Document: doc,
		VideoFit: cfg.VideoFit,
		Logger:   &logger,
		Metrics:  m,
	})
	defer r.Destroy()

	root, err := resolveTree(r, sampleTree(sampleSettings{volume: cfg.Volume, muted: cfg.Muted}), nil)
	if err != nil {
		return err
	}
	r.Mount(root)

	if err := doc.Render(stdout, root.Node()); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	return printMetrics(reg)
}
