// Command latticedemo builds a small widget tree, dumps its hierarchy and
// prints the resulting document markup. It exists to show the library end
// to end: widget nesting, hide/show, constraint aggregation and the
// hierarchy diagnostics.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/go-lattice/lattice/pkg/config"
	"github.com/go-lattice/lattice/pkg/dom"
	"github.com/go-lattice/lattice/pkg/errors"
	"github.com/go-lattice/lattice/pkg/widget"
)

func main() {
	renderMarkup := flag.Bool("html", false, "print the document markup after building the tree")
	flag.Parse()

	settings, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "latticedemo: %v\n", err)
		os.Exit(1)
	}

	newLogger := zap.NewProduction
	if settings.Verbose {
		newLogger = zap.NewDevelopment
	}
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "latticedemo: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	widget.SetLogger(logger)
	errors.SetHandler(errors.NewZapHandler(logger))

	doc := dom.NewDocument()

	app := widget.NewVBox(doc)
	app.MarkAsRoot()
	app.Show(doc.Body())

	toolbar := widget.NewHBox(doc)
	toolbar.SetMinimumSize(0, 32)
	toolbar.Show(app.ContentElement())

	content := widget.NewHBox(doc)
	content.Show(app.ContentElement())

	sidebar := widget.New(doc)
	sidebar.SetMinimumAndPreferredSizes(120, 0, 200, 0)
	sidebar.Show(content.ContentElement())

	editor := widget.NewIsolated(doc, true)
	editor.Show(content.ContentElement())

	drawer := widget.New(doc)
	drawer.Show(app.ContentElement())
	drawer.HideWidget()

	constraints := app.Constraints()
	logger.Info("aggregated constraints",
		zap.Float64("minWidth", constraints.Minimum.Width),
		zap.Float64("minHeight", constraints.Minimum.Height),
		zap.Float64("preferredWidth", constraints.Preferred.Width),
		zap.Float64("preferredHeight", constraints.Preferred.Height))

	app.PrintWidgetHierarchy()

	if *renderMarkup {
		markup, err := dom.Render(doc.Body())
		if err != nil {
			fmt.Fprintf(os.Stderr, "latticedemo: render: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(markup)
	}
}
