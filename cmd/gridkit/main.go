// Package main is a terminal demo driving the grid engine: a tcell
// renderer over an in-memory store exercising sorting, filtering,
// selection, editing, column layout and layout persistence.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridkit/internal/config"
	"github.com/dshills/gridkit/internal/grid"
	"github.com/dshills/gridkit/internal/grid/column"
	"github.com/dshills/gridkit/internal/grid/selection"
	"github.com/dshills/gridkit/internal/script"
	"github.com/dshills/gridkit/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	layoutPath := flag.String("layout", "", "layout file to load on start and save with 'w'")
	watch := flag.Bool("watch", false, "apply layout file changes while running")
	flag.Parse()

	st := store.NewMemStore()
	st.Load(sampleRecords())

	engine, err := grid.New(st, sampleColumns(), grid.WithSelectionMode(selection.ModeMulti))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build grid: %v\n", err)
		return 1
	}

	if *layoutPath != "" {
		if layout, err := config.LoadFile(*layoutPath); err == nil {
			engine.ApplyLayout(layout)
		}
	}

	formatters := script.NewFormatters()
	defer formatters.Close()
	if err := formatters.Register("age", `return function(v) return string.format("%g yrs", v) end`); err != nil {
		fmt.Fprintf(os.Stderr, "Error: formatter: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	ui := &demoUI{
		screen:     screen,
		engine:     engine,
		store:      st,
		formatters: formatters,
		layoutPath: *layoutPath,
	}

	if *watch && *layoutPath != "" {
		w, err := config.Watch(*layoutPath, func(l config.Layout, err error) {
			if err != nil {
				return
			}
			// Hand the layout to the engine on the UI thread.
			screen.PostEvent(tcell.NewEventInterrupt(l))
		})
		if err == nil {
			defer w.Close()
		}
	}

	ui.loop()
	return 0
}

func sampleColumns() []column.Column {
	return []column.Column{
		{Field: "id", Label: "ID", Type: column.TypeNumber, Sortable: true, Width: column.Px(50)},
		{Field: "name", Label: "Name", Sortable: true, Filterable: true, Width: column.Px(140)},
		{Field: "age", Label: "Age", Type: column.TypeNumber, Sortable: true, Filterable: true, Width: column.Px(90)},
		{Field: "city", Label: "City", Sortable: true, Filterable: true},
		{Field: "active", Label: "Active", Type: column.TypeBool, Width: column.Px(70)},
	}
}

func sampleRecords() []store.Record {
	return []store.Record{
		{"id": 1, "name": "Bob", "age": 35, "city": "Austin", "active": true},
		{"id": 2, "name": "Ann", "age": 25, "city": "Boston", "active": true},
		{"id": 3, "name": "Cara", "age": 35, "city": "Denver", "active": false},
		{"id": 4, "name": "Dan", "age": 30, "city": "Austin", "active": true},
		{"id": 5, "name": "Eve", "age": 41, "city": "Chicago", "active": false},
		{"id": 6, "name": "Frank", "age": 28, "city": "Boston", "active": true},
	}
}
