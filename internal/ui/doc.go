// Package ui holds the sportsdash palette and the components the CLI
// subcommands print with.
//
// The dashboard itself lives in package tui; it takes its chrome styles
// (tab bar, status line, live indicator) and the document palette from
// DocumentStyles here so both surfaces look alike.
//
// # Reports
//
// One-shot subcommands such as "sportsdash standings" build the same
// documents the dashboard shows and print them through a Printer:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Standings", "sportsdash standings",
//	    ui.Param{Key: "View", Value: "division"})
//	p.PrintDocument(elems)
//
// When stdout is not a terminal the Printer switches to plain output: no
// borders, no color, and document.PlainStyles for the body.
//
// Failures are printed with PrintError, which adds troubleshooting tips
// matched to the data service error category.
package ui
