// Package pkg provides the libraries behind pumlrender.
//
// # Overview
//
// pumlrender batch-renders the example diagrams of PlantUML themes. All
// drawing is done by PlantUML; these packages only find work and run it:
//
//  1. [renderer] - locate the PlantUML command and invoke it per diagram
//  2. [themes] - discover theme directories and list their examples
//  3. [report] - tally outcomes, print summaries, write TOML reports
//  4. [pipeline] - orchestration (locate → discover → render → report)
//  5. [errors] - coded errors separating fatal from recoverable failures
//  6. [observability] - optional hooks around themes and renders
//
// # Data Flow
//
//	PLANTUML / PATH / PLANTUML_JAR
//	         ↓
//	    [renderer] Locator → Renderer
//	         ↓
//	    [themes] Discover → Theme → Examples
//	         ↓
//	    [renderer] Invoker (one process per file × format)
//	         ↓
//	    [report] Reporter → stdout/stderr, optional TOML
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, report.New(os.Stdout, os.Stderr), os.Stderr, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{Root: ".", Selector: "png"})
//	if err != nil {
//	    // no renderer, no themes, or bad options
//	}
//	fmt.Println(res.Summary.Succeeded, "of", res.Summary.Attempted)
package pkg
