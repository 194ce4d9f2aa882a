// Package renderer locates the external PlantUML renderer and invokes it.
//
// PlantUML itself does all the drawing; this package only decides which
// command to run and runs it once per (diagram, format) pair.
//
// # Locating
//
// [Locator.Locate] resolves a [Renderer] in strict priority order:
//
//  1. the PLANTUML environment variable, used verbatim;
//  2. a plantuml binary on PATH, probed with "plantuml -version";
//  3. PLANTUML_JAR run through "java -jar", which requires java on PATH.
//
// Probing never relies on a launch fault to mean "missing": [ExecProbe]
// classifies every attempt as [Found] or [NotFound]. A probe that runs but
// exits non-zero still counts as Found.
//
// # Invoking
//
// [Invoker.Render] runs the renderer inside the example directory so that
// relative includes in diagrams resolve, writing to _out/<format>/:
//
//	inv := renderer.NewInvoker(r, os.Stderr, logger)
//	res := inv.Render(ctx, renderer.FormatPNG, "/themes/starlight/examples", "/themes/starlight/examples/seq.puml")
//	if !res.OK() {
//	    // res.ExitCode, res.Stderr
//	}
package renderer
