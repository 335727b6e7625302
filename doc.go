// Package revdata is the Composition Root for revdata.
//
// It connects the core revision logic (ParameterFormatter and
// RevisionCollector in pkg/core) with the snapshot adapter in
// pkg/adapters/fs and the renderers in pkg/render.
//
// A project snapshot is a YAML, JSON or Markdown-frontmatter file describing
// the elements of a host document: revisions, sheets and any other element
// carrying typed parameters. revdata never writes to it.
//
// Usage:
//
//	doc, err := revdata.Open("./revisions.yaml", revdata.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	sheet, err := core.RequireSheetView(doc)
//	if err != nil {
//		return err
//	}
//	lines, err := revdata.NewCollector().CollectForReport(ctx, doc, sheet)
package revdata
