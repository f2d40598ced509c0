// Package figure renders the magnitude-curve comparison plot.
//
// The figure overlays two theoretical curves (the dashed exact integer
// magnitude step curve and the dotted smooth gamma approximation) with
// the known solutions scatter-plotted at (n+a, log10 k). Solutions are
// styled by their a category, annotated with their k value, and
// summarized in a deduplicated legend. Output goes to PDF (vector) and
// PNG (raster, configurable DPI); identical inputs produce identical
// PNG bytes.
package figure
