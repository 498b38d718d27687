// Package export renders a time tree of journal entries as an org-mode
// outline document.
//
// This package owns the shape of the output document. Everything above it
// decides what to render; everything below it decides how entry text is
// converted.
//
// # Document Shape
//
// The outline nests four heading levels, one per calendar grouping, with
// entries under their day:
//
//	* 2021
//	** 2021-3 March
//	*** 2021-3-5 Friday
//	**** Trip to the coast
//	:PROPERTIES:
//	:Location: Brighton Beach
//	:Weather: Partly Cloudy
//	:END:
//	The water was freezing but worth it.
//
// Year, month, and day headings use unpadded numbers. Months and days only
// appear when they have entries, always in ascending calendar order, and
// entries within a day keep the order the journal listed them in.
//
// # Entry Nodes
//
// Each entry contributes a level-four heading (its first text line, or
// "Empty" when it has none), a :PROPERTIES: block with one line per
// captured attribute sorted by key, and the entry body as converted by the
// pandoc layer. Photo placeholders in titles and bodies are resolved to
// image links before the entry is written.
//
// # Rendering
//
//	err := export.Render(ctx, os.Stdout, root, pandoc.CLI{})
//
// Render streams the document to its writer as it walks the tree. The same
// tree always renders to the same bytes; nothing in the walk depends on map
// iteration order.
package export
