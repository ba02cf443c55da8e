// Package shape renders individual card shapes as SVG elements.
//
// # Overview
//
// A card is drawn from three shape variants, identified by [Kind]:
//
//   - [Circle]: cx, cy and r
//   - [Rectangle]: x, y, width and height
//   - [Ellipse]: cx, cy, rx and ry
//
// The set is closed. [Render] dispatches on the kind tag of a [Params] record
// and returns the element markup, written with github.com/ajstarks/svgo.
//
// # Params
//
// A [Params] record carries every sampled value of a shape: position, all size
// fields, fill color and opacity. Rendering only reads the fields that belong
// to the record's kind, and [Params.Validate] only checks those.
//
//	p := shape.Params{Kind: shape.Circle, X: 50, Y: 50, Radius: 20,
//	    Fill: palette.RGB{R: 255}, Opacity: 0.5}
//	markup, err := shape.Render(p)
//
// # Colors
//
// Fills default to the functional form "rgb(r, g, b)". Use [WithHexColor] for
// "#rrggbb".
package shape
