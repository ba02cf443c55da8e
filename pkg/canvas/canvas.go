// Package canvas assembles shape elements into a single SVG viewport.
//
// Shapes are appended in drawing order: later shapes are painted on top of
// earlier ones. [Canvas.Finalize] serializes the viewport and may be called
// any number of times; it always reflects the shapes appended so far.
//
//	c := canvas.New(1900, 1170, canvas.WithBackground("black"))
//	c.Append(`<circle cx="10" cy="10" r="5" />`)
//	svg := c.Finalize()
package canvas

import (
	"bytes"
	"fmt"
	"html"
)

// indent is the indentation unit of the serialized viewport.
const indent = "   "

// Option configures a Canvas.
type Option func(*Canvas)

// WithBackground sets the canvas background color (any CSS color).
func WithBackground(color string) Option { return func(c *Canvas) { c.background = color } }

// WithID sets the id attribute of the svg element.
func WithID(id string) Option { return func(c *Canvas) { c.id = id } }

// Canvas accumulates shape markup for one SVG viewport.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	background    string
	id            string
	shapes        []string
}

// New creates an empty canvas of the given size with a white background.
func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		width:      width,
		height:     height,
		background: "white",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Append adds one shape element on top of the ones already appended.
// Nothing stops appends after Finalize; they show up in the next Finalize.
func (c *Canvas) Append(markup string) *Canvas {
	c.shapes = append(c.shapes, markup)
	return c
}

// Len returns the number of appended shapes.
func (c *Canvas) Len() int { return len(c.shapes) }

// Width returns the canvas width.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height.
func (c *Canvas) Height() int { return c.height }

// Finalize returns the svg element containing every appended shape in
// insertion order. Repeated calls without appends return identical strings.
func (c *Canvas) Finalize() string {
	// The svg element sits one level deep in the document body.
	outer := indent
	inner := outer + indent

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s<!-- Define SVG drawing box -->\n", outer)
	fmt.Fprintf(&buf, `%s<svg xmlns="http://www.w3.org/2000/svg"`, outer)
	if c.id != "" {
		fmt.Fprintf(&buf, ` id="%s"`, html.EscapeString(c.id))
	}
	fmt.Fprintf(&buf, ` width="%d" height="%d" style="background-color: %s;">`+"\n",
		c.width, c.height, html.EscapeString(c.background))

	for _, s := range c.shapes {
		buf.WriteString(inner)
		buf.WriteString(s)
		buf.WriteByte('\n')
	}

	fmt.Fprintf(&buf, "%s</svg>\n", outer)
	return buf.String()
}
