// Package io writes generated cards and their shape records.
//
// # Cards
//
// [WriteFile] writes a finished HTML document, creating or overwriting the
// target. Any failure is reported as an IO_FAILURE error and is fatal to the
// card; nothing is retried.
//
// # Shape Records
//
// Shape records can be exported as JSON for inspection or external tooling:
//
//	{
//	  "shapes": [
//	    {"index": 1, "kind": "circle", "x": 10, "y": 20, "radius": 5,
//	     "width": 40, "height": 12, "rx": 15, "ry": 22,
//	     "fill": {"r": 0, "g": 200, "b": 0}, "hex": "#00c800", "opacity": 0.4}
//	  ]
//	}
//
// Every size field is present for every shape; the kind decides which ones
// were drawn. Use [WriteRecordsJSON] to export and [ReadRecordsJSON] to read
// an export back.
package io
