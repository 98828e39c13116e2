// Package pkg provides the core libraries for treecanvas.
//
// # Overview
//
// treecanvas draws ASCII trees: each tree is a triangular crown of '*'
// cells with a one-column trunk, placed on the smallest '.'-filled canvas
// that holds every tree. The pkg directory is organized leaf-first:
//
//  1. [geom] - Integer coordinates and component-wise max
//  2. [tree] - Tree geometry (required canvas size, validity)
//  3. [errors] - Coded errors shared by every stage
//  4. [input] - Line-oriented reader that accepts or rejects trees
//  5. [raster] - Row-major character buffer and tree drawing
//  6. [sink] - Text, JSON and TOML encoders for a finished canvas
//  7. [pipeline] - Orchestration (read → rasterize → render)
//  8. [observability] - Optional hooks around the pipeline stages
//
// # Architecture
//
//	stdin lines
//	     ↓
//	[input] (parse, validate, grow canvas)
//	     ↓
//	[raster] (fill background, draw trees in order)
//	     ↓
//	[sink] (text grid / JSON / TOML)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(ctx, os.Stdin, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(res.Output)
package pkg
