// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws the glyphic triangle into an acquired surface view.
//
// A Renderer owns one immutable render pipeline built from the embedded
// triangle shader and the surface format. The pipeline has no vertex
// buffers: positions and colors come from the vertex index inside the
// shader, so a frame is a single Draw(3, 1, 0, 0).
//
// # Frame
//
// Each call to Renderer.Render records exactly one render pass:
//
//   - clear the view to opaque black
//   - bind the pipeline
//   - draw three vertices, one instance
//   - end the pass, finish the encoder and submit one command buffer
//
// # Device access
//
// Build takes a PipelineFactory and Render takes an EncoderSource and a
// Submitter. *wgpu.Device satisfies PipelineFactory and *wgpu.Queue
// satisfies Submitter; Encoders adapts anything that creates
// *wgpu.CommandEncoder, such as *device.Context.
//
//	r, err := render.Build(ctx.Device(), ctx.Config(), logger)
//	if err != nil {
//	    return err
//	}
//	defer r.Release()
//
//	frame, err := ctx.AcquireFrame()
//	...
//	err = r.Render(frame.View(), render.Encoders(ctx), ctx.Queue())
package render
