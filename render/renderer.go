// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/glyphic/device"
	"github.com/gogpu/glyphic/internal/logging"
	"github.com/gogpu/glyphic/shader"
)

// Renderer draws the triangle. The pipeline is built once and never
// rebuilt; Resize only tracks the surface configuration.
type Renderer struct {
	module   *wgpu.ShaderModule
	layout   *wgpu.PipelineLayout
	pipeline *wgpu.RenderPipeline

	config device.SurfaceConfig
	log    *slog.Logger
}

// Build checks the embedded shader and creates the shader module, an empty
// pipeline layout and the render pipeline for cfg.Format.
func Build(factory PipelineFactory, cfg device.SurfaceConfig, log *slog.Logger) (*Renderer, error) {
	if err := shader.CheckProcedural(shader.Triangle, shader.VertexEntry, shader.FragmentEntry); err != nil {
		return nil, errors.Wrap(err, "render: triangle shader")
	}

	r := &Renderer{config: cfg, log: logging.OrNop(log)}

	module, err := factory.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "triangle shader",
		WGSL:  shader.Triangle,
	})
	if err != nil {
		return nil, errors.Wrap(err, "render: create shader module")
	}
	r.module = module

	layout, err := factory.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{Label: "triangle layout"})
	if err != nil {
		r.Release()
		return nil, errors.Wrap(err, "render: create pipeline layout")
	}
	r.layout = layout

	pipeline, err := factory.CreateRenderPipeline(pipelineDescriptor(module, layout, cfg.Format))
	if err != nil {
		r.Release()
		return nil, errors.Wrapf(err, "render: create pipeline for %s", cfg.Format)
	}
	r.pipeline = pipeline

	r.log.Info("render: pipeline built", "format", cfg.Format)
	return r, nil
}

// Config returns the surface configuration the renderer last saw.
func (r *Renderer) Config() device.SurfaceConfig { return r.config }

// Resize records new surface dimensions. The pipeline does not depend on
// them and is left alone.
func (r *Renderer) Resize(width, height uint32) {
	r.config = r.config.Resized(width, height)
}

// Render records one pass that clears view and draws the triangle, then
// submits it. Any error abandons the frame's commands.
func (r *Renderer) Render(view *wgpu.TextureView, encoders EncoderSource, queue Submitter) error {
	enc, err := encoders.CommandEncoder("triangle frame")
	if err != nil {
		return errors.Wrap(err, "render: create command encoder")
	}

	pass, err := enc.BeginRenderPass(passDescriptor(view))
	if err != nil {
		enc.DiscardEncoding()
		return errors.Wrap(err, "render: begin pass")
	}
	pass.SetPipeline(r.pipeline)
	pass.Draw(VertexCount, InstanceCount, 0, 0)
	if err := pass.End(); err != nil {
		enc.DiscardEncoding()
		return errors.Wrap(err, "render: end pass")
	}

	cmd, err := enc.Finish()
	if err != nil {
		return errors.Wrap(err, "render: finish encoder")
	}
	if _, err := queue.Submit(cmd); err != nil {
		cmd.Release()
		return errors.Wrap(err, "render: submit")
	}
	return nil
}

// SetLogger replaces the renderer's logger.
func (r *Renderer) SetLogger(l *slog.Logger) { r.log = logging.OrNop(l) }

// Release destroys the pipeline, layout and shader module.
func (r *Renderer) Release() {
	if r.pipeline != nil {
		r.pipeline.Release()
		r.pipeline = nil
	}
	if r.layout != nil {
		r.layout.Release()
		r.layout = nil
	}
	if r.module != nil {
		r.module.Release()
		r.module = nil
	}
}
