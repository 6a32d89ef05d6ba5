// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/glyphic/shader"
)

// PipelineFactory creates the GPU objects a Renderer owns.
// *wgpu.Device satisfies it.
type PipelineFactory interface {
	CreateShaderModule(desc *wgpu.ShaderModuleDescriptor) (*wgpu.ShaderModule, error)
	CreatePipelineLayout(desc *wgpu.PipelineLayoutDescriptor) (*wgpu.PipelineLayout, error)
	CreateRenderPipeline(desc *wgpu.RenderPipelineDescriptor) (*wgpu.RenderPipeline, error)
}

// ClearColor is the background every frame starts from.
var ClearColor = gputypes.Color{R: 0, G: 0, B: 0, A: 1}

// Triangle draw parameters.
const (
	VertexCount   = 3
	InstanceCount = 1
)

// pipelineDescriptor describes the triangle pipeline for a surface format:
// alpha blending into a single color target, default primitive state, no
// depth/stencil, one sample and no vertex buffers.
func pipelineDescriptor(module *wgpu.ShaderModule, layout *wgpu.PipelineLayout, format gputypes.TextureFormat) *wgpu.RenderPipelineDescriptor {
	blend := gputypes.BlendStateAlpha()
	return &wgpu.RenderPipelineDescriptor{
		Label:  "triangle pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: shader.VertexEntry,
		},
		Primitive:   gputypes.DefaultPrimitiveState(),
		Multisample: gputypes.DefaultMultisampleState(),
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: shader.FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &blend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
	}
}

// passDescriptor clears view to ClearColor and stores the result.
func passDescriptor(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		Label: "triangle pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: ClearColor,
		}},
	}
}
