// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/wgpu"

// Pass is the part of a render pass encoder a frame uses.
// *wgpu.RenderPassEncoder satisfies it.
type Pass interface {
	SetPipeline(pipeline *wgpu.RenderPipeline)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	End() error
}

// Encoder records one frame's commands.
type Encoder interface {
	BeginRenderPass(desc *wgpu.RenderPassDescriptor) (Pass, error)
	Finish() (*wgpu.CommandBuffer, error)
	DiscardEncoding()
}

// EncoderSource hands out a fresh Encoder per frame.
type EncoderSource interface {
	CommandEncoder(label string) (Encoder, error)
}

// Submitter queues finished command buffers. *wgpu.Queue satisfies it.
type Submitter interface {
	Submit(commandBuffers ...*wgpu.CommandBuffer) (uint64, error)
}

// CommandEncoderCreator creates native command encoders.
type CommandEncoderCreator interface {
	CommandEncoder(label string) (*wgpu.CommandEncoder, error)
}

// Encoders adapts a CommandEncoderCreator to an EncoderSource.
func Encoders(src CommandEncoderCreator) EncoderSource {
	return nativeEncoders{src: src}
}

type nativeEncoders struct {
	src CommandEncoderCreator
}

func (n nativeEncoders) CommandEncoder(label string) (Encoder, error) {
	enc, err := n.src.CommandEncoder(label)
	if err != nil {
		return nil, err
	}
	return nativeEncoder{enc}, nil
}

type nativeEncoder struct {
	*wgpu.CommandEncoder
}

func (e nativeEncoder) BeginRenderPass(desc *wgpu.RenderPassDescriptor) (Pass, error) {
	pass, err := e.CommandEncoder.BeginRenderPass(desc)
	if err != nil {
		return nil, err
	}
	return pass, nil
}
