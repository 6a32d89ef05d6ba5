// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glyphic/device"
	"github.com/gogpu/glyphic/shader"
)

type fakeFactory struct {
	modules   []*wgpu.ShaderModuleDescriptor
	layouts   []*wgpu.PipelineLayoutDescriptor
	pipelines []*wgpu.RenderPipelineDescriptor

	moduleErr, layoutErr, pipelineErr error
}

func (f *fakeFactory) CreateShaderModule(desc *wgpu.ShaderModuleDescriptor) (*wgpu.ShaderModule, error) {
	f.modules = append(f.modules, desc)
	return nil, f.moduleErr
}

func (f *fakeFactory) CreatePipelineLayout(desc *wgpu.PipelineLayoutDescriptor) (*wgpu.PipelineLayout, error) {
	f.layouts = append(f.layouts, desc)
	return nil, f.layoutErr
}

func (f *fakeFactory) CreateRenderPipeline(desc *wgpu.RenderPipelineDescriptor) (*wgpu.RenderPipeline, error) {
	f.pipelines = append(f.pipelines, desc)
	return nil, f.pipelineErr
}

type fakePass struct {
	pipelineSet bool
	draws       [][4]uint32
	ended       bool
	endErr      error
}

func (p *fakePass) SetPipeline(*wgpu.RenderPipeline) { p.pipelineSet = true }

func (p *fakePass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.draws = append(p.draws, [4]uint32{vertexCount, instanceCount, firstVertex, firstInstance})
}

func (p *fakePass) End() error {
	p.ended = true
	return p.endErr
}

type fakeEncoder struct {
	passes    []*wgpu.RenderPassDescriptor
	pass      *fakePass
	beginErr  error
	finishErr error
	finished  bool
	discarded bool
}

func (e *fakeEncoder) BeginRenderPass(desc *wgpu.RenderPassDescriptor) (Pass, error) {
	e.passes = append(e.passes, desc)
	if e.beginErr != nil {
		return nil, e.beginErr
	}
	return e.pass, nil
}

func (e *fakeEncoder) Finish() (*wgpu.CommandBuffer, error) {
	e.finished = true
	if e.finishErr != nil {
		return nil, e.finishErr
	}
	return &wgpu.CommandBuffer{}, nil
}

func (e *fakeEncoder) DiscardEncoding() { e.discarded = true }

type fakeEncoders struct {
	enc    *fakeEncoder
	labels []string
	err    error
}

func (s *fakeEncoders) CommandEncoder(label string) (Encoder, error) {
	s.labels = append(s.labels, label)
	if s.err != nil {
		return nil, s.err
	}
	return s.enc, nil
}

type fakeQueue struct {
	submits [][]*wgpu.CommandBuffer
	err     error
}

func (q *fakeQueue) Submit(buffers ...*wgpu.CommandBuffer) (uint64, error) {
	q.submits = append(q.submits, buffers)
	return uint64(len(q.submits)), q.err
}

func surfaceConfig(width, height uint32) device.SurfaceConfig {
	return device.SurfaceConfig{
		Width:       width,
		Height:      height,
		Format:      gputypes.TextureFormatBGRA8Unorm,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: gputypes.PresentModeMailbox,
		AlphaMode:   gputypes.CompositeAlphaModeOpaque,
	}
}

func newFrameFakes() (*fakeEncoders, *fakeEncoder, *fakePass, *fakeQueue) {
	pass := &fakePass{}
	enc := &fakeEncoder{pass: pass}
	return &fakeEncoders{enc: enc}, enc, pass, &fakeQueue{}
}

func TestBuild(t *testing.T) {
	factory := &fakeFactory{}
	r, err := Build(factory, surfaceConfig(1280, 720), nil)
	require.NoError(t, err)
	defer r.Release()

	require.Len(t, factory.modules, 1)
	assert.Equal(t, shader.Triangle, factory.modules[0].WGSL)
	require.Len(t, factory.layouts, 1)
	require.Len(t, factory.pipelines, 1)
	assert.Equal(t, surfaceConfig(1280, 720), r.Config())
}

func TestPipelineDescriptor(t *testing.T) {
	desc := pipelineDescriptor(nil, nil, gputypes.TextureFormatRGBA8Unorm)

	assert.Equal(t, shader.VertexEntry, desc.Vertex.EntryPoint)
	assert.Empty(t, desc.Vertex.Buffers, "positions come from the vertex index")
	assert.Nil(t, desc.DepthStencil)
	assert.Equal(t, uint32(1), desc.Multisample.Count)
	assert.Equal(t, gputypes.DefaultPrimitiveState(), desc.Primitive)
	assert.Equal(t, gputypes.PrimitiveTopologyTriangleList, desc.Primitive.Topology)

	require.NotNil(t, desc.Fragment)
	assert.Equal(t, shader.FragmentEntry, desc.Fragment.EntryPoint)
	require.Len(t, desc.Fragment.Targets, 1)
	target := desc.Fragment.Targets[0]
	assert.Equal(t, gputypes.TextureFormatRGBA8Unorm, target.Format)
	assert.Equal(t, gputypes.ColorWriteMaskAll, target.WriteMask)
	require.NotNil(t, target.Blend)
	assert.Equal(t, gputypes.BlendStateAlpha(), *target.Blend)
}

func TestBuildErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		factory *fakeFactory
		calls   int
	}{
		{"shader module", &fakeFactory{moduleErr: boom}, 1},
		{"layout", &fakeFactory{layoutErr: boom}, 2},
		{"pipeline", &fakeFactory{pipelineErr: boom}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Build(tt.factory, surfaceConfig(8, 8), nil)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.True(t, errors.Is(err, boom))
			calls := len(tt.factory.modules) + len(tt.factory.layouts) + len(tt.factory.pipelines)
			assert.Equal(t, tt.calls, calls)
		})
	}
}

func TestRenderFirstFrame(t *testing.T) {
	r, err := Build(&fakeFactory{}, surfaceConfig(1280, 720), nil)
	require.NoError(t, err)
	encoders, enc, pass, queue := newFrameFakes()

	require.NoError(t, r.Render(nil, encoders, queue))

	require.Len(t, enc.passes, 1, "one render pass per frame")
	attachments := enc.passes[0].ColorAttachments
	require.Len(t, attachments, 1)
	assert.Equal(t, gputypes.LoadOpClear, attachments[0].LoadOp)
	assert.Equal(t, gputypes.StoreOpStore, attachments[0].StoreOp)
	assert.Equal(t, gputypes.Color{R: 0, G: 0, B: 0, A: 1}, attachments[0].ClearValue)

	assert.True(t, pass.pipelineSet)
	assert.Equal(t, [][4]uint32{{3, 1, 0, 0}}, pass.draws)
	assert.True(t, pass.ended)
	assert.True(t, enc.finished)
	assert.False(t, enc.discarded)

	require.Len(t, queue.submits, 1)
	assert.Len(t, queue.submits[0], 1, "one command buffer per frame")
}

func TestResizeDoesNotRebuild(t *testing.T) {
	factory := &fakeFactory{}
	r, err := Build(factory, surfaceConfig(1280, 720), nil)
	require.NoError(t, err)

	r.Resize(640, 480)
	r.Resize(640, 480)

	assert.Len(t, factory.pipelines, 1)
	assert.Equal(t, uint32(640), r.Config().Width)
	assert.Equal(t, uint32(480), r.Config().Height)
	assert.Equal(t, gputypes.TextureFormatBGRA8Unorm, r.Config().Format)
}

func TestRenderErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name      string
		setup     func(*fakeEncoders, *fakeEncoder, *fakePass, *fakeQueue)
		discarded bool
		submitted bool
	}{
		{
			name:  "encoder",
			setup: func(s *fakeEncoders, _ *fakeEncoder, _ *fakePass, _ *fakeQueue) { s.err = boom },
		},
		{
			name:      "begin pass",
			setup:     func(_ *fakeEncoders, e *fakeEncoder, _ *fakePass, _ *fakeQueue) { e.beginErr = boom },
			discarded: true,
		},
		{
			name:      "end pass",
			setup:     func(_ *fakeEncoders, _ *fakeEncoder, p *fakePass, _ *fakeQueue) { p.endErr = boom },
			discarded: true,
		},
		{
			name:  "finish",
			setup: func(_ *fakeEncoders, e *fakeEncoder, _ *fakePass, _ *fakeQueue) { e.finishErr = boom },
		},
		{
			name:      "submit",
			setup:     func(_ *fakeEncoders, _ *fakeEncoder, _ *fakePass, q *fakeQueue) { q.err = boom },
			submitted: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Build(&fakeFactory{}, surfaceConfig(64, 64), nil)
			require.NoError(t, err)
			encoders, enc, pass, queue := newFrameFakes()
			tt.setup(encoders, enc, pass, queue)

			err = r.Render(nil, encoders, queue)
			require.Error(t, err)
			assert.True(t, errors.Is(err, boom))
			assert.Equal(t, tt.discarded, enc.discarded)
			assert.Equal(t, tt.submitted, len(queue.submits) == 1)
		})
	}
}

func TestReleaseTwice(t *testing.T) {
	r, err := Build(&fakeFactory{}, surfaceConfig(8, 8), nil)
	require.NoError(t, err)
	r.Release()
	r.Release()
}
