package sdlwindow

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/glyphic/window"
)

func TestTranslate(t *testing.T) {
	w := &Window{id: 3}
	tests := []struct {
		name string
		ev   sdl.Event
		want window.Event
		ok   bool
	}{
		{"quit", &sdl.QuitEvent{}, window.CloseEvent{Window: 3}, true},
		{
			name: "close",
			ev:   &sdl.WindowEvent{WindowID: 3, Event: sdl.WINDOWEVENT_CLOSE},
			want: window.CloseEvent{Window: 3},
			ok:   true,
		},
		{
			name: "minimized",
			ev:   &sdl.WindowEvent{WindowID: 3, Event: sdl.WINDOWEVENT_MINIMIZED},
			want: window.ResizeEvent{Window: 3},
			ok:   true,
		},
		{
			name: "exposed",
			ev:   &sdl.WindowEvent{WindowID: 3, Event: sdl.WINDOWEVENT_EXPOSED},
			want: window.RedrawEvent{Window: 3},
			ok:   true,
		},
		{
			name: "other window keeps its id",
			ev:   &sdl.WindowEvent{WindowID: 9, Event: sdl.WINDOWEVENT_CLOSE},
			want: window.CloseEvent{Window: 9},
			ok:   true,
		},
		{
			name: "focus ignored",
			ev:   &sdl.WindowEvent{WindowID: 3, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
		},
		{"keyboard ignored", &sdl.KeyboardEvent{}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := w.translate(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestRedraw(t *testing.T) {
	w := &Window{}
	assert.False(t, w.redraw)
	w.RequestRedraw()
	assert.True(t, w.redraw)
}

func TestUnsupportedSubsystem(t *testing.T) {
	err := unsupportedSubsystem(sdl.SYSWM_WAYLAND)
	assert.True(t, errors.Is(err, ErrUnsupportedSubsystem))
	assert.Contains(t, errors.FlattenHints(err), "SDL_VIDEODRIVER=x11")

	err = unsupportedSubsystem(sdl.SYSWM_COCOA)
	assert.True(t, errors.Is(err, ErrUnsupportedSubsystem))
	assert.NotContains(t, errors.FlattenHints(err), "SDL_VIDEODRIVER")
	assert.Contains(t, errors.FlattenHints(err), "X11 and Windows")
}

func TestPixelSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int32
		wantW, wantH  uint32
	}{
		{"drawable", 2560, 1440, 2560, 1440},
		{"minimized", 0, 0, 0, 0},
		{"zero height", 800, 0, 0, 0},
		{"negative", -1, 600, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := pixelSize(tt.width, tt.height)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestScaleFactor(t *testing.T) {
	assert.Equal(t, 2.0, scaleFactor(1280, 2560))
	assert.Equal(t, 1.0, scaleFactor(1280, 1280))
	assert.Equal(t, 1.0, scaleFactor(0, 2560))
	assert.Equal(t, 1.0, scaleFactor(1280, 0))
}
