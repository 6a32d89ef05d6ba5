// Package shader holds the WGSL source of the triangle pipeline and a
// structural check of it.
//
// The source is embedded at build time; there is no runtime asset loading.
// Inspect parses the source with naga and reports its entry points, so a
// broken or mismatched shader is caught before the GPU compiles it.
package shader

import (
	_ "embed"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// Entry point names the pipeline expects.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// Triangle is the WGSL source for the procedural triangle.
//
//go:embed triangle.wgsl
var Triangle string

var (
	// ErrMissingEntryPoint means a required stage entry point is absent.
	ErrMissingEntryPoint = errors.New("shader: missing entry point")

	// ErrVertexInputs means the vertex stage reads location-bound inputs,
	// which would require vertex buffers.
	ErrVertexInputs = errors.New("shader: vertex stage reads vertex buffer inputs")
)

// EntryPoint describes one shader entry point.
type EntryPoint struct {
	Name  string
	Stage ir.ShaderStage

	// Locations lists the @location inputs of the entry point, including
	// those nested in struct arguments.
	Locations []uint32

	// VertexIndex is true when the entry point reads @builtin(vertex_index).
	VertexIndex bool
}

// Info is the result of Inspect.
type Info struct {
	EntryPoints []EntryPoint
}

// Lookup returns the entry point with the given name and stage.
func (i *Info) Lookup(name string, stage ir.ShaderStage) (EntryPoint, bool) {
	for _, ep := range i.EntryPoints {
		if ep.Name == name && ep.Stage == stage {
			return ep, true
		}
	}
	return EntryPoint{}, false
}

// Inspect parses and lowers WGSL source and collects its entry points.
func Inspect(source string) (*Info, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, errors.Wrap(err, "shader: parse")
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, errors.Wrap(err, "shader: lower")
	}

	info := &Info{EntryPoints: make([]EntryPoint, 0, len(module.EntryPoints))}
	for i := range module.EntryPoints {
		ep := &module.EntryPoints[i]
		out := EntryPoint{Name: ep.Name, Stage: ep.Stage}
		for _, arg := range ep.Function.Arguments {
			collectInputs(module, arg.Type, arg.Binding, &out)
		}
		info.EntryPoints = append(info.EntryPoints, out)
	}
	return info, nil
}

func collectInputs(module *ir.Module, ty ir.TypeHandle, binding *ir.Binding, out *EntryPoint) {
	if binding != nil {
		switch b := (*binding).(type) {
		case ir.LocationBinding:
			out.Locations = append(out.Locations, b.Location)
		case ir.BuiltinBinding:
			if b.Builtin == ir.BuiltinVertexIndex {
				out.VertexIndex = true
			}
		}
		return
	}
	if int(ty) >= len(module.Types) {
		return
	}
	st, ok := module.Types[ty].Inner.(ir.StructType)
	if !ok {
		return
	}
	for _, m := range st.Members {
		collectInputs(module, m.Type, m.Binding, out)
	}
}

// CheckProcedural verifies that source has the vertex and fragment entry
// points the pipeline uses and that the vertex stage takes no vertex buffer
// inputs.
func CheckProcedural(source, vertex, fragment string) error {
	info, err := Inspect(source)
	if err != nil {
		return err
	}

	vs, ok := info.Lookup(vertex, ir.StageVertex)
	if !ok {
		return errors.Wrapf(ErrMissingEntryPoint, "vertex %q", vertex)
	}
	if _, ok := info.Lookup(fragment, ir.StageFragment); !ok {
		return errors.Wrapf(ErrMissingEntryPoint, "fragment %q", fragment)
	}
	if len(vs.Locations) > 0 {
		return errors.Wrapf(ErrVertexInputs, "%s reads locations %v", vertex, vs.Locations)
	}
	return nil
}
