package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/Sebman56/orbit3d/common"
	"github.com/Sebman56/orbit3d/engine/camera"
	"github.com/Sebman56/orbit3d/engine/light"
	"github.com/Sebman56/orbit3d/engine/model"
	"github.com/Sebman56/orbit3d/engine/renderer/bind_group_provider"
	"github.com/Sebman56/orbit3d/engine/renderer/pipeline"
	"github.com/Sebman56/orbit3d/engine/scene"
	"github.com/Sebman56/orbit3d/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend

	// frameProvider holds the camera and light uniforms shared by every draw.
	frameProvider bind_group_provider.BindGroupProvider
	// meshProviders holds uploaded vertex and index buffers, one per distinct model.
	meshProviders map[model.Model]bind_group_provider.BindGroupProvider
	// objectProviders holds the per-object uniform bind groups keyed by game object ID.
	objectProviders map[uint64]bind_group_provider.BindGroupProvider

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	clearColor           common.Color
}

// Renderer defines the interface for the rendering system.
//
// The Renderer owns the GPU device and surface, a cache of pipelines, and the GPU resources of
// every mesh and object it has drawn. Draw is the per-frame entry point; the lower-level calls
// are exposed for custom passes.
type Renderer interface {
	// Pipeline retrieves the cached Pipeline associated with the given key, or nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to retrieve
	//
	// Returns:
	//   - pipeline.Pipeline: the Pipeline associated with the key, or nil if not found
	Pipeline(key string) pipeline.Pipeline

	// RegisterPipelines creates the GPU objects of one or more pipelines and caches them by key.
	// Pipelines whose keys are already registered are skipped.
	//
	// Parameters:
	//   - pipelines: the Pipelines to register
	//
	// Returns:
	//   - error: an error if pipeline creation fails
	RegisterPipelines(pipelines ...pipeline.Pipeline) error

	// Resize reconfigures the surface and its attachments for a new size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode. A call to Resize is required after changing
	// this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// InitMeshBuffers creates GPU vertex and index buffers from raw byte data and stores them
	// on the given BindGroupProvider for later use in draw calls.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created buffers on
	//   - vertexData: the raw vertex data bytes to upload to the GPU
	//   - indexData: the raw index data bytes to upload to the GPU
	//   - indexCount: the number of indices, used for draw calls
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// InitBindGroup creates uniform buffers and a bind group from a layout descriptor and stores
	// them on the given BindGroupProvider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created bind group on
	//   - descriptor: the layout descriptor defining the bind group entries
	//
	// Returns:
	//   - error: an error if bind group creation fails
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error

	// WriteBuffers writes all staged buffer writes to the GPU queue.
	//
	// Parameters:
	//   - writes: a slice of BufferWrite structs describing the data to write
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	// Must be paired with EndFrame after all DrawCall invocations within a single frame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// DrawCall encodes a single indexed draw within the current render pass.
	//
	// Parameters:
	//   - pipelineKey: the unique identifier for the cached render Pipeline to use
	//   - meshProvider: the BindGroupProvider holding vertex and index buffers
	//   - instanceCount: the number of instances to draw
	//   - bindGroups: BindGroupProviders set on the render pass in group order
	//
	// Returns:
	//   - error: an error if the pipeline is not found
	DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	// Does not present the surface; call Present() after EndFrame to display the frame.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	Present()

	// Draw renders one complete frame: uploads the camera, light and object uniforms, uploads any
	// model seen for the first time, then draws every item with the mesh pipeline and presents.
	// GPU resources of objects missing from items are released.
	//
	// Parameters:
	//   - cam: the camera uniform
	//   - l: the light uniform
	//   - items: the meshes to draw, typically scene.DrawList()
	//
	// Returns:
	//   - error: an error if resources could not be created or the frame could not be acquired
	Draw(cam camera.GPUCameraUniform, l light.GPULight, items []scene.DrawItem) error

	// Release frees every GPU resource held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer drawing into the given window and registers the mesh pipeline.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:              &sync.Mutex{},
		pipelineCache:   make(map[string]pipeline.Pipeline),
		backendType:     backendType,
		meshProviders:   make(map[model.Model]bind_group_provider.BindGroupProvider),
		objectProviders: make(map[uint64]bind_group_provider.BindGroupProvider),
		clearColor:      common.RGB(0.1, 0.1, 0.1),
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, msaa, r.clearColor)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(window.Width(), window.Height())

	if err := r.RegisterPipelines(newMeshPipeline()); err != nil {
		panic(fmt.Sprintf("renderer: failed to register mesh pipeline: %v", err))
	}

	r.frameProvider = bind_group_provider.NewBindGroupProvider("Frame")
	if err := r.InitBindGroup(r.frameProvider, frameBindGroupLayout()); err != nil {
		panic(fmt.Sprintf("renderer: failed to create frame bind group: %v", err))
	}

	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pipelines {
		key := p.PipelineKey()
		if _, exists := r.pipelineCache[key]; exists {
			continue
		}
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return fmt.Errorf("pipeline %q: %w", key, err)
		}
		r.pipelineCache[key] = p
	}
	return nil
}

func (r *renderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return r.backend.InitMeshBuffers(provider, vertexData, indexData, indexCount)
}

func (r *renderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	return r.backend.InitBindGroup(provider, descriptor)
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.backend.WriteBuffers(writes)
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	r.mu.Lock()
	p, exists := r.pipelineCache[pipelineKey]
	r.mu.Unlock()

	if !exists {
		return fmt.Errorf("render pipeline %q not found in cache", pipelineKey)
	}

	r.backend.DrawCall(p, meshProvider, instanceCount, bindGroups)
	return nil
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Draw(cam camera.GPUCameraUniform, l light.GPULight, items []scene.DrawItem) error {
	writes := make([]bind_group_provider.BufferWrite, 0, len(items)+2)
	writes = append(writes,
		bind_group_provider.BufferWrite{Provider: r.frameProvider, Binding: 0, Data: cam.Marshal()},
		bind_group_provider.BufferWrite{Provider: r.frameProvider, Binding: 1, Data: l.Marshal()},
	)

	meshes := make([]bind_group_provider.BindGroupProvider, len(items))
	objects := make([]bind_group_provider.BindGroupProvider, len(items))
	seen := make(map[uint64]struct{}, len(items))
	for i := range items {
		mesh, err := r.meshProvider(items[i].Model)
		if err != nil {
			return err
		}
		obj, err := r.objectProvider(items[i].ID)
		if err != nil {
			return err
		}
		meshes[i], objects[i] = mesh, obj
		seen[items[i].ID] = struct{}{}
		writes = append(writes, bind_group_provider.BufferWrite{Provider: obj, Binding: 0, Data: items[i].Uniform.Marshal()})
	}
	r.releaseStale(seen)

	r.WriteBuffers(writes)

	if err := r.BeginFrame(); err != nil {
		return err
	}
	for i := range items {
		if err := r.DrawCall(MeshPipelineKey, meshes[i], 1, []bind_group_provider.BindGroupProvider{r.frameProvider, objects[i]}); err != nil {
			r.EndFrame()
			r.Present()
			return err
		}
	}
	r.EndFrame()
	r.Present()
	return nil
}

// meshProvider returns the uploaded buffers of m, uploading on first use.
func (r *renderer) meshProvider(m model.Model) (bind_group_provider.BindGroupProvider, error) {
	if p, ok := r.meshProviders[m]; ok {
		return p, nil
	}
	p := bind_group_provider.NewBindGroupProvider(m.Name())
	if err := r.InitMeshBuffers(p, m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
		p.Release()
		return nil, fmt.Errorf("upload mesh %q: %w", m.Name(), err)
	}
	r.meshProviders[m] = p
	log.Printf("renderer: uploaded mesh %q (%d vertices, %d indices)", m.Name(), len(m.Vertices()), m.IndexCount())
	return p, nil
}

// objectProvider returns the uniform bind group of a game object, creating it on first use.
func (r *renderer) objectProvider(id uint64) (bind_group_provider.BindGroupProvider, error) {
	if p, ok := r.objectProviders[id]; ok {
		return p, nil
	}
	p := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("Object %d", id))
	if err := r.InitBindGroup(p, objectBindGroupLayout()); err != nil {
		p.Release()
		return nil, fmt.Errorf("object %d bind group: %w", id, err)
	}
	r.objectProviders[id] = p
	return p, nil
}

// releaseStale frees the bind groups of objects that were not drawn this frame.
func (r *renderer) releaseStale(seen map[uint64]struct{}) {
	for id, p := range r.objectProviders {
		if _, ok := seen[id]; !ok {
			p.Release()
			delete(r.objectProviders, id)
		}
	}
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.objectProviders {
		p.Release()
		delete(r.objectProviders, id)
	}
	for m, p := range r.meshProviders {
		p.Release()
		delete(r.meshProviders, m)
	}
	if r.frameProvider != nil {
		r.frameProvider.Release()
	}
	for key, p := range r.pipelineCache {
		p.Release()
		delete(r.pipelineCache, key)
	}
	r.backend.Release()
}
