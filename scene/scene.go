// Package scene is a small scene graph stored in an ECS world, plus the camera,
// orbit controls and ebiten renderer that draw it.
package scene

import (
	"github.com/milk9111/shapedrop/ecs"
	"github.com/milk9111/shapedrop/ecs/component"
	"github.com/milk9111/shapedrop/engine"
)

// Scene implements engine.SceneGraph. Every node is an ECS entity carrying a
// Transform, Mesh and Shadow component; nodes in the scene also carry the
// SceneMember tag.
type Scene struct {
	world *ecs.World
}

func New() *Scene {
	return &Scene{world: ecs.NewWorld()}
}

func (s *Scene) World() *ecs.World {
	return s.world
}

func (s *Scene) CreateMesh(geometry *engine.Geometry, material *engine.Material) engine.Node {
	e := s.world.CreateEntity()
	_ = ecs.Add(s.world, e, component.MeshComponent, component.Mesh{Geometry: geometry, Material: material})
	_ = ecs.Add(s.world, e, component.TransformComponent, component.NewTransform())
	_ = ecs.Add(s.world, e, component.ShadowComponent, component.Shadow{Receive: true})
	return engine.Node(e)
}

func (s *Scene) SetTransform(n engine.Node, position engine.Vec3, orientation engine.Quat, scale engine.Vec3) {
	_ = ecs.Add(s.world, ecs.Entity(n), component.TransformComponent, component.Transform{
		Position:    position,
		Orientation: orientation,
		Scale:       scale,
	})
}

func (s *Scene) Transform(n engine.Node) (component.Transform, bool) {
	return ecs.Get(s.world, ecs.Entity(n), component.TransformComponent)
}

func (s *Scene) Mesh(n engine.Node) (component.Mesh, bool) {
	return ecs.Get(s.world, ecs.Entity(n), component.MeshComponent)
}

func (s *Scene) Shadow(n engine.Node) (component.Shadow, bool) {
	return ecs.Get(s.world, ecs.Entity(n), component.ShadowComponent)
}

func (s *Scene) SetCastShadow(n engine.Node, cast bool) {
	e := ecs.Entity(n)
	shadow, ok := ecs.Get(s.world, e, component.ShadowComponent)
	if !ok {
		return
	}
	shadow.Cast = cast
	_ = ecs.Add(s.world, e, component.ShadowComponent, shadow)
}

func (s *Scene) AddToScene(n engine.Node) {
	_ = ecs.Add(s.world, ecs.Entity(n), component.SceneMemberComponent, component.SceneMember{})
}

// RemoveFromScene releases the node. Unknown or already removed nodes are ignored.
func (s *Scene) RemoveFromScene(n engine.Node) {
	e := ecs.Entity(n)
	if !ecs.Has(s.world, e, component.SceneMemberComponent) {
		return
	}
	s.world.DestroyEntity(e)
}

func (s *Scene) Contains(n engine.Node) bool {
	return ecs.Has(s.world, ecs.Entity(n), component.SceneMemberComponent)
}

// Len returns the number of nodes in the scene.
func (s *Scene) Len() int {
	return len(s.world.Query(component.SceneMemberComponent.Kind()))
}

// Nodes returns the nodes in the scene in creation slot order.
func (s *Scene) Nodes() []engine.Node {
	ents := s.world.Query(component.SceneMemberComponent.Kind())
	out := make([]engine.Node, len(ents))
	for i, e := range ents {
		out[i] = engine.Node(e)
	}
	return out
}

// AddGround adds a square ground plane of the given side length centred on the
// origin at y=0. The ground receives shadows but casts none.
func (s *Scene) AddGround(size float64, material *engine.Material) engine.Node {
	n := s.CreateMesh(PlaneGeometry(), material)
	s.SetTransform(n, engine.Vec3{}, engine.Quat{W: 1}, engine.Vec3{size, 1, size})
	s.AddToScene(n)
	return n
}
