package scene

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/shapedrop/common"
	"github.com/milk9111/shapedrop/engine"
)

// InputSource is the pointer state OrbitControls reads each frame.
type InputSource interface {
	CursorPosition() (int, int)
	Dragging() bool
	Wheel() float64
}

// EbitenInput reads the pointer from ebiten.
type EbitenInput struct{}

func (EbitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenInput) Dragging() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (EbitenInput) Wheel() float64 {
	_, y := ebiten.Wheel()
	return y
}

// OrbitControls rotates the camera around its target on drag and zooms on the
// wheel, with damped motion.
type OrbitControls struct {
	RotateSpeed float64 // radians per pixel
	ZoomSpeed   float64
	Damping     float64 // fraction of velocity lost per update
	MinDistance float64
	MaxDistance float64
	MinPitch    float64
	MaxPitch    float64

	// Blocked reports screen points owned by other widgets; drags starting
	// there are ignored.
	Blocked func(x, y int) bool

	camera *Camera
	input  InputSource

	yaw, pitch, distance float64
	yawVel, pitchVel     float64

	dragging     bool
	lastX, lastY int
}

func NewOrbitControls(camera *Camera, input InputSource) *OrbitControls {
	o := &OrbitControls{
		RotateSpeed: 0.005,
		ZoomSpeed:   0.1,
		Damping:     0.15,
		MinDistance: 2,
		MaxDistance: 60,
		MinPitch:    -1.45,
		MaxPitch:    1.45,
		camera:      camera,
		input:       input,
	}
	offset := camera.Eye.Sub(camera.Target)
	o.distance = offset.Len()
	if o.distance > 0 {
		o.pitch = math.Asin(common.Clamp(offset.Y()/o.distance, -1, 1))
		o.yaw = math.Atan2(offset.X(), offset.Z())
	}
	return o
}

// Angles returns the current yaw, pitch and distance.
func (o *OrbitControls) Angles() (yaw, pitch, distance float64) {
	return o.yaw, o.pitch, o.distance
}

func (o *OrbitControls) Update() {
	if o == nil || o.camera == nil || o.input == nil {
		return
	}

	x, y := o.input.CursorPosition()
	if o.input.Dragging() {
		if !o.dragging {
			if o.Blocked == nil || !o.Blocked(x, y) {
				o.dragging = true
			}
		} else {
			o.yawVel -= float64(x-o.lastX) * o.RotateSpeed
			o.pitchVel += float64(y-o.lastY) * o.RotateSpeed
		}
	} else {
		o.dragging = false
	}
	o.lastX, o.lastY = x, y

	o.yaw += o.yawVel
	o.pitch = common.Clamp(o.pitch+o.pitchVel, o.MinPitch, o.MaxPitch)
	o.yawVel = common.Lerp(o.yawVel, 0, o.Damping)
	o.pitchVel = common.Lerp(o.pitchVel, 0, o.Damping)

	if wheel := o.input.Wheel(); wheel != 0 {
		o.distance *= math.Pow(1-o.ZoomSpeed, wheel)
	}
	o.distance = common.Clamp(o.distance, o.MinDistance, o.MaxDistance)

	o.apply()
}

func (o *OrbitControls) apply() {
	cp := math.Cos(o.pitch)
	offset := engine.Vec3{
		o.distance * cp * math.Sin(o.yaw),
		o.distance * math.Sin(o.pitch),
		o.distance * cp * math.Cos(o.yaw),
	}
	o.camera.Eye = o.camera.Target.Add(offset)
}
