package testbed

import (
	"time"

	"github.com/spaghettifunk/evil/engine"
	"github.com/spaghettifunk/evil/engine/math"
)

// degrees per second
const spinRate float32 = 45.0

type TestGame struct {
	*engine.Game
}

type gameState struct {
	cube     *math.Transform
	moon     *math.Transform
	vertices []math.Vertex3D
	// normalized device coordinates of the cube corners, last frame
	projected []math.Vec3
	visible   int

	light math.Vec3

	// isometric cursor, walks the tile grid one tile per frame
	tileX, tileY int
	cursor       math.Vec2
	heading      float32
}

func NewTestGame() *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			Name:  "Evil Testbed",
			State: &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

// unitCube returns the eight corners of a cube centred on the origin,
// coloured by position.
func unitCube() []math.Vertex3D {
	vertices := make([]math.Vertex3D, 0, 8)
	for _, x := range []float32{-0.5, 0.5} {
		for _, y := range []float32{-0.5, 0.5} {
			for _, z := range []float32{-0.5, 0.5} {
				vertices = append(vertices, math.Vertex3D{
					Position: math.NewVec3(x, y, z),
					Colour:   math.NewVec4(x+0.5, y+0.5, z+0.5, 1.0),
				})
			}
		}
	}
	return vertices
}

func (g *TestGame) Initialize(ctx *engine.Context) error {
	ctx.Log.Info("initializing testbed...")

	s := g.state()
	s.vertices = unitCube()
	s.projected = make([]math.Vec3, len(s.vertices))
	s.cube = math.NewTransform()
	// a smaller cube orbiting the first one
	s.moon = math.NewTransformFromPositionRotationScale(
		math.NewVec3(2.0, 0.0, 0.0),
		math.NewQuatIdentity(),
		math.NewVec3(0.25, 0.25, 0.25),
	)
	s.moon.SetParent(s.cube)
	s.light = math.NewVec3(0.0, -1.0, -1.0).Normalized()
	return nil
}

func (g *TestGame) Update(ctx *engine.Context, deltaTime time.Duration) error {
	s := g.state()
	dt := float32(deltaTime.Seconds())

	// spin the cube around y and tilt the moon on its own x axis
	s.cube.Rotate(math.NewQuatFromAxisAngle(math.NewVec3Up(), spinRate*dt))
	s.moon.Rotate(math.NewQuatFromAxisAngle(math.NewVec3Right(), 2*spinRate*dt))
	math.QuatRotateVec3InPlace(math.NewVec3Up(), spinRate*dt, &s.light)

	s.visible = 0
	world := s.cube.World()
	for i, v := range s.vertices {
		ndc, ok := ctx.Camera.Project(world.MulPoint(v.Position))
		if ok {
			s.visible++
		}
		s.projected[i] = ndc
	}
	moonCentre, _ := ctx.Camera.Project(s.moon.World().MulPoint(math.NewVec3Zero()))

	s.tileX++
	if s.tileX > 8 {
		s.tileX = 0
		s.tileY++
	}
	isoX, isoY := math.OrthoToIsoInt(s.tileX, s.tileY)
	ortX, ortY := math.IsoToOrtho(float32(isoX), float32(isoY))
	s.cursor = math.NewVec2(ortX, ortY)
	if dir := s.cursor.Normalized(); dir.LengthSquared() > 0 {
		s.heading = math.GetAngle(dir.X, dir.Y)
	}

	ctx.Log.Debug("frame",
		"frame", ctx.Frame,
		"dt", deltaTime,
		"visible", s.visible,
		"moon", moonCentre,
		"tile", [2]int{s.tileX, s.tileY},
		"iso", [2]int{isoX, isoY},
		"heading", s.heading,
	)
	return nil
}

func (g *TestGame) Shutdown(ctx *engine.Context) error {
	s := g.state()
	ctx.Log.Info("shutting down testbed", "visible", s.visible, "light", s.light)
	return nil
}
