package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually 0,1,0)
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Variation angle of rays through each pixel, in degrees (0 = pinhole)
	FocusDistance float64   // Distance to the plane of perfect focus (0 = |LookAt - Center|)
}

// Camera maps pixel coordinates to primary rays. All derived vectors are
// computed once in NewCamera and the camera is read-only afterwards.
type Camera struct {
	config CameraConfig

	width, height int
	center        core.Vec3
	pixel00       core.Vec3 // Center of pixel (0, 0), the top-left pixel
	pixelDeltaU   core.Vec3 // Offset to the pixel to the right
	pixelDeltaV   core.Vec3 // Offset to the pixel below
	u, v, w       core.Vec3 // Camera frame basis vectors
	defocusDiskU  core.Vec3 // Defocus disk horizontal radius
	defocusDiskV  core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera from configuration. A camera looking at its own
// position, or whose up vector is parallel to the view direction, has no
// orientation and panics.
func NewCamera(config CameraConfig) *Camera {
	if config.Width < 1 {
		config.Width = 1
	}
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1
	}
	height := max(1, int(float64(config.Width)/config.AspectRatio))

	view := config.Center.Subtract(config.LookAt)
	if view.NearZero() {
		panic("geometry: camera looks at its own position")
	}
	if view.Cross(config.Up).NearZero() {
		panic("geometry: camera up vector is parallel to the view direction")
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = view.Length()
	}

	// Viewport dimensions at the focus plane
	theta := config.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(height)

	// Orthonormal camera basis
	w := view.Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(config.DefocusAngle*math.Pi/360)

	return &Camera{
		config:       config,
		width:        config.Width,
		height:       height,
		center:       config.Center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels, derived from width and aspect ratio
func (c *Camera) Height() int {
	return c.height
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates the ray for sample sampleIndex of pixel (i, j), where j=0
// is the top row. With aaGrid > 0 the sample position is the center of cell
// sampleIndex mod aaGrid² in a fixed aaGrid×aaGrid subdivision of the pixel;
// otherwise it is jittered uniformly over the pixel square. The origin is
// drawn from the defocus disk when the defocus angle is positive, and the
// ray time is drawn uniformly from [0, 1).
func (c *Camera) GetRay(i, j, sampleIndex, aaGrid int, sampler core.Sampler) core.Ray {
	offset := c.sampleOffset(sampleIndex, aaGrid, sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// sampleOffset returns the sample position relative to the pixel center, in [-0.5, 0.5)²
func (c *Camera) sampleOffset(sampleIndex, aaGrid int, sampler core.Sampler) core.Vec2 {
	if aaGrid > 0 {
		cell := sampleIndex % (aaGrid * aaGrid)
		cellX, cellY := cell%aaGrid, cell/aaGrid
		return core.NewVec2(
			(float64(cellX)+0.5)/float64(aaGrid)-0.5,
			(float64(cellY)+0.5)/float64(aaGrid)-0.5,
		)
	}
	jitter := sampler.Get2D()
	return core.NewVec2(jitter.X-0.5, jitter.Y-0.5)
}

// defocusDiskSample returns a random point on the camera's lens
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
