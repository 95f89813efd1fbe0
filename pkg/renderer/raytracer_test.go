package renderer

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// mockWorld implements World for testing
type mockWorld struct {
	colorAtFn func(ray core.Ray) (core.Color, error)
}

func (m mockWorld) ColorAt(ray core.Ray) (core.Color, error) {
	return m.colorAtFn(ray)
}

// testLogger records messages
type testLogger struct {
	messages []string
}

func (tl *testLogger) Printf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, format)
}

func newTestCamera(t *testing.T, size int) *Camera {
	t.Helper()
	config := MergeCameraConfig(DefaultCameraConfig(), CameraConfig{
		Width:       size,
		Height:      size,
		FieldOfView: 90,
		From:        core.Point(0, 0, -5),
		To:          core.Point(0, 0, 0),
		Up:          core.Vector(0, 1, 0),
	})
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected camera error: %v", err)
	}
	return camera
}

func TestRaytracer_RenderDefaultWorld(t *testing.T) {
	logger := &testLogger{}
	rt := NewRaytracer(scene.NewDefaultWorld(), newTestCamera(t, 11), logger)

	canvas, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := core.NewColor(0.38066, 0.47583, 0.2855)
	got := canvas.PixelAt(5, 5)
	const tolerance = 1e-5
	if math.Abs(got.R-expected.R) > tolerance ||
		math.Abs(got.G-expected.G) > tolerance ||
		math.Abs(got.B-expected.B) > tolerance {
		t.Errorf("Expected center pixel %v, got %v", expected, got)
	}

	if !stats.Complete() || stats.TotalPixels != 121 {
		t.Errorf("Expected 121 rendered pixels, got %+v", stats)
	}
	if len(logger.messages) != 2 {
		t.Errorf("Expected start and completion messages, got %v", logger.messages)
	}
}

func TestRaytracer_RenderVisitsEveryPixel(t *testing.T) {
	calls := 0
	world := mockWorld{colorAtFn: func(ray core.Ray) (core.Color, error) {
		calls++
		return core.NewColor(0.25, 0.5, 0.75), nil
	}}
	camera, err := NewCameraFromTransform(4, 3, 60, core.Identity(4))
	if err != nil {
		t.Fatalf("Unexpected camera error: %v", err)
	}

	canvas, _, err := NewRaytracer(world, camera, nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if calls != 12 {
		t.Errorf("Expected 12 ColorAt calls, got %d", calls)
	}
	for p := range canvas.All() {
		if !p.Color.Equal(core.NewColor(0.25, 0.5, 0.75)) {
			t.Errorf("Pixel (%d,%d) not shaded: %v", p.X, p.Y, p.Color)
		}
	}
}

func TestRaytracer_RenderWithoutLight(t *testing.T) {
	world := scene.NewDefaultWorld()
	world.ClearLight()
	rt := NewRaytracer(world, newTestCamera(t, 11), nil)

	_, stats, err := rt.Render(context.Background())
	if !errors.Is(err, scene.ErrNoLight) {
		t.Fatalf("Expected ErrNoLight, got %v", err)
	}
	if stats.Complete() {
		t.Error("Expected an incomplete render")
	}
}

func TestRaytracer_RenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rt := NewRaytracer(scene.NewDefaultWorld(), newTestCamera(t, 11), nil)
	rt.SetBackground(core.NewColor(0, 0, 1))

	canvas, stats, err := rt.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if stats.RenderedPixels != 0 {
		t.Errorf("Expected no rendered pixels, got %d", stats.RenderedPixels)
	}
	if got := canvas.PixelAt(5, 5); !got.Equal(core.NewColor(0, 0, 1)) {
		t.Errorf("Expected untouched background, got %v", got)
	}
}
