package chibi

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/philipparndt/gochibi/pkg/geometry"
)

var expectedParts = []string{
	"arm_left", "arm_right",
	"eye_left", "eye_right",
	"foot_left", "foot_right",
	"hair",
	"hand_left", "hand_right",
	"head",
	"hip_insert_left", "hip_insert_right",
	"hip_socket_left", "hip_socket_right",
	"leg_left", "leg_right",
	"neck_insert", "neck_socket",
	"pupil_left", "pupil_right",
	"shoulder_insert_left", "shoulder_insert_right",
	"shoulder_socket_left", "shoulder_socket_right",
	"torso",
}

func generate(t *testing.T, cfg Configuration) PartCollection {
	t.Helper()
	parts, err := GenerateFullModel(cfg)
	if err != nil {
		t.Fatalf("GenerateFullModel failed: %v", err)
	}
	return parts
}

func TestGenerateFullModelParts(t *testing.T) {
	parts := generate(t, Default())

	names := parts.Names()
	want := append([]string(nil), expectedParts...)
	sort.Strings(want)

	if len(names) != len(want) {
		t.Fatalf("expected %d parts, got %d: %v", len(want), len(names), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("part %d: expected %s, got %s", i, want[i], names[i])
		}
	}

	for name, part := range parts {
		if part.Name != name {
			t.Errorf("part %s carries name %s", name, part.Name)
		}
		if part.Mesh.IsEmpty() {
			t.Errorf("part %s is empty", name)
		}
		if err := part.Mesh.Validate(); err != nil {
			t.Errorf("part %s: %v", name, err)
		}
	}
}

func TestHairNoneOmitsKey(t *testing.T) {
	cfg := Default()
	cfg.HairStyle = HairNone
	parts := generate(t, cfg)

	if _, ok := parts["hair"]; ok {
		t.Error("hair key should be absent when hair style is none")
	}
	if len(parts) != len(expectedParts)-1 {
		t.Errorf("expected %d parts, got %d", len(expectedParts)-1, len(parts))
	}
}

func TestHairStyleAnyCase(t *testing.T) {
	tests := []struct {
		style    HairStyle
		wantHair bool
	}{
		{"Short", true},
		{"LONG", true},
		{" long ", true},
		{"NONE", false},
		{"None", false},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.HairStyle = tt.style
		if err := cfg.Validate(); err != nil {
			t.Fatalf("%q: Validate failed: %v", tt.style, err)
		}
		parts, err := GenerateFullModel(cfg)
		if err != nil {
			t.Fatalf("%q: GenerateFullModel failed: %v", tt.style, err)
		}
		if _, ok := parts["hair"]; ok != tt.wantHair {
			t.Errorf("%q: hair present = %v, want %v", tt.style, ok, tt.wantHair)
		}
	}
}

func TestLongHair(t *testing.T) {
	cfg := Default()
	cfg.HairStyle = HairLong
	parts := generate(t, cfg)

	size := parts.Mesh("hair").BoundingBox().Size()
	if math.Abs(size.Z-0.3) > eps {
		t.Errorf("long hair height should be 0.3, got %v", size.Z)
	}
}

func TestScaleInvariant(t *testing.T) {
	base := generate(t, Default())

	for _, s := range []float64{0.5, 1.5, 2.0} {
		cfg := Default()
		cfg.Scale = s
		scaled := generate(t, cfg)

		for name, part := range base {
			want := part.Mesh.BoundingBox().Size().Mul(s)
			got := scaled.Mesh(name).BoundingBox().Size()
			if !got.ApproxEqual(want, 1e-9) {
				t.Errorf("scale %v, part %s: expected extent %v, got %v", s, name, want, got)
			}
		}
	}
}

func TestLeftRightSymmetry(t *testing.T) {
	parts := generate(t, Default())

	pairs := [][2]string{
		{"arm_left", "arm_right"},
		{"leg_left", "leg_right"},
		{"hand_left", "hand_right"},
		{"foot_left", "foot_right"},
		{"eye_left", "eye_right"},
		{"pupil_left", "pupil_right"},
		{"shoulder_socket_left", "shoulder_socket_right"},
		{"hip_insert_left", "hip_insert_right"},
	}

	for _, p := range pairs {
		left := parts.Mesh(p[0]).BoundingBox()
		right := parts.Mesh(p[1]).BoundingBox()

		lc, rc := left.Center(), right.Center()
		if math.Abs(lc.X+rc.X) > eps || math.Abs(lc.Y-rc.Y) > eps || math.Abs(lc.Z-rc.Z) > eps {
			t.Errorf("%s center %v is not the mirror of %s center %v", p[0], lc, p[1], rc)
		}
		if lc.X >= 0 {
			t.Errorf("%s should be on the negative X side, got %v", p[0], lc)
		}
		if !left.Size().ApproxEqual(right.Size(), eps) {
			t.Errorf("%s and %s sizes differ: %v vs %v", p[0], p[1], left.Size(), right.Size())
		}
	}
}

func TestDeterministic(t *testing.T) {
	cfg := Default()
	cfg.Scale = 1.3
	cfg.Tolerance = -0.02
	a := generate(t, cfg)
	b := generate(t, cfg)

	for name, pa := range a {
		pb, ok := b[name]
		if !ok {
			t.Fatalf("second run is missing %s", name)
		}
		if pa.Mesh.VertexCount() != pb.Mesh.VertexCount() || pa.Mesh.FaceCount() != pb.Mesh.FaceCount() {
			t.Errorf("%s topology differs between runs", name)
		}
		if pa.Mesh.BoundingBox() != pb.Mesh.BoundingBox() {
			t.Errorf("%s bounding box differs between runs", name)
		}
	}
}

func TestCallsShareNoState(t *testing.T) {
	a := generate(t, Default())
	b := generate(t, Default())

	before := b.Mesh("head").BoundingBox()
	a.Mesh("head").Translate(geometry.NewVector3(10, 0, 0))
	if b.Mesh("head").BoundingBox() != before {
		t.Error("mutating one collection changed another")
	}
}

func TestInertFieldsDoNotChangeGeometry(t *testing.T) {
	base := generate(t, Default())

	cfg := Default()
	cfg.CharacterType = "bear"
	cfg.Gender = "neutral"
	cfg.Clothing = ClothingHat
	other := generate(t, cfg)

	if len(base) != len(other) {
		t.Fatalf("part count changed: %d vs %d", len(base), len(other))
	}
	for name, part := range base {
		if part.Mesh.BoundingBox() != other.Mesh(name).BoundingBox() {
			t.Errorf("%s changed with inert fields", name)
		}
	}
}

func TestConnectorPlacement(t *testing.T) {
	cfg := Default()
	cfg.Scale = 2
	parts := generate(t, cfg)

	for _, j := range Joints(cfg.Scale) {
		socket := parts.Mesh(j.SocketName())
		insert := parts.Mesh(j.InsertName())
		if socket == nil || insert == nil {
			t.Fatalf("missing connector parts for %s", j.Label())
		}
		if !socket.BoundingBox().Center().ApproxEqual(j.Location, eps) {
			t.Errorf("%s socket not centered on %v", j.Label(), j.Location)
		}
		if h := insert.BoundingBox().Size().Z; math.Abs(h-0.24) > eps {
			t.Errorf("%s insert depth %v, want 0.24", j.Label(), h)
		}
		if h := socket.BoundingBox().Size().Z; math.Abs(h-0.2) > eps {
			t.Errorf("%s socket depth %v, want 0.2", j.Label(), h)
		}
	}

	neck := parts.Mesh("neck_socket").BoundingBox().Center()
	if !neck.ApproxEqual(geometry.NewVector3(0, 0, 3.6), eps) {
		t.Errorf("neck should sit at z=1.8*scale, got %v", neck)
	}
}

func TestGenerateFullModelRejectsInvalidScale(t *testing.T) {
	for _, s := range []float64{0, -1} {
		cfg := Default()
		cfg.Scale = s
		parts, err := GenerateFullModel(cfg)
		if !errors.Is(err, ErrInvalidScale) {
			t.Errorf("scale %v: expected ErrInvalidScale, got %v", s, err)
		}
		if parts != nil {
			t.Errorf("scale %v: expected no parts", s)
		}
	}
}

func TestPartCollectionHelpers(t *testing.T) {
	parts := generate(t, Default())

	if parts.Mesh("tail") != nil {
		t.Error("unknown part should return nil")
	}

	bbox := parts.BoundingBox()
	for name, part := range parts {
		pb := part.Mesh.BoundingBox()
		if pb.Min.X < bbox.Min.X || pb.Max.Z > bbox.Max.Z {
			t.Errorf("%s lies outside the model bounding box", name)
		}
	}
}
