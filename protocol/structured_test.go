package protocol

import "testing"

func TestSkinFromLegacyReconstructsCanonicalShape(t *testing.T) {
	legacy := LegacySkin{
		SkinID:       "geometry.humanoid.custom",
		SkinPixels:   make([]byte, 64*32*4),
		CapePixels:   make([]byte, 64*32*4),
		GeometryName: "geometry.humanoid.custom",
		GeometryJSON: `{"geometry":{}}`,
	}
	skin := SkinFromLegacy(legacy)

	if skin.SkinID != legacy.SkinID {
		t.Fatalf("SkinID not preserved: %q", skin.SkinID)
	}
	if len(skin.ResourcePatch) != 0 {
		t.Fatalf("expected empty resource patch, got %d bytes", len(skin.ResourcePatch))
	}
	if skin.SkinImage.Width != 64 || skin.SkinImage.Height != 32 {
		t.Fatalf("legacy pixel count should resolve to 64x32, got %dx%d", skin.SkinImage.Width, skin.SkinImage.Height)
	}
	if string(skin.Geometry) != legacy.GeometryJSON {
		t.Fatalf("geometry JSON not carried through: %q", skin.Geometry)
	}
}

func TestBlockPositionRoundTrip(t *testing.T) {
	w := NewWriter(CurrentProtocol)
	want := BlockPosition{X: 100, Y: -64, Z: -3000}
	w.PutBlockPosition(want)

	r := NewReader(w.Bytes(), CurrentProtocol)
	got, err := r.GetBlockPosition()
	if err != nil {
		t.Fatalf("GetBlockPosition: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
