package video

import "testing"

func TestViewContextDefaults(t *testing.T) {
	ctx := NewViewContext(800, 600)

	tf := ctx.Transform()
	if tf.Translation != (Vector{}) {
		t.Errorf("Translation = %v, want zero", tf.Translation)
	}
	if tf.Flip != NoFlip {
		t.Errorf("Flip = %v, want NoFlip", tf.Flip)
	}
	if tf.Alpha != 1.0 {
		t.Errorf("Alpha = %v, want 1.0", tf.Alpha)
	}
	if got := ctx.ClipRect(); got != NewRectf(0, 0, 800, 600) {
		t.Errorf("ClipRect = %v, want full canvas", got)
	}
	if got := ctx.Viewport(); got != NewRect(0, 0, 800, 600) {
		t.Errorf("Viewport = %v, want full canvas at origin", got)
	}
}

func TestViewContextPushPop(t *testing.T) {
	ctx := NewViewContext(800, 600)

	ctx.SetTranslation(Vec(10, 20))
	ctx.SetAlpha(0.5)
	ctx.PushTransform()

	ctx.Translate(Vec(5, 5))
	ctx.SetAlpha(0.25)
	ctx.SetFlip(HorizontalFlip)

	if got := ctx.Transform().Translation; got != Vec(15, 25) {
		t.Errorf("Translation after Translate = %v, want (15, 25)", got)
	}

	ctx.PopTransform()

	tf := ctx.Transform()
	if tf.Translation != Vec(10, 20) {
		t.Errorf("Translation after Pop = %v, want (10, 20)", tf.Translation)
	}
	if tf.Alpha != 0.5 {
		t.Errorf("Alpha after Pop = %v, want 0.5", tf.Alpha)
	}
	if tf.Flip != NoFlip {
		t.Errorf("Flip after Pop = %v, want NoFlip", tf.Flip)
	}
}

func TestViewContextPopEmptyPanics(t *testing.T) {
	ctx := NewViewContext(800, 600)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on PopTransform with empty stack")
		}
	}()
	ctx.PopTransform()
}

func TestFilterSkips(t *testing.T) {
	tests := []struct {
		filter Filter
		layer  int
		want   bool
	}{
		{FilterAll, LayerLightmap, false},
		{FilterAll, LayerHUD, false},
		{FilterBelowLightmap, LayerLightmap - 1, false},
		{FilterBelowLightmap, LayerLightmap, true},
		{FilterBelowLightmap, LayerHUD, true},
		{FilterAboveLightmap, LayerLightmap + 1, false},
		{FilterAboveLightmap, LayerLightmap, true},
		{FilterAboveLightmap, LayerTiles, true},
	}

	for _, tt := range tests {
		if got := tt.filter.skips(tt.layer); got != tt.want {
			t.Errorf("%v.skips(%d) = %v, want %v", tt.filter, tt.layer, got, tt.want)
		}
	}
}
