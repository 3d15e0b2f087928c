package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"coin-1.png", "coin-1.png"},
		{"assets/coin-1.png", "coin-1.png"},
		{"/home/dev/mozaorun/assets/love.png", "love.png"},
		{"/tmp/elsewhere/love.png", "love.png"},
	}
	for _, c := range cases {
		if got := cleanAssetPath(c.in); got != c.want {
			t.Fatalf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDecodeSceneImages(t *testing.T) {
	keys := []string{
		"background.png", "ground.png", "love.png",
		"block-1.png", "block-2.png", "block-3.png",
		"obstacle-1.png", "obstacle-2.png",
		"coin-1.png", "coin-2.png", "coin-3.png", "coin-4.png", "coin-5.png", "coin-6.png",
	}
	for _, k := range keys {
		t.Run(k, func(t *testing.T) {
			img, err := Decode(k)
			if err != nil {
				t.Fatalf("decode %s: %v", k, err)
			}
			if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
				t.Fatalf("%s has empty bounds %v", k, b)
			}
		})
	}
	if len(Names()) != len(keys) {
		t.Fatalf("expected %d embedded images, got %d", len(keys), len(Names()))
	}
}

func TestDecodeMissing(t *testing.T) {
	if _, err := Decode("nope.png"); err == nil {
		t.Fatal("expected error for missing asset")
	}
}
