package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                           "",
		"impact.wav":                 "impact.wav",
		"assets/impact.wav":          "impact.wav",
		"/home/me/assets/impact.wav": "impact.wav",
		"/tmp/other/impact.wav":      "impact.wav",
	}
	for in, want := range cases {
		if got := cleanAssetPath(in); got != want {
			t.Errorf("cleanAssetPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestImpactSoundIsEmbedded(t *testing.T) {
	b, err := LoadAudio(ImpactSound)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(b) < 44 || string(b[:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		t.Fatalf("embedded impact sound is not a wav file")
	}
}

func TestNewAudioPlayerRequiresContext(t *testing.T) {
	if _, err := NewAudioPlayer(nil, ImpactSound, nil); err == nil {
		t.Fatalf("expected an error for a nil context")
	}
}
