package release

import "testing"

func TestParse_WEBDLScenario(t *testing.T) {
	p := Parse("Performer.Name.2023.1080p.WEB-DL.x264-GROUP", 0, 0)

	if p.Quality != Quality1080pWEBDL {
		t.Errorf("Quality = %q, want %q", p.Quality, Quality1080pWEBDL)
	}
	if p.Resolution != Resolution1080p {
		t.Errorf("Resolution = %v, want 1080p", p.Resolution)
	}
	if p.Codec != CodecH264 {
		t.Errorf("Codec = %v, want H.264", p.Codec)
	}
	if p.Source != SourceWEBDL {
		t.Errorf("Source = %v, want WEB-DL", p.Source)
	}
	if p.HDR {
		t.Error("HDR = true, want false")
	}
	if p.Proper {
		t.Error("Proper = true, want false")
	}
}

func TestParse_Quality(t *testing.T) {
	tests := []struct {
		title string
		want  Quality
	}{
		{"Scene.2160p.BluRay.x265", Quality2160pBluray},
		{"Scene.2160p.WEB-DL.x265", Quality2160pWEBDL},
		{"Scene.1080p.Blu-Ray.x264", Quality1080pBluray},
		{"Scene.1080p.WEBRip.x264", Quality1080pWEBDL},
		// Ambiguous source defaults to the webdl variant.
		{"Scene.1080p.x264-GRP", Quality1080pWEBDL},
		{"Scene.720p.HDTV.x264", Quality720pWEBDL},
		{"Scene.480p.DVDRip", Quality480pWEBDL},
		{"Scene.DVDRip.XviD", QualityDVD},
		{"Scene.Name.XviD", QualityAny},
		// Higher resolution wins when multiple tokens appear.
		{"Scene.2160p.1080p.BluRay", Quality2160pBluray},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Parse(tt.title, 0, 0).Quality; got != tt.want {
				t.Errorf("Parse(%q).Quality = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestParse_CodecPriority(t *testing.T) {
	tests := []struct {
		title string
		want  Codec
	}{
		{"Scene.1080p.x265-GRP", CodecH265},
		{"Scene.1080p.HEVC-GRP", CodecH265},
		{"Scene.1080p.h265-GRP", CodecH265},
		{"Scene.1080p.x264-GRP", CodecH264},
		{"Scene.1080p.AVC-GRP", CodecH264},
		// H.265 tokens beat H.264 tokens when both are present.
		{"Scene.x264.x265-GRP", CodecH265},
		{"Scene.1080p-GRP", CodecUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Parse(tt.title, 0, 0).Codec; got != tt.want {
				t.Errorf("Parse(%q).Codec = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestParse_SourcePriority(t *testing.T) {
	tests := []struct {
		title string
		want  Source
	}{
		{"Scene.BluRay.WEB-DL", SourceBluRay},
		{"Scene.WEB-DL.HDTV", SourceWEBDL},
		{"Scene.WEBRip", SourceWEBRip},
		{"Scene.HDTV", SourceHDTV},
		{"Scene.DVDRip", SourceDVD},
		{"Scene.Name", SourceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Parse(tt.title, 0, 0).Source; got != tt.want {
				t.Errorf("Parse(%q).Source = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestParse_HDR(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Scene.2160p.HDR.x265", true},
		{"Scene.2160p.HDR10.x265", true},
		{"Scene.2160p.Dolby Vision.x265", true},
		{"Scene.2160p.DV.x265", true},
		// "DVDRip" must not register as Dolby Vision.
		{"Scene.DVDRip.x264", false},
		{"Scene.1080p.x264", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Parse(tt.title, 0, 0).HDR; got != tt.want {
				t.Errorf("Parse(%q).HDR = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestParse_CleanTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Performer.Name.2023.1080p.WEB-DL.x264-GROUP", "Performer Name 2023 -GROUP"},
		{"Scene Name [1080p] (x265)", "Scene Name"},
		{"Scene_Name_720p_HDTV", "Scene Name"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Parse(tt.title, 0, 0).Title; got != tt.want {
				t.Errorf("Parse(%q).Title = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name  string
		title string
		size  int64
		seeds int
		want  int
	}{
		// 300 resolution + 40 source + 5 codec
		{"1080p webdl x264", "Scene.1080p.WEB-DL.x264", 0, 0, 345},
		// 400 + 50 + 10 + 15 HDR
		{"2160p bluray hevc hdr", "Scene.2160p.BluRay.HEVC.HDR", 0, 0, 475},
		// 200 + 20 + 5 proper
		{"720p hdtv proper", "Scene.720p.HDTV.PROPER", 0, 0, 225},
		// seeders capped at 50
		{"seeder cap", "Scene.1080p.WEB-DL.x264", 0, 10000, 395},
		{"seeder partial", "Scene.1080p.WEB-DL.x264", 0, 120, 357},
		{"repack", "Scene.1080p.WEB-DL.x264.REPACK", 0, 0, 348},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.title, tt.size, tt.seeds)
			if got := p.QualityScore(); got != tt.want {
				t.Errorf("QualityScore() = %d, want %d", got, tt.want)
			}
		})
	}
}
