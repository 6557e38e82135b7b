package release

import (
	"regexp"
	"strings"
)

var (
	bracketRegex = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)
	// Quality, source and codec tokens removed from the cleaned title.
	tokenRegex = regexp.MustCompile(`(?i)\b(2160p|1080p|720p|480p|4k|uhd|bluray|blu-ray|bdrip|brrip|web-?dl|web-?rip|hdtv|dvdrip|dvd|x26[45]|h\.?26[45]|hevc|avc|xvid|hdr10\+?|hdr|dolby vision|dv|proper|repack|remux|aac|ac3|dts|atmos)\b`)
	spaceRegex = regexp.MustCompile(`\s+`)
)

// Parse extracts structured attributes from a raw torrent title. Size
// is in bytes; pass zero when the indexer did not report size or
// seeders.
func Parse(title string, size int64, seeders int) ParsedTorrent {
	p := ParsedTorrent{
		OriginalTitle: title,
		Title:         cleanTitle(title),
		Quality:       parseQuality(title),
		Resolution:    parseResolution(title),
		Codec:         parseCodec(title),
		Source:        parseSource(title),
		HDR:           parseHDR(title),
		Proper:        containsAny(title, "proper"),
		Repack:        containsAny(title, "repack"),
		Size:          size,
		Seeders:       seeders,
	}
	return p
}

// cleanTitle strips bracketed groups and quality tokens, then collapses
// whitespace and separator punctuation.
func cleanTitle(title string) string {
	s := strings.ReplaceAll(title, ".", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = bracketRegex.ReplaceAllString(s, " ")
	s = tokenRegex.ReplaceAllString(s, " ")
	s = spaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// parseQuality walks a priority decision tree: higher resolutions are
// checked first, and within a resolution an ambiguous source defaults
// to the webdl variant. A webdl default is a deliberate choice, not a
// missing match. Titles with no resolution token map to QualityAny.
func parseQuality(title string) Quality {
	name := strings.ToLower(title)

	type band struct {
		token  string
		bluray Quality
		webdl  Quality
	}
	bands := []band{
		{"2160p", Quality2160pBluray, Quality2160pWEBDL},
		{"1080p", Quality1080pBluray, Quality1080pWEBDL},
		{"720p", Quality720pBluray, Quality720pWEBDL},
		{"480p", Quality480pBluray, Quality480pWEBDL},
	}

	for _, b := range bands {
		if !strings.Contains(name, b.token) {
			continue
		}
		if containsAny(name, "bluray", "blu-ray") {
			return b.bluray
		}
		return b.webdl
	}

	if strings.Contains(name, "dvd") {
		return QualityDVD
	}
	return QualityAny
}

func parseResolution(title string) Resolution {
	name := strings.ToLower(title)
	switch {
	case strings.Contains(name, "2160p"):
		return Resolution2160p
	case strings.Contains(name, "1080p"):
		return Resolution1080p
	case strings.Contains(name, "720p"):
		return Resolution720p
	case strings.Contains(name, "480p"):
		return Resolution480p
	default:
		return ResolutionUnknown
	}
}

func parseCodec(title string) Codec {
	switch {
	case containsAny(title, "h265", "x265", "hevc"):
		return CodecH265
	case containsAny(title, "h264", "x264", "avc"):
		return CodecH264
	default:
		return CodecUnknown
	}
}

func parseSource(title string) Source {
	switch {
	case containsAny(title, "bluray", "blu-ray"):
		return SourceBluRay
	case containsAny(title, "web-dl", "webdl"):
		return SourceWEBDL
	case containsAny(title, "webrip", "web-rip"):
		return SourceWEBRip
	case containsAny(title, "hdtv"):
		return SourceHDTV
	case containsAny(title, "dvd"):
		return SourceDVD
	default:
		return SourceUnknown
	}
}

// dvRegex matches bare "DV" as its own token so titles like "DVDRip"
// do not flag as Dolby Vision.
var dvRegex = regexp.MustCompile(`(?i)\bdv\b`)

func parseHDR(title string) bool {
	if containsAny(title, "hdr10", "hdr", "dolby vision") {
		return true
	}
	return dvRegex.MatchString(title)
}

func containsAny(s string, substrs ...string) bool {
	s = strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// QualityScore computes a profile-independent quality score for a
// parsed release. Higher is better. It is a generic tie-break signal;
// profile-driven ranking in the selector is the primary ordering.
func (p ParsedTorrent) QualityScore() int {
	score := 0

	switch p.Resolution {
	case Resolution2160p:
		score += 400
	case Resolution1080p:
		score += 300
	case Resolution720p:
		score += 200
	case Resolution480p:
		score += 100
	}

	switch p.Source {
	case SourceBluRay:
		score += 50
	case SourceWEBDL:
		score += 40
	case SourceWEBRip:
		score += 30
	case SourceHDTV:
		score += 20
	case SourceDVD:
		score += 10
	}

	switch p.Codec {
	case CodecH265:
		score += 10
	case CodecH264:
		score += 5
	}

	if p.HDR {
		score += 15
	}
	if p.Proper {
		score += 5
	}
	if p.Repack {
		score += 3
	}

	// Seeders contribute up to 50 points.
	seederScore := p.Seeders / 10
	if seederScore > 50 {
		seederScore = 50
	}
	score += seederScore

	return score
}
