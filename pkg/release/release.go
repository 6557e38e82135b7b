// Package release parses torrent release titles into structured
// attributes and provides title normalization for matching.
package release

// Resolution represents the video resolution of a release.
type Resolution int

const (
	ResolutionUnknown Resolution = iota
	Resolution480p
	Resolution720p
	Resolution1080p
	Resolution2160p
)

// unknownStr is the string representation for unknown values.
const unknownStr = "unknown"

func (r Resolution) String() string {
	switch r {
	case Resolution480p:
		return "480p"
	case Resolution720p:
		return "720p"
	case Resolution1080p:
		return "1080p"
	case Resolution2160p:
		return "2160p"
	default:
		return unknownStr
	}
}

// Source represents the media source type of a release.
type Source int

const (
	SourceUnknown Source = iota
	SourceBluRay
	SourceWEBDL
	SourceWEBRip
	SourceHDTV
	SourceDVD
)

func (s Source) String() string {
	switch s {
	case SourceBluRay:
		return "Bluray"
	case SourceWEBDL:
		return "WEB-DL"
	case SourceWEBRip:
		return "WEBRip"
	case SourceHDTV:
		return "HDTV"
	case SourceDVD:
		return "DVD"
	default:
		return unknownStr
	}
}

// Key returns the lowercase profile-matching form of the source.
func (s Source) Key() string {
	switch s {
	case SourceBluRay:
		return "bluray"
	case SourceWEBDL:
		return "webdl"
	case SourceWEBRip:
		return "webrip"
	case SourceHDTV:
		return "hdtv"
	case SourceDVD:
		return "dvd"
	default:
		return ""
	}
}

// Codec represents the video codec used in a release.
type Codec int

const (
	CodecUnknown Codec = iota
	CodecH264
	CodecH265
)

func (c Codec) String() string {
	switch c {
	case CodecH264:
		return "H.264"
	case CodecH265:
		return "H.265"
	default:
		return unknownStr
	}
}

// Quality is the closed resolution+source enumeration consumed by
// quality profiles, e.g. "1080p_bluray". Releases with no detectable
// resolution are QualityAny.
type Quality string

const (
	QualityAny         Quality = "any"
	Quality2160pBluray Quality = "2160p_bluray"
	Quality2160pWEBDL  Quality = "2160p_webdl"
	Quality1080pBluray Quality = "1080p_bluray"
	Quality1080pWEBDL  Quality = "1080p_webdl"
	Quality720pBluray  Quality = "720p_bluray"
	Quality720pWEBDL   Quality = "720p_webdl"
	Quality480pBluray  Quality = "480p_bluray"
	Quality480pWEBDL   Quality = "480p_webdl"
	QualityDVD         Quality = "dvd"
)

// ParsedTorrent contains the structured attributes extracted from one
// raw torrent title, plus the size and seeder count the indexer
// reported alongside it.
type ParsedTorrent struct {
	Title         string // cleaned title, quality tokens removed
	Quality       Quality
	Resolution    Resolution
	Codec         Codec
	Source        Source
	HDR           bool
	Proper        bool
	Repack        bool
	Size          int64 // bytes
	Seeders       int
	OriginalTitle string
}
