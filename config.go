package stk1

// Configuration controls the encoder's dictionary window and per-match
// length cap. It has no effect on decoding: the wire format is
// self-describing and Decode/DecodeToVec accept any stream regardless of
// which Configuration produced it.
type Configuration struct {
	maxDistance int
	maxLen      int
}

// NewConfiguration builds a Configuration from an explicit window size and
// match length cap. maxDistance must not exceed 0x20000: the format's
// distance tiers cannot encode anything larger.
func NewConfiguration(maxDistance, maxLen int) Configuration {
	return Configuration{maxDistance: maxDistance, maxLen: maxLen}
}

// MaxDistance is the dictionary window size in bytes.
func (c Configuration) MaxDistance() int { return c.maxDistance }

// MaxLen is the cap on a single match's length.
func (c Configuration) MaxLen() int { return c.maxLen }

// Preset configurations, covering three common speed/ratio tradeoffs.
var (
	// TinyConfiguration uses a 16KB dictionary and 16KB match length cap,
	// favoring memory and speed over ratio.
	TinyConfiguration = NewConfiguration(0x4000, 0x4000)

	// DefaultConfiguration uses a 128KB dictionary and an 8MB match length
	// cap.
	DefaultConfiguration = NewConfiguration(lzMaxDistance, lzMaxLen)

	// MaxConfiguration uses the largest permitted dictionary with no
	// practical match length cap.
	MaxConfiguration = NewConfiguration(lzMaxDistance, 0xFF_FF_FF_FF)
)
