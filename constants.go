package strvals

// Separator joins the elements of a multi-value set in String().
const Separator = ","

// binHdr is the 4-byte header of the binary form: ASCII "SVL" + format version 1.
var binHdr = []byte{0x53, 0x56, 0x4C, 0x01}

// Decoding limits for the binary and JSON forms.
const (
	MaxEncodedBytes = 1_048_576 // 1 MiB total input
	MaxValues       = 65_535
)
