package classify

// Platform is a target operating system.
type Platform string

const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
	MacOS   Platform = "macos"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{Windows, Linux, MacOS}

// ParsePlatform parses a platform name. Unknown names return an
// *errors.UnrecognizedError listing windows, linux and macos.
func ParsePlatform(s string) (Platform, error) {
	return parseLabel("platform", s, Platforms)
}
