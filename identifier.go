package switchapps

import "strings"

// IDToName converts a canonical lowercase-hyphenated action id to its
// display name: segments are split on hyphens, the first letter of each
// segment is uppercased, and the segments are rejoined with spaces.
//
//	IDToName("login-window") == "Login Window"
//
// The conversion is lossy for names with embedded capitals: "usb-port"
// becomes "Usb Port", never "USB Port". Callers must not assume a full
// round trip for such names.
func IDToName(id string) string {
	parts := strings.Split(id, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// NameToID converts a display name to its canonical id: spaces become
// hyphens and all characters are lowercased.
func NameToID(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
