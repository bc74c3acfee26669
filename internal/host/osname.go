package host

import "strings"

const unknownWindows = "Microsoft Windows"

// unameName joins uname fields as "sysname release (version)". Empty
// fields are dropped.
func unameName(sysname, release, version string) string {
	name := strings.TrimSpace(sysname + " " + release)
	if version != "" {
		name += " (" + version + ")"
	}
	return strings.TrimSpace(name)
}

// windowsName builds "<caption> (<service pack>, Build <n>)". An empty
// caption yields "Microsoft Windows".
func windowsName(caption, servicePack, build string) string {
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return unknownWindows
	}

	var details []string
	if sp := strings.TrimSpace(servicePack); sp != "" {
		details = append(details, sp)
	}
	if b := strings.TrimSpace(build); b != "" {
		details = append(details, "Build "+b)
	}
	if len(details) == 0 {
		return caption
	}
	return caption + " (" + strings.Join(details, ", ") + ")"
}
