package util

// DeriveKey namespaces key under prefix. An empty key addresses the prefix
// itself; an empty prefix leaves key unchanged.
func DeriveKey(prefix, key string) string {
	switch {
	case key == "":
		return prefix
	case prefix == "":
		return key
	default:
		return prefix + ":" + key
	}
}
