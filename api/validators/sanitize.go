package validators

// SanitizeString truncates input to maxLen bytes. Oversized fields are
// clipped silently rather than rejected, matching what existing storefront
// callers rely on.
func SanitizeString(input string, maxLen int) string {
	if maxLen > 0 && len(input) > maxLen {
		return input[:maxLen]
	}
	return input
}
