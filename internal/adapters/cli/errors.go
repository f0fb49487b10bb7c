package cli

import "github.com/MegaNoam/CitizensCMD/internal/domain"

// hint maps a domain error code to advice for the server owner.
func hint(code string) string {
	switch code {
	case "parse":
		return "fix the YAML syntax in the language file, or delete it to restore the defaults"
	case "missing_section":
		return "the language file needs a top-level 'messages' section"
	case "missing_resource":
		return "no bundled language file matches; check the language setting"
	case "io":
		return "check that the data folder exists and is writable"
	default:
		return ""
	}
}

// loadErrorMessage formats err with the hint for its domain error code.
func loadErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if h := hint(domain.Code(err)); h != "" {
		return err.Error() + " (" + h + ")"
	}
	return err.Error()
}
