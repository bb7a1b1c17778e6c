//go:build !darwin && !windows

package clipboard

// xclip and wl-copy serve a single MIME type per selection, so writing HTML
// through them would drop the text flavour. These platforms stay text-only.
var platformHelper *richHelper
