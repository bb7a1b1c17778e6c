//go:build darwin

package clipboard

var platformHelper = osascriptHelper
