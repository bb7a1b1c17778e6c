//go:build windows

package clipboard

var platformHelper = powershellHelper
