//go:build windows

package notify

import "strings"

// toastScript shows a toast through the WinRT notification API.
const toastScript = `[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] > $null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$text = $template.GetElementsByTagName('text')
$text.Item(0).AppendChild($template.CreateTextNode('{{title}}')) > $null
$text.Item(1).AppendChild($template.CreateTextNode('{{body}}')) > $null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('clippunct').Show($toast)`

// command builds a PowerShell toast call.
func command(msg Message) (string, []string) {
	script := strings.NewReplacer(
		"{{title}}", powerShellQuote(msg.Title),
		"{{body}}", powerShellQuote(msg.Body),
	).Replace(toastScript)
	return "powershell", []string{"-NoProfile", "-NonInteractive", "-Command", script}
}

// powerShellQuote escapes a value for a PowerShell single-quoted string.
func powerShellQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
