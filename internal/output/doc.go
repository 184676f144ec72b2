// Package output prints the scaffolder's user-facing lines.
//
// # Usage
//
//	output.Success("Scaffolded my-app")
//	output.Info("Next steps:")
//	output.Step("cd my-app")
//	output.Error("write packages/backend/package.json: permission denied")
//
// # Styling
//
// Lines are styled with lipgloss when the destination is a terminal:
//
//   - Success: 🪺 green bold
//   - Error: ❌ red bold
//   - Warn: ⚠️ yellow
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
//
// When it is not (CI logs, pipes), SetPlain drops colors and emoji so the
// text is greppable.
package output
