// Package config provides local-first configuration for the dialogstack demo.
//
// Configuration lives in the project's .dialogstack/ directory:
//
//	.dialogstack/
//	├── config.toml        # Main configuration (committed to git)
//	└── .gitignore         # Keeps logs out of git
//
// config.toml groups settings by concern:
//
//	[stack]
//	portal_target = "body"
//	escape_trigger = "press"
//
//	[dialog]
//	close_on_esc = true
//	close_on_overlay_click = true
//	show_overlay = true
//
//	[ui]
//	theme = "fire"
//	markdown_style = "dracula"
//
//	[log]
//	level = "info"
//	file = "${HOME}/dialogstack.log"
//
// String values may reference environment variables with $VAR or ${VAR}.
//
// Example usage:
//
//	manager := config.NewManager("/path/to/project")
//	if err := manager.Load(); err != nil {
//		return err
//	}
//
//	cfg := manager.Get()
//	fmt.Println("escape trigger:", cfg.Stack.EscapeTrigger)
//
//	// Update a setting
//	manager.Set("ui.theme", "ocean")
package config
