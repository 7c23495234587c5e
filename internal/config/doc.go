// Package config loads and saves the YAML description of a numpad form.
//
// A form file lists the numeric fields to show, the keypad geometry and the
// animation parameters used by the terminal renderer. The file follows OS
// conventions for its default location:
//   - Linux: $XDG_CONFIG_HOME/numpad/form.yaml or $HOME/.config/numpad/form.yaml
//   - macOS: $HOME/.config/numpad/form.yaml
//   - Windows: %LOCALAPPDATA%\numpad\form.yaml
//
// # Usage Example
//
//	form, err := config.Load("")   // default path, Default() if missing
//	if err != nil {
//	    log.Fatal(err)
//	}
//	form.Fields = append(form.Fields, config.FieldSpec{Label: "Tip", Max: ptr(100)})
//	if err := form.Save(path); err != nil {
//	    log.Fatal(err)
//	}
//
// Saves are atomic: the file is written to a temporary sibling and renamed.
package config
