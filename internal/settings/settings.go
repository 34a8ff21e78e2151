// Package settings persists the user-facing settings record.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	// AppDirName is the per-user subdirectory holding the settings file.
	AppDirName = "todo-app"
	// FileName is the settings file name inside AppDirName.
	FileName = "settings.json"
)

// settingsSchema requires the silent field to be present as a string,
// matching the strict decoding of the settings format.
const settingsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["silent"],
  "properties": {
    "silent": {"type": "string"}
  }
}`

var compiledSettingsSchema = jsonschema.MustCompileString("settings.json", settingsSchema)

// Settings is the persisted settings record. Values are stored as the
// literal strings the user typed ("on"/"off"), not booleans, so the file
// stays human-editable and future settings can carry richer values.
type Settings struct {
	Silent string `json:"silent"`
}

// Default returns the settings used when no file exists yet.
func Default() Settings {
	return Settings{Silent: "off"}
}

// option describes one recognized setting: its key, legal values, and
// the description shown by `set help`.
type option struct {
	key    string
	values []string
	desc   string
}

var options = []option{
	{
		key:    "silent",
		values: []string{"on", "off"},
		desc:   "Don't print the todo list after each mutation command (Default = off)",
	},
}

// Load resolves the settings file under configDir, creating the
// application directory if needed. A missing file materializes and
// persists the defaults; a malformed file is an error.
func Load(configDir string) (string, Settings, error) {
	if configDir == "" {
		return "", Settings{}, errors.New("Could not find config directory.")
	}

	dir := filepath.Join(configDir, AppDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", Settings{}, fmt.Errorf("Could not create config file: %v", err)
	}

	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s := Default()
			if err := Save(s, path); err != nil {
				return "", Settings{}, err
			}
			return path, s, nil
		}
		return "", Settings{}, fmt.Errorf("Could not read settings file: %v", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", Settings{}, fmt.Errorf("Could not parse settings file: %v", err)
	}
	if err := compiledSettingsSchema.Validate(raw); err != nil {
		return "", Settings{}, fmt.Errorf("Could not parse settings file: %v", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return "", Settings{}, fmt.Errorf("Could not parse settings file: %v", err)
	}
	return path, s, nil
}

// Save writes the whole settings record to path as one JSON object.
func Save(s Settings, path string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("Could not create the config file: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("Could not create the config file: %v", err)
	}
	return nil
}

// Set applies `set <setting> <value>` to s and persists it. The first
// param "help" prints the recognized settings instead and mutates
// nothing. Unknown keys and illegal values are errors and leave the
// stored record untouched.
func Set(s *Settings, path string, params []string, out io.Writer) error {
	if len(params) >= 1 && params[0] == "help" {
		PrintHelp(out)
		return nil
	}

	if len(params) != 2 {
		return errors.New("Parameter format is incorrect. See `todo set help` for information.\nUsage: todo set <setting> <value>")
	}
	key, value := params[0], params[1]

	applied := false
	for _, opt := range options {
		if opt.key != key {
			continue
		}
		for _, legal := range opt.values {
			if legal == value {
				applied = true
			}
		}
	}
	if !applied {
		return fmt.Errorf("Failed to change setting %q to option %q, setting or option doesn't exist.", key, value)
	}

	switch key {
	case "silent":
		s.Silent = value
	}

	if err := Save(*s, path); err != nil {
		return err
	}

	fmt.Fprintf(out, "Successfully changed setting %q to %q.\n", key, value)
	return nil
}

// PrintHelp lists the recognized settings, their legal values, and what
// they do.
func PrintHelp(out io.Writer) {
	fmt.Fprintln(out, "Change settings with \"todo set <setting> <option>\".")
	fmt.Fprintln(out, "Commands:")
	for _, opt := range options {
		fmt.Fprintf(out, "\t%s <", opt.key)
		for i, v := range opt.values {
			if i < len(opt.values)-1 {
				fmt.Fprintf(out, "%s | ", v)
			} else {
				fmt.Fprintf(out, "%s>\t%s\n", v, opt.desc)
			}
		}
	}
}
