// Package wslconf parses /etc/wsl.conf, the per-distro WSL configuration file.
//
// Only the automount settings are read. A missing file, a missing section and
// missing keys all fall back to the defaults WSL itself applies.
package wslconf

import (
	"fmt"
	"strings"

	"github.com/ubuntu/decorate"
	"gopkg.in/ini.v1"
)

// Config holds the automount settings of a distro.
type Config struct {
	// AutomountRoot is the directory Windows drives are mounted under,
	// without a trailing slash.
	AutomountRoot string

	// AutomountEnabled is false when drive mounting is turned off.
	AutomountEnabled bool
}

// Default returns the configuration WSL applies when no wsl.conf is present.
func Default() Config {
	return Config{
		AutomountRoot:    "/mnt",
		AutomountEnabled: true,
	}
}

// Parse reads wsl.conf contents and returns the automount settings, with the
// defaults applied for anything the file does not set.
func Parse(data []byte) (c Config, err error) {
	defer decorate.OnError(&err, "could not parse wsl.conf")

	c = Default()

	f, err := ini.Load(data)
	if err != nil {
		return Default(), err
	}

	section := f.Section("automount")

	c.AutomountEnabled = section.Key("enabled").MustBool(c.AutomountEnabled)

	root := section.Key("root").MustString(c.AutomountRoot)
	root, err = cleanRoot(root)
	if err != nil {
		return Default(), err
	}
	c.AutomountRoot = root

	return c, nil
}

// cleanRoot validates an automount root and strips its trailing slash. WSL
// requires the root to be an absolute path.
func cleanRoot(root string) (string, error) {
	if !strings.HasPrefix(root, "/") {
		return "", fmt.Errorf("automount root %q is not an absolute path", root)
	}

	if root != "/" {
		root = strings.TrimRight(root, "/")
	}

	return root, nil
}
