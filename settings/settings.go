/*
 * settings.go, part of potentials.
 *
 * Copyright 2023 The potentials developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package settings persists the per user options of the potentials
// tools: where the local library of records lives, where the kim-api
// is installed, and whether lookups go to the local library, the
// remote database, or both. The options live in a TOML file under
// ~/.potentials, and that directory can be forwarded somewhere else
// (a shared drive, say) through the forwarding_directory option.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

const settingsFile = "settings.toml"

//content mirrors the settings file. Pointer fields distinguish unset
//options from explicit false values.
type content struct {
	ForwardingDirectory string `toml:"forwarding_directory,omitempty"`
	LibraryDirectory    string `toml:"library_directory,omitempty"`
	KimAPIDirectory     string `toml:"kim_api_directory,omitempty"`
	Remote              *bool  `toml:"remote,omitempty"`
	Local               *bool  `toml:"local,omitempty"`
}

func (c *content) empty() bool {
	return c.ForwardingDirectory == "" && c.LibraryDirectory == "" &&
		c.KimAPIDirectory == "" && c.Remote == nil && c.Local == nil
}

// Settings holds the loaded per user options.
type Settings struct {
	defaultDir     string
	directory      string
	content        content
	defaultContent content
}

func readContent(filename string) (content, error) {
	var c content
	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	defer f.Close()
	if err := toml.NewDecoder(f).Decode(&c); err != nil {
		return c, fmt.Errorf("settings: reading %s: %w", filename, err)
	}
	return c, nil
}

func writeContent(filename string, c *content) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(*c); err != nil {
		return fmt.Errorf("settings: writing %s: %w", filename, err)
	}
	return nil
}

// Load reads the settings, following a forwarding directory if the
// default settings file names one. Missing files yield the defaults.
func Load() (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return LoadFrom(filepath.Join(home, ".potentials"))
}

// LoadFrom reads the settings using the given default directory
// instead of ~/.potentials.
func LoadFrom(defaultDir string) (*Settings, error) {
	s := &Settings{defaultDir: defaultDir, directory: defaultDir}
	var err error
	s.defaultContent, err = readContent(filepath.Join(defaultDir, settingsFile))
	if err != nil {
		return nil, err
	}
	if fwd := s.defaultContent.ForwardingDirectory; fwd != "" {
		s.directory = fwd
		s.content, err = readContent(filepath.Join(fwd, settingsFile))
		if err != nil {
			return nil, err
		}
		if s.content.ForwardingDirectory != "" {
			return nil, fmt.Errorf("settings: %s: forwarding_directory cannot chain to another forwarding_directory", s.Filename())
		}
	} else {
		s.content = s.defaultContent
	}
	return s, nil
}

// Directory returns the settings directory in use, after any
// forwarding.
func (s *Settings) Directory() string { return s.directory }

// Filename returns the path of the settings file in use.
func (s *Settings) Filename() string {
	return filepath.Join(s.directory, settingsFile)
}

// LibraryDirectory returns the directory of the local record
// library. Defaults to a "library" directory under the settings
// directory.
func (s *Settings) LibraryDirectory() string {
	if s.content.LibraryDirectory != "" {
		return s.content.LibraryDirectory
	}
	return filepath.Join(s.directory, "library")
}

// SetLibraryDirectory assigns the local record library directory. An
// empty path resets the default.
func (s *Settings) SetLibraryDirectory(path string) {
	s.content.LibraryDirectory = path
}

// KimAPIDirectory returns the directory holding the kim-api
// installation, or an empty string when not set.
func (s *Settings) KimAPIDirectory() string { return s.content.KimAPIDirectory }

// SetKimAPIDirectory assigns the kim-api installation directory. An
// empty path unsets it.
func (s *Settings) SetKimAPIDirectory(path string) {
	s.content.KimAPIDirectory = path
}

// Remote reports whether lookups check the remote database. True
// when not set.
func (s *Settings) Remote() bool {
	if s.content.Remote == nil {
		return true
	}
	return *s.content.Remote
}

// SetRemote assigns the default remote lookup flag. True clears the
// option, as that is the default.
func (s *Settings) SetRemote(flag bool) {
	if flag {
		s.content.Remote = nil
		return
	}
	s.content.Remote = &flag
}

// Local reports whether lookups check the local library. True when
// not set.
func (s *Settings) Local() bool {
	if s.content.Local == nil {
		return true
	}
	return *s.content.Local
}

// SetLocal assigns the default local lookup flag. True clears the
// option, as that is the default.
func (s *Settings) SetLocal(flag bool) {
	if flag {
		s.content.Local = nil
		return
	}
	s.content.Local = &flag
}

// SetDirectory forwards the settings directory to a new location.
// It fails if the default settings file already carries options
// other than the forwarding, as those would be silently shadowed.
func (s *Settings) SetDirectory(path string) error {
	if s.defaultContent.ForwardingDirectory != "" {
		return fmt.Errorf("settings: directory already set to %s", s.directory)
	}
	c := s.defaultContent
	c.ForwardingDirectory = ""
	if !c.empty() {
		return fmt.Errorf("settings: directory cannot be changed if other settings exist in %s", filepath.Join(s.defaultDir, settingsFile))
	}
	s.defaultContent.ForwardingDirectory = path
	if err := writeContent(filepath.Join(s.defaultDir, settingsFile), &s.defaultContent); err != nil {
		return err
	}
	s.directory = path
	var err error
	s.content, err = readContent(s.Filename())
	return err
}

// UnsetDirectory removes the forwarding and returns the settings
// directory to the default location.
func (s *Settings) UnsetDirectory() error {
	if s.defaultContent.ForwardingDirectory == "" {
		return nil
	}
	s.defaultContent.ForwardingDirectory = ""
	if err := writeContent(filepath.Join(s.defaultDir, settingsFile), &s.defaultContent); err != nil {
		return err
	}
	s.directory = s.defaultDir
	s.content = s.defaultContent
	return nil
}

// Save writes the current options to the settings file in use.
func (s *Settings) Save() error {
	if s.directory == s.defaultDir {
		s.defaultContent = s.content
	}
	return writeContent(s.Filename(), &s.content)
}
