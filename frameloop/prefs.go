// This file is part of Rawframe.
//
// Rawframe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rawframe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rawframe.  If not, see <https://www.gnu.org/licenses/>.

package frameloop

import (
	"fmt"

	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/paths"
	"github.com/jetsetilly/rawframe/prefs"
)

// Preferences for the frame loop.
type Preferences struct {
	dsk *prefs.Disk

	// pace the loop to FPS frames per second
	FPSCap prefs.Bool
	FPS    prefs.Int

	// name of the button that stops the loop. empty for no cancel button
	Cancel prefs.String

	// log a report for every frame
	LogFrames prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences loads the preferences from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("frameloop: %w", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile loads the preferences from the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.FPS.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("frameloop: illegal fps value (%d)", v.(int))
		}
		return nil
	})

	p.Cancel.SetHookPre(func(v prefs.Value) error {
		if v.(string) == "" {
			return nil
		}
		_, err := input.ParseButton(v.(string))
		return err
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("frameloop: %w", err)
	}

	for k, v := range map[string]prefs.Pref{
		"frameloop.fpscap":    &p.FPSCap,
		"frameloop.fps":       &p.FPS,
		"frameloop.cancel":    &p.Cancel,
		"frameloop.logframes": &p.LogFrames,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, fmt.Errorf("frameloop: %w", err)
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, fmt.Errorf("frameloop: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.FPSCap.Set(true)
	p.FPS.Set(60)
	p.Cancel.Set("")
	p.LogFrames.Set(true)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// AllowLogging implements the logger.Permission interface. Frame reports are
// logged only if the LogFrames preference is set.
func (p *Preferences) AllowLogging() bool {
	return p.LogFrames.Get().(bool)
}

// Options returns the loop options implied by the preferences.
func (p *Preferences) Options() ([]Option, error) {
	opts := []Option{WithLogPermission(p)}

	if p.FPSCap.Get().(bool) {
		opts = append(opts, WithLimiter(p.FPS.Get().(int)))
	}

	if c := p.Cancel.String(); c != "" {
		b, err := input.ParseButton(c)
		if err != nil {
			return nil, fmt.Errorf("frameloop: %w", err)
		}
		opts = append(opts, WithCancel(b))
	}

	return opts, nil
}
