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

package sdlgl

import (
	"errors"
	"testing"

	"github.com/jetsetilly/rawframe/logger"
	"github.com/jetsetilly/rawframe/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestSetAttributes(t *testing.T) {
	set := map[sdl.GLattr]int{}
	err := setAttributes(func(attr sdl.GLattr, value int) error {
		set[attr] = value
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, set[sdl.GL_CONTEXT_MAJOR_VERSION], 2)
	test.ExpectEquality(t, set[sdl.GL_CONTEXT_MINOR_VERSION], 1)
	test.ExpectEquality(t, set[sdl.GL_DOUBLEBUFFER], 1)
}

func TestSetAttributesDoubleBuffer(t *testing.T) {
	logger.Clear()

	err := setAttributes(func(attr sdl.GLattr, value int) error {
		if attr == sdl.GL_DOUBLEBUFFER {
			return errors.New("not supported")
		}
		return nil
	})
	test.ExpectSuccess(t, err)

	w := &test.CompareWriter{}
	logger.Tail(w, 1)
	test.ExpectSuccess(t, w.Compare("sdlgl: GL_DOUBLEBUFFER: not supported\n"))
}

func TestSetAttributesVersion(t *testing.T) {
	e := errors.New("no context")
	err := setAttributes(func(attr sdl.GLattr, value int) error {
		if attr == sdl.GL_CONTEXT_MINOR_VERSION {
			return e
		}
		return nil
	})
	test.ExpectSuccess(t, errors.Is(err, e))
}
