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

package performance_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/rawframe/performance"
	"github.com/jetsetilly/rawframe/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("cpu, Mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "cpu,mem,trace")

	_, err = performance.ParseProfile("disk")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	t.Chdir(t.TempDir())

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ran, true)

	entries, err := os.ReadDir(".")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 2)
	for _, e := range entries {
		test.ExpectSuccess(t, strings.HasPrefix(e.Name(), "test_"))
		test.ExpectSuccess(t, strings.HasSuffix(e.Name(), ".profile"))
	}
}

func TestRunProfilerError(t *testing.T) {
	t.Chdir(t.TempDir())

	e := errors.New("test")
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		return e
	})
	test.ExpectEquality(t, errors.Is(err, e), true)
}
