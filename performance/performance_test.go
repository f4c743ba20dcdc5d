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
	"testing"
	"time"

	"github.com/jetsetilly/rawframe/game"
	"github.com/jetsetilly/rawframe/performance"
	"github.com/jetsetilly/rawframe/test"
)

func TestCheck(t *testing.T) {
	performance.LeadTime = 0

	w := &test.CompareWriter{}
	err := performance.Check(w, performance.ProfileNone, &game.Gradient{Drift: true}, 32, 16, 0, 60, 20*time.Millisecond)
	test.DemandSuccess(t, err)

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, w.Contains(" fps ("))
	test.ExpectSuccess(t, w.Contains("digest: "))
}

func TestCheckDuration(t *testing.T) {
	w := &test.CompareWriter{}
	err := performance.Check(w, performance.ProfileNone, &game.Gradient{}, 32, 16, 0, 60, 0)
	test.ExpectFailure(t, err)
}
