// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsi-vcs/vcs2600/logger"
)

func TestLog(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	assert.Equal(t, "", w.String())

	log.Log("test", "this is a test")
	log.Write(w)
	assert.Equal(t, "test: this is a test\n", w.String())

	w.Reset()
	log.Log("test2", "this is another test")
	log.Write(w)
	assert.Equal(t, "test: this is a test\ntest2: this is another test\n", w.String())
}

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	log.Log("a", "1")
	log.Log("b", "2")
	log.Log("c", "3")

	w := &strings.Builder{}
	log.Tail(w, 100)
	assert.Equal(t, "a: 1\nb: 2\nc: 3\n", w.String())

	w.Reset()
	log.Tail(w, 2)
	assert.Equal(t, "b: 2\nc: 3\n", w.String())

	w.Reset()
	log.Tail(w, 0)
	assert.Equal(t, "", w.String())
}

func TestRingOverwritesOldest(t *testing.T) {
	log := logger.NewLogger(2)
	log.Log("a", "1")
	log.Log("b", "2")
	log.Log("c", "3")

	w := &strings.Builder{}
	log.Write(w)
	assert.Equal(t, "b: 2\nc: 3\n", w.String())
}

func TestErrorAndStringerRendering(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log("tag", errors.New("boom"))
	log.Write(w)
	assert.Equal(t, "tag: boom\n", w.String())

	log.Clear()
	w.Reset()
	log.Logf("tag", "wrapped: %v", errors.New("boom"))
	log.Write(w)
	assert.Equal(t, "tag: wrapped: boom\n", w.String())
}

func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log("test", "this is a test")
	logger.Write(w)
	assert.Equal(t, "test: this is a test\n", w.String())
}
