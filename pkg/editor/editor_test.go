//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/timburks/tedit/pkg/fsys"
	tedit "github.com/timburks/tedit/pkg/types"
)

func setup(t *testing.T, text string) (*Editor, *fsys.Fake) {
	t.Helper()
	f := fsys.NewFake()
	e := NewEditor(f)
	e.SetText(text)
	return e, f
}

func TestLoadMissingFileClearsBuffer(t *testing.T) {
	for _, prior := range []string{"", "hello", "one\ntwo\nthree", "\n\n"} {
		e, _ := setup(t, prior)
		if err := e.OnClick("does-not-exist.txt", tedit.ActionLoad); err != nil {
			t.Fatalf("load missing file: %+v", err)
		}
		if text := e.Text(); text != "" {
			t.Errorf("prior %q: buffer after loading missing file = %q, want empty", prior, text)
		}
		if e.GetCursor() != (tedit.Point{}) {
			t.Errorf("prior %q: cursor = %+v, want origin", prior, e.GetCursor())
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, text := range []string{
		"hello",
		"",
		"one\ntwo\n",
		"\ttabbed\r\nwindows line\r\n",
		"unicode: héllo 世界",
		"\n\n\n",
	} {
		e, _ := setup(t, text)
		e.OnClick("a.txt", tedit.ActionSave)
		e.SetText("something else")
		if err := e.OnClick("a.txt", tedit.ActionLoad); err != nil {
			t.Fatalf("load: %+v", err)
		}
		if got := e.Text(); got != text {
			t.Errorf("round trip = %q, want %q", got, text)
		}
	}
}

func TestSaveClearLoadScenario(t *testing.T) {
	e, f := setup(t, "hello")
	if err := e.OnClick("a.txt", tedit.ActionSave); err != nil {
		t.Fatal(err)
	}
	if string(f.Files["a.txt"]) != "hello" {
		t.Errorf("saved file = %q, want %q", f.Files["a.txt"], "hello")
	}
	e.SetText("")
	if err := e.OnClick("a.txt", tedit.ActionLoad); err != nil {
		t.Fatal(err)
	}
	if e.Text() != "hello" {
		t.Errorf("buffer = %q, want %q", e.Text(), "hello")
	}
}

func TestSaveOverwrites(t *testing.T) {
	e, f := setup(t, "new")
	f.Files["a.txt"] = []byte("old contents that are longer")
	e.OnClick("a.txt", tedit.ActionSave)
	if string(f.Files["a.txt"]) != "new" {
		t.Errorf("saved file = %q, want %q", f.Files["a.txt"], "new")
	}
}

func TestSaveErrorIsDropped(t *testing.T) {
	e, f := setup(t, "keep me")
	f.Errors["a.txt"] = errors.New("disk full")
	if err := e.OnClick("a.txt", tedit.ActionSave); err != nil {
		t.Errorf("save error returned: %+v", err)
	}
	if e.Text() != "keep me" {
		t.Errorf("buffer changed after failed save: %q", e.Text())
	}
}

func TestLoadErrorIsReturned(t *testing.T) {
	e, f := setup(t, "keep me")
	boom := errors.New("permission denied")
	f.Errors["a.txt"] = boom
	err := e.OnClick("a.txt", tedit.ActionLoad)
	if !errors.Is(err, boom) {
		t.Errorf("load err = %v, want %v", err, boom)
	}
	if e.Text() != "keep me" {
		t.Errorf("buffer changed after failed load: %q", e.Text())
	}
}

func TestLoadDirectoryIsAnError(t *testing.T) {
	e := NewEditor(fsys.OSFS{})
	e.SetText("keep me")
	err := e.OnClick(t.TempDir(), tedit.ActionLoad)
	if err == nil {
		t.Fatal("loading a directory should fail")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("loading a directory reported a missing file: %v", err)
	}
}

func TestOnDiskRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	e := NewEditor(fsys.OSFS{})
	e.SetText("hello\nworld\n")
	e.OnClick(path, tedit.ActionSave)
	e.SetText("")
	if err := e.OnClick(path, tedit.ActionLoad); err != nil {
		t.Fatal(err)
	}
	if e.Text() != "hello\nworld\n" {
		t.Errorf("buffer = %q", e.Text())
	}
}

func TestUnexpectedAction(t *testing.T) {
	e, f := setup(t, "x")
	if err := e.OnClick("a.txt", tedit.Action(42)); err == nil {
		t.Error("unexpected action should fail")
	}
	if len(f.Calls) != 0 {
		t.Errorf("file system touched: %+v", f.Calls)
	}
}

func TestTyping(t *testing.T) {
	e, _ := setup(t, "")
	for _, c := range "ab\ncd" {
		e.InsertChar(c)
	}
	if e.Text() != "ab\ncd" {
		t.Fatalf("buffer = %q", e.Text())
	}
	e.MoveToBeginningOfLine()
	e.BackspaceChar()
	if e.Text() != "abcd" {
		t.Errorf("after joining backspace buffer = %q", e.Text())
	}
	if e.GetCursor() != (tedit.Point{Row: 0, Col: 2}) {
		t.Errorf("cursor = %+v", e.GetCursor())
	}
	e.DeleteChar()
	if e.Text() != "abd" {
		t.Errorf("after delete buffer = %q", e.Text())
	}
}

func TestCursorMovement(t *testing.T) {
	e, _ := setup(t, "short\na much longer row\nx")
	e.MoveCursor(tedit.MoveDown)
	e.MoveToEndOfLine()
	if e.GetCursor() != (tedit.Point{Row: 1, Col: 17}) {
		t.Fatalf("cursor = %+v", e.GetCursor())
	}
	e.MoveCursor(tedit.MoveUp)
	if e.GetCursor() != (tedit.Point{Row: 0, Col: 5}) {
		t.Errorf("cursor not clamped to row: %+v", e.GetCursor())
	}
	e.MoveCursor(tedit.MoveRight)
	if e.GetCursor() != (tedit.Point{Row: 1, Col: 0}) {
		t.Errorf("right at end of row = %+v", e.GetCursor())
	}
	e.MoveCursor(tedit.MoveLeft)
	if e.GetCursor() != (tedit.Point{Row: 0, Col: 5}) {
		t.Errorf("left at start of row = %+v", e.GetCursor())
	}
	e.SetCursor(tedit.Point{Row: 99, Col: 99})
	if e.GetCursor() != (tedit.Point{Row: 2, Col: 1}) {
		t.Errorf("SetCursor not clamped: %+v", e.GetCursor())
	}
}

func TestScroll(t *testing.T) {
	e, _ := setup(t, "0\n1\n2\n3\n4\n5\n6\n7\n8\n9")
	e.SetSize(tedit.Size{Rows: 3, Cols: 10})
	e.SetCursor(tedit.Point{Row: 5})
	e.Scroll()
	if e.GetOffset().Rows != 3 {
		t.Errorf("offset rows = %d, want 3", e.GetOffset().Rows)
	}
	e.PageUp()
	e.Scroll()
	if e.GetCursor().Row != 3 || e.GetOffset().Rows != 3 {
		t.Errorf("after page up cursor = %+v offset = %+v", e.GetCursor(), e.GetOffset())
	}
}

type cell struct {
	c      rune
	fg, bg tedit.Color
}

type fakeDisplay map[tedit.Point]cell

func (d fakeDisplay) SetCell(col, row int, c rune, fg, bg tedit.Color) {
	d[tedit.Point{Row: row, Col: col}] = cell{c, fg, bg}
}

func (d fakeDisplay) line(row, cols int) string {
	var s []rune
	for col := 0; col < cols; col++ {
		if c, ok := d[tedit.Point{Row: row, Col: col}]; ok {
			s = append(s, c.c)
		} else {
			s = append(s, ' ')
		}
	}
	return string(s)
}

func TestRender(t *testing.T) {
	e, _ := setup(t, "ab\tc\nxy")
	e.SetSize(tedit.Size{Rows: 3, Cols: 12})
	e.SetCursor(tedit.Point{Row: 0, Col: 3})
	d := fakeDisplay{}
	cursor := e.Render(tedit.Point{Row: 1, Col: 0}, d)
	if got := d.line(1, 12); got != "ab      c   " {
		t.Errorf("row 0 = %q", got)
	}
	if got := d.line(2, 12); got != "xy          " {
		t.Errorf("row 1 = %q", got)
	}
	if got := d.line(3, 12); got != "~           " {
		t.Errorf("row 2 = %q", got)
	}
	if cursor != (tedit.Point{Row: 1, Col: 8}) {
		t.Errorf("cursor = %+v, want {1 8}", cursor)
	}
}

func TestScrollTabs(t *testing.T) {
	line := strings.Repeat("\t", 12) + "abc"
	e, _ := setup(t, line+"\nshort")
	e.SetSize(tedit.Size{Rows: 3, Cols: 80})
	e.MoveToEndOfLine()
	if e.GetCursor().Col != 15 {
		t.Fatalf("cursor = %+v", e.GetCursor())
	}
	if col := e.DisplayColumn(0, 15); col != 99 {
		t.Errorf("display column = %d, want 99", col)
	}
	e.Scroll()
	if e.GetOffset().Cols != 20 {
		t.Errorf("offset cols = %d, want 20", e.GetOffset().Cols)
	}
	d := fakeDisplay{}
	cursor := e.Render(tedit.Point{}, d)
	if cursor != (tedit.Point{Row: 0, Col: 79}) {
		t.Errorf("cursor = %+v, want {0 79}", cursor)
	}
	if got := d.line(0, 80)[76:79]; got != "abc" {
		t.Errorf("end of line drawn as %q", got)
	}

	e.MoveToBeginningOfLine()
	e.Scroll()
	if e.GetOffset().Cols != 0 {
		t.Errorf("offset cols after moving home = %d", e.GetOffset().Cols)
	}
	if cursor := e.Render(tedit.Point{}, fakeDisplay{}); cursor != (tedit.Point{}) {
		t.Errorf("cursor at start of line = %+v", cursor)
	}
}

func TestRenderWideRunes(t *testing.T) {
	e, _ := setup(t, "日本語")
	e.SetSize(tedit.Size{Rows: 1, Cols: 5})
	e.MoveToEndOfLine()
	e.Scroll()
	if e.GetOffset().Cols != 2 {
		t.Fatalf("offset cols = %d, want 2", e.GetOffset().Cols)
	}
	d := fakeDisplay{}
	cursor := e.Render(tedit.Point{}, d)
	if cursor != (tedit.Point{Row: 0, Col: 4}) {
		t.Errorf("cursor = %+v, want {0 4}", cursor)
	}
	if d[tedit.Point{Col: 0}].c != '本' || d[tedit.Point{Col: 2}].c != '語' {
		t.Errorf("drawn = %q", d.line(0, 5))
	}
}

func TestColumnAt(t *testing.T) {
	e, _ := setup(t, "a\tb日c")
	for _, test := range []struct{ cell, want int }{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 2},
		{9, 3},
		{10, 3},
		{11, 4},
		{40, 5},
	} {
		if got := e.ColumnAt(0, test.cell); got != test.want {
			t.Errorf("ColumnAt(0, %d) = %d, want %d", test.cell, got, test.want)
		}
	}
}
