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
	"strings"
)

// A Buffer holds the text being edited as a list of rows.
// A buffer always has at least one row.
type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.LoadBytes(nil)
	return b
}

// LoadBytes replaces the contents of the buffer.
func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

// Bytes returns the contents of the buffer with rows joined by newlines.
func (b *Buffer) Bytes() []byte {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return []byte(strings.Join(lines, "\n"))
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetRow(i int) *Row {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i]
	}
	return nil
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	if row >= 0 && row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

// DeleteCharacter removes the character at row, col. At the end of a row
// the following row is joined to it.
func (b *Buffer) DeleteCharacter(row, col int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	if col < b.rows[row].Length() {
		b.rows[row].DeleteChar(col)
	} else if row < len(b.rows)-1 {
		b.JoinRow(row)
	}
}

// SplitRow breaks a row in two at col.
func (b *Buffer) SplitRow(row, col int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	after := b.rows[row].Split(col)
	b.rows = append(b.rows, nil)
	copy(b.rows[row+2:], b.rows[row+1:])
	b.rows[row+1] = after
}

// JoinRow appends the row below to row and removes it.
func (b *Buffer) JoinRow(row int) {
	if row < 0 || row >= len(b.rows)-1 {
		return
	}
	b.rows[row].Join(b.rows[row+1])
	b.rows = append(b.rows[0:row+1], b.rows[row+2:]...)
}
