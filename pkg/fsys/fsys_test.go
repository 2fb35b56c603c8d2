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
package fsys

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestFakeReadMissing(t *testing.T) {
	f := NewFake()
	_, err := f.ReadFile("missing.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) err = %v, want fs.ErrNotExist", err)
	}
	if len(f.Calls) != 1 || f.Calls[0] != (Call{Method: "ReadFile", Path: "missing.txt"}) {
		t.Errorf("Calls = %+v", f.Calls)
	}
}

func TestFakeWriteCopies(t *testing.T) {
	f := NewFake()
	data := []byte("hello")
	if err := f.WriteFile("a.txt", data, 0o644); err != nil {
		t.Fatal(err)
	}
	data[0] = 'j'
	got, err := f.ReadFile("a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("ReadFile = %q, want %q", got, "hello")
	}
}

func TestFakeInjectedError(t *testing.T) {
	f := NewFake()
	boom := errors.New("boom")
	f.Errors["a.txt"] = boom
	if err := f.WriteFile("a.txt", nil, 0o644); err != boom {
		t.Errorf("WriteFile err = %v, want %v", err, boom)
	}
	if _, ok := f.Files["a.txt"]; ok {
		t.Error("failed write should not store data")
	}
}

func TestOSFSRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	var fsys OSFS
	if _, err := fsys.ReadFile(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile before write err = %v, want fs.ErrNotExist", err)
	}
	if err := fsys.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "one\ntwo\n" {
		t.Errorf("ReadFile = %q", got)
	}
}
