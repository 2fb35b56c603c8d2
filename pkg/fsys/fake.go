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
	"os"
)

// Fake is an in-memory FS for testing. It records all calls and
// simulates file contents. Pre-populate Files and Errors before use.
type Fake struct {
	Files  map[string][]byte // pre-populated files
	Errors map[string]error  // path -> injected error (checked first)
	Calls  []Call            // spy log
}

// Call records a single method invocation on Fake.
type Call struct {
	Method string // "ReadFile" or "WriteFile"
	Path   string
}

func NewFake() *Fake {
	return &Fake{
		Files:  make(map[string][]byte),
		Errors: make(map[string]error),
	}
}

func (f *Fake) ReadFile(name string) ([]byte, error) {
	f.Calls = append(f.Calls, Call{Method: "ReadFile", Path: name})
	if err, ok := f.Errors[name]; ok {
		return nil, err
	}
	if data, ok := f.Files[name]; ok {
		cp := make([]byte, len(data))
		copy(cp, data)
		return cp, nil
	}
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
}

func (f *Fake) WriteFile(name string, data []byte, _ os.FileMode) error {
	f.Calls = append(f.Calls, Call{Method: "WriteFile", Path: name})
	if err, ok := f.Errors[name]; ok {
		return err
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	f.Files[name] = cp
	return nil
}
