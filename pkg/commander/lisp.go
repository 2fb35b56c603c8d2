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
package commander

import (
	"errors"

	"github.com/steelseries/golisp"
)

// the commander that lisp functions act on, set by ParseEval
var active *Commander

func init() {
	golisp.MakePrimitiveFunction("filename", "0", FilenameImpl)
	golisp.MakePrimitiveFunction("set-filename", "1", SetFilenameImpl)
	golisp.MakePrimitiveFunction("text", "0", TextImpl)
	golisp.MakePrimitiveFunction("set-text", "1", SetTextImpl)
	golisp.MakePrimitiveFunction("save-file", "0", SaveImpl)
	golisp.MakePrimitiveFunction("load-file", "0", LoadImpl)
	golisp.MakePrimitiveFunction("notice", "0", NoticeImpl)
	golisp.MakePrimitiveFunction("quit-editor", "0", QuitImpl)
}

func stringArgument(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", errors.New(name + " requires a string argument")
	}
	return golisp.StringValue(val), nil
}

func FilenameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.StringWithValue(active.control.Filename()), nil
}

func SetFilenameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	name, err := stringArgument("set-filename", args)
	if err != nil {
		return nil, err
	}
	active.control.SetFilename(name)
	return golisp.StringWithValue(name), nil
}

func TextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.StringWithValue(active.editor.Text()), nil
}

func SetTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	text, err := stringArgument("set-text", args)
	if err != nil {
		return nil, err
	}
	active.editor.SetText(text)
	return golisp.StringWithValue(text), nil
}

func SaveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return nil, active.Save()
}

func LoadImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return nil, active.Load()
}

func NoticeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.StringWithValue(active.lastNotice), nil
}

func QuitImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	active.Quit()
	return nil, nil
}

// ParseEval evaluates a sequence of lisp expressions and returns the
// value of the last one.
func (c *Commander) ParseEval(script string) (*golisp.Data, error) {
	active = c
	value, err := golisp.ParseAndEval("(begin " + script + "\n)")
	if err != nil {
		return nil, err
	}
	return value, nil
}

// ParseEvalString evaluates script and returns its value if it is a string.
func (c *Commander) ParseEvalString(script string) (string, bool, error) {
	value, err := c.ParseEval(script)
	if err != nil || value == nil || !golisp.StringP(value) {
		return "", false, err
	}
	return golisp.StringValue(value), true, nil
}
