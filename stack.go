/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apierrors

import "runtime"

// maxDepth bounds the number of frames captured per error.
const maxDepth = 32

// Frame is a single resolved call site.
type Frame struct {
	Function string
	File     string
	Line     int
}

// stack is the raw program counters captured at construction. Resolution
// to Frames is deferred until someone asks for them.
type stack []uintptr

// callers captures the stack of whoever called the exported constructor.
// Skipped: runtime.Callers, callers, newBase, the constructor.
func callers() stack {
	var pcs [maxDepth]uintptr
	n := runtime.Callers(4, pcs[:])
	if n == 0 {
		return nil
	}
	st := make(stack, n)
	copy(st, pcs[:n])
	return st
}

func (s stack) frames() []Frame {
	if len(s) == 0 {
		return nil
	}
	out := make([]Frame, 0, len(s))
	it := runtime.CallersFrames(s)
	for {
		f, more := it.Next()
		out = append(out, Frame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			break
		}
	}
	return out
}
