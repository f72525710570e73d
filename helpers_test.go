// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import "code.hybscloud.com/adt"

// Log is a concatenating string semigroup used as the left/log channel
// in tests.
type Log string

func (l Log) Combine(o Log) Log { return l + o }
func (l Log) Equal(o Log) bool  { return l == o }
func (l Log) Compare(o Log) int {
	switch {
	case l < o:
		return -1
	case l > o:
		return 1
	default:
		return 0
	}
}

// Num is an additive int semigroup used as the value channel in tests.
type Num int

func (n Num) Combine(o Num) Num { return n + o }
func (n Num) Equal(o Num) bool  { return n == o }
func (n Num) Compare(o Num) int {
	switch {
	case n < o:
		return -1
	case n > o:
		return 1
	default:
		return 0
	}
}

var _ adt.Semigroup[Log] = Log("")
var _ adt.Eq[Num] = Num(0)
var _ adt.Ord[Num] = Num(0)
