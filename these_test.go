// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import (
	"testing"

	"code.hybscloud.com/adt"
)

func TestTheseVariantExclusivity(t *testing.T) {
	l := adt.OnlyLeft[Log, int]("e")
	if !l.IsOnlyLeft() || l.IsOnlyRight() || l.IsBoth() {
		t.Fatalf("OnlyLeft should match exactly one variant")
	}
	r := adt.OnlyRight[Log](42)
	if r.IsOnlyLeft() || !r.IsOnlyRight() || r.IsBoth() {
		t.Fatalf("OnlyRight should match exactly one variant")
	}
	b := adt.Both[Log]("e", 42)
	if b.IsOnlyLeft() || b.IsOnlyRight() || !b.IsBoth() {
		t.Fatalf("Both should match exactly one variant")
	}
}

func TestTheseSidePredicates(t *testing.T) {
	b := adt.Both[Log]("e", 42)
	if !b.HasLeft() || !b.HasRight() {
		t.Fatalf("Both should have both sides")
	}
	if adt.OnlyLeft[Log, int]("e").HasRight() {
		t.Fatalf("OnlyLeft should not have a right side")
	}
	if adt.OnlyRight[Log](1).HasLeft() {
		t.Fatalf("OnlyRight should not have a left side")
	}
}

func TestTheseAccessors(t *testing.T) {
	b := adt.Both[Log]("e", 42)
	if e, ok := b.GetLeft(); !ok || e != "e" {
		t.Fatalf("got (%q, %v), want (e, true)", e, ok)
	}
	if v, ok := b.GetRight(); !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
	if _, ok := adt.OnlyRight[Log](1).GetLeft(); ok {
		t.Fatalf("OnlyRight should have no left payload")
	}
}

func TestMatchThese(t *testing.T) {
	f := func(v adt.These[Log, int]) string {
		return adt.MatchThese(v,
			func(e Log) string { return "left" },
			func(a int) string { return "right" },
			func(e Log, a int) string { return "both" })
	}
	if got := f(adt.OnlyLeft[Log, int]("e")); got != "left" {
		t.Fatalf("got %q, want %q", got, "left")
	}
	if got := f(adt.OnlyRight[Log](1)); got != "right" {
		t.Fatalf("got %q, want %q", got, "right")
	}
	if got := f(adt.Both[Log]("e", 1)); got != "both" {
		t.Fatalf("got %q, want %q", got, "both")
	}
}

func TestMapThese(t *testing.T) {
	got := adt.MapThese(adt.Both[Log]("e", 3), func(x int) int { return x * 2 })
	if v, _ := got.GetRight(); v != 6 {
		t.Fatalf("got %d, want 6", v)
	}
	if e, _ := got.GetLeft(); e != "e" {
		t.Fatalf("map should keep the left payload")
	}
	kept := adt.MapThese(adt.OnlyLeft[Log, int]("e"), func(x int) int { return x * 2 })
	if !kept.IsOnlyLeft() {
		t.Fatalf("map over OnlyLeft should stay OnlyLeft")
	}
}

func TestMapLeftThese(t *testing.T) {
	got := adt.MapLeftThese(adt.Both[Log]("e", 3), func(e Log) string { return string(e) + "!" })
	if e, _ := got.GetLeft(); e != "e!" {
		t.Fatalf("got %q, want %q", e, "e!")
	}
	if v, _ := got.GetRight(); v != 3 {
		t.Fatalf("map left should keep the right payload")
	}
}

func TestFlatMapTheseCombinesLefts(t *testing.T) {
	got := adt.FlatMapThese(adt.Both[Log]("a", 1), func(x int) adt.These[Log, int] {
		return adt.Both[Log]("b", x+1)
	})
	if e, _ := got.GetLeft(); e != "ab" {
		t.Fatalf("left payloads should combine, got %q", e)
	}
	if v, _ := got.GetRight(); v != 2 {
		t.Fatalf("got %d, want 2", v)
	}
}

func TestFlatMapTheseOnlyLeftTerminates(t *testing.T) {
	calls := 0
	got := adt.FlatMapThese(adt.OnlyLeft[Log, int]("e"), func(x int) adt.These[Log, int] {
		calls++
		return adt.OnlyRight[Log](x)
	})
	if !got.IsOnlyLeft() || calls != 0 {
		t.Fatalf("OnlyLeft should terminate the chain without invoking f")
	}
}

func TestFlatMapTheseHaltCarriesCombinedLefts(t *testing.T) {
	got := adt.FlatMapThese(adt.Both[Log]("a", 1), func(x int) adt.These[Log, int] {
		return adt.OnlyLeft[Log, int]("b")
	})
	if e, _ := got.GetLeft(); !got.IsOnlyLeft() || e != "ab" {
		t.Fatalf("halting should carry the combined lefts, got %v", got)
	}
}

func TestZipWithThese(t *testing.T) {
	got := adt.ZipWithThese(adt.Both[Log]("a", 2), adt.Both[Log]("b", 3), func(x, y int) int { return x * y })
	if e, _ := got.GetLeft(); e != "ab" {
		t.Fatalf("lefts should combine per side, got %q", e)
	}
	if v, _ := got.GetRight(); v != 6 {
		t.Fatalf("got %d, want 6", v)
	}
	halted := adt.ZipWithThese(adt.Both[Log]("a", 2), adt.OnlyLeft[Log, int]("b"), func(x, y int) int { return x * y })
	if e, _ := halted.GetLeft(); !halted.IsOnlyLeft() || e != "ab" {
		t.Fatalf("a side without right payload should terminate with combined lefts, got %v", halted)
	}
}

func TestTheseConversions(t *testing.T) {
	if !adt.TheseFromEither(adt.Left[Log, int]("e")).IsOnlyLeft() {
		t.Fatalf("Left should convert to OnlyLeft")
	}
	if !adt.TheseFromEither(adt.Right[Log](1)).IsOnlyRight() {
		t.Fatalf("Right should convert to OnlyRight")
	}
	if !adt.TheseFromValidation(adt.Invalid[Log, int]("e")).IsOnlyLeft() {
		t.Fatalf("Invalid should convert to OnlyLeft")
	}
	if !adt.TheseFromValidation(adt.Valid[Log](1)).IsOnlyRight() {
		t.Fatalf("Valid should convert to OnlyRight")
	}
}

func TestTheseFromAnnotated(t *testing.T) {
	got := adt.TheseFromAnnotated(adt.Logged(42, Log("w")))
	if !got.IsBoth() {
		t.Fatalf("Logged should convert to Both")
	}
	if e, _ := got.GetLeft(); e != "w" {
		t.Fatalf("the log should round-trip exactly, got %q", e)
	}
	if v, _ := got.GetRight(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
	plain := adt.TheseFromAnnotated(adt.Plain[int, Log](7))
	if !plain.IsOnlyRight() {
		t.Fatalf("Plain should convert to OnlyRight")
	}
}

func TestTheseToEitherSuccessBiased(t *testing.T) {
	got := adt.TheseToEither(adt.Both[Log]("e", 42))
	if v, ok := got.GetRight(); !ok || v != 42 {
		t.Fatalf("Both should keep only its right payload, got %v", got)
	}
	if !adt.TheseToEither(adt.OnlyLeft[Log, int]("e")).IsLeft() {
		t.Fatalf("OnlyLeft should convert to Left")
	}
}

func TestEqualThese(t *testing.T) {
	if !adt.EqualThese(adt.Both[Log]("e", Num(1)), adt.Both[Log]("e", Num(1))) {
		t.Fatalf("equal Boths should be equal")
	}
	if adt.EqualThese(adt.Both[Log]("e", Num(1)), adt.OnlyRight[Log](Num(1))) {
		t.Fatalf("different variants should not be equal")
	}
	if adt.EqualThese(adt.Both[Log]("e", Num(1)), adt.Both[Log]("e", Num(2))) {
		t.Fatalf("different right payloads should not be equal")
	}
}

func TestCompareThese(t *testing.T) {
	ol := adt.OnlyLeft[Log, Num]("z")
	or := adt.OnlyRight[Log](Num(-100))
	b := adt.Both[Log]("a", Num(-100))
	if adt.CompareThese(ol, or) >= 0 {
		t.Fatalf("OnlyLeft should order before OnlyRight")
	}
	if adt.CompareThese(or, b) >= 0 {
		t.Fatalf("OnlyRight should order before Both")
	}
	if adt.CompareThese(adt.Both[Log]("a", Num(1)), adt.Both[Log]("a", Num(2))) >= 0 {
		t.Fatalf("right payloads should break ties between Boths")
	}
}

func TestCombineThese(t *testing.T) {
	got := adt.CombineThese(adt.Both[Log]("a", Num(1)), adt.Both[Log]("b", Num(2)))
	if e, _ := got.GetLeft(); e != "ab" {
		t.Fatalf("lefts should combine with lefts, got %q", e)
	}
	if v, _ := got.GetRight(); v != 3 {
		t.Fatalf("rights should combine with rights, got %d", v)
	}
	mixed := adt.CombineThese(adt.OnlyLeft[Log, Num]("a"), adt.OnlyRight[Log](Num(2)))
	if !mixed.IsBoth() {
		t.Fatalf("a side present in only one operand should be kept, got %v", mixed)
	}
}
