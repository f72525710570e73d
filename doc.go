// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package adt provides algebraic sum types with comprehension syntax and
// traversal combinators in Go.
//
// Five container families share one protocol: a computation is written
// once as a [Comp] and interpreted by a family-specific runner that
// decides what a yielded container's failure side means. Optional and
// error-carrying values compose through ordinary Go functions instead of
// nested if/else pyramids.
//
// # Design Philosophy
//
// adt provides:
//   - Value-type sum encodings with comma-ok accessors, no interface boxing
//   - A single CPS comprehension core shared by all five families
//   - Structural dispatch: step operations carry their own evaluator hooks,
//     so runners need no type switches over payload types
//
// # Container Families
//
// [Option] represents presence or absence:
//
//   - [None], [Some]: Constructors (the zero value is None)
//   - [Option.IsSome], [Option.IsNone]: Predicates
//   - [Option.Get], [Option.GetOrElse]: Accessors
//   - [MatchOption], [MapOption], [FlatMapOption], [FilterOption]
//   - [ZipOption], [ZipWithOption], [OrElseOption]
//
// [Either] represents failure (Left) or success (Right):
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight], [Either.GetOrElse]: Accessors
//   - [MatchEither], [MapEither], [FlatMapEither], [MapLeftEither]
//   - [ZipEither], [ZipWithEither], [RecoverEither]
//
// [These] represents failure, success, or both at once:
//
//   - [OnlyLeft], [OnlyRight], [Both]: Constructors
//   - [These.IsOnlyLeft], [These.IsOnlyRight], [These.IsBoth]: Variant predicates
//   - [These.HasLeft], [These.HasRight]: Side predicates
//   - [These.GetLeft], [These.GetRight]: Accessors
//   - [MatchThese], [MapThese], [MapLeftThese], [FlatMapThese], [ZipWithThese]
//
// [Validation] represents accumulated errors or a valid value:
//
//   - [Invalid], [Valid]: Constructors
//   - [Validation.IsValid], [Validation.IsInvalid]: Predicates
//   - [Validation.GetValid], [Validation.GetInvalid]: Accessors
//   - [MatchValidation], [MapValidation], [MapInvalid]
//   - [FlatMapValidation]: Monadic bind (fail-fast, does not accumulate)
//   - [ZipValidation], [ZipWithValidation]: Applicative combination (accumulates
//     errors from both sides via their Semigroup)
//   - [RecoverValidation]
//
// [Annotated] represents a value with an optional accumulated log:
//
//   - [Plain], [Logged]: Constructors
//   - [Annotated.IsPlain], [Annotated.IsLogged]: Predicates
//   - [Annotated.Value], [Annotated.GetLog]: Accessors
//   - [MatchAnnotated], [MapAnnotated], [MapLogAnnotated]
//   - [FlatMapAnnotated], [ZipWithAnnotated]
//
// Conversions move values between families:
//
//   - [EitherFromValidation], [ValidationFromEither]
//   - [TheseFromEither], [TheseFromValidation], [TheseFromAnnotated]
//   - [TheseToEither]
//
// # Capability Contracts
//
// Structural operations are expressed as single-method interfaces over
// the element type, implemented by the pattern type T { Combine(T) T }:
//
//   - [Semigroup]: Associative combination
//   - [Eq]: Equality
//   - [Ord]: Total ordering
//   - [Pair]: Generic two-tuple
//
// Equality, ordering and combination lift pointwise to containers:
// [EqualOption], [CompareEither], [CombineThese], [CompareValidation],
// [CombineAnnotated] and the rest follow one naming scheme per family.
// Ordering places the failure variant first (None < Some, Left < Right,
// OnlyLeft < OnlyRight < Both, Invalid < Valid, Plain < Logged).
//
// # Comprehensions
//
// Minimal monad operations:
//
//   - [Pure]: Lift a pure value into a comprehension
//   - [Bind]: Sequence two comprehensions
//
// Derived operations:
//
//   - [Map]: Apply a function to the result — equivalent to Bind(m, func(a) Pure(f(a)))
//   - [Then]: Sequence, discarding first result — equivalent to Bind(m, func(_) n)
//
// Yield operations suspend on a container and resume with its success
// value, or halt the comprehension per the family's policy:
//
//   - [YieldOption]: Halts on None
//   - [YieldEither]: Halts on Left, recording the error
//   - [YieldValidation]: Halts on Invalid (fail-fast; use [ZipWithValidation]
//     at the value level when accumulation is wanted)
//   - [YieldThese]: Absorbs the left side via its Semigroup, halts only when
//     no right side exists
//   - [YieldAnnotated]: Absorbs the log via its Semigroup, never halts
//
// Runners interpret a comprehension and wrap the outcome back into the
// family's container:
//
//   - [RunOption], [RunEither], [RunValidation], [RunThese], [RunAnnotated]
//   - [RunOptionAsync] … [RunAnnotatedAsync]: Deferred variants returning [Task]
//
// Await operations defer the container production until evaluation time,
// for use inside async runners:
//
//   - [AwaitOption], [AwaitEither], [AwaitValidation], [AwaitThese], [AwaitAnnotated]
//
// Resource cleanup:
//
//   - [Ensuring]: Run cleanup on completion and on halt
//   - [OnHalt]: Run cleanup only on halt
//
// Cleanup runs in the same evaluator as the body, so a halt raised during
// cleanup supersedes the body's halt for Either and Validation, and
// accumulates for These and Annotated.
//
// Nil completion convention: runners and stepping treat a nil [Resumed]
// value as “completed with the zero value”. Computations whose final
// result type is a pointer or interface therefore cannot use nil as a
// meaningful result; wrap such results in a sum type if you need to
// distinguish “completed with nil” from “completed with zero”.
//
// # Stepping Boundary
//
// [Step] provides one-yield-at-a-time evaluation for external runtimes
// that drive computation asynchronously:
//
//   - [Step]: Drive a [Comp] until it completes or suspends
//   - [Suspension]: Pending operation with one-shot resumption handle
//   - [Suspension.Op]: Returns the step operation that caused the suspension
//   - [Suspension.Resume]: Advance to the next suspension or completion (panics on reuse)
//   - [Suspension.TryResume]: Non-panicking variant of Resume
//   - [Suspension.Discard]: Drop without invoking
//
// Returns (value, nil) on completion, or (zero, [*Suspension]) when
// pending. Affine semantics: each [Suspension] may be resumed at most
// once.
//
// # Builders
//
// [Builder] abstracts result collection for traversals:
//
//   - [SliceBuilder], [NewSliceBuilder]: Append to a slice
//   - [IndexedBuilder], [NewIndexedBuilder]: Positional writes for order restoration
//   - [MapBuilder], [NewMapBuilder]: String-keyed records from [Pair] entries
//   - [DiscardBuilder]: Effects only
//
// # Traversal
//
// Each family exposes the same combinator set; Either shown, the other
// families follow the same naming scheme:
//
//   - [ReduceEither]: Indexed fold with effectful steps
//   - [TraverseEither], [TraverseIntoEither]: Effectful map into a slice or builder
//   - [AllEither], [AllIntoEither]: Collect already-built containers
//   - [AllPropsEither]: Collect a string-keyed record (keys visited in sorted order)
//   - [ForEachEither]: Effects only
//   - [Lift2Either], [Lift3Either]: Adapt plain functions to container arguments
//
// Sequential traversal visits elements in input order and stops at the
// first halt; untouched elements are never evaluated.
//
// # Parallel Traversal
//
// Par variants take [Task]-producing callbacks, start one goroutine per
// element, and fold results in completion order:
//
//   - [TraverseEitherPar], [TraverseIntoEitherPar]
//   - [AllEitherPar], [AllIntoEitherPar], [AllPropsEitherPar]
//   - [ForEachEitherPar]
//
// The first terminating result in the completion stream wins; in-flight
// stragglers run to completion in the background and their results are
// discarded. [TraverseEitherPar] and [AllEitherPar] restore input order
// in the final slice, while the Into forms fill the builder in
// completion order. A panicking task is re-panicked in the caller of the
// returned [Task].
//
// [Task] is a deferred computation:
//
//   - [TaskOf], [MapTask], [BindTask]
//
// # Example
//
//	func half(n int) adt.Either[string, int] {
//		if n%2 != 0 {
//			return adt.Left[string, int]("odd: " + strconv.Itoa(n))
//		}
//		return adt.Right[string](n / 2)
//	}
//
//	comp := adt.Bind(adt.YieldEither(half(10)), func(a int) adt.Comp[int] {
//		return adt.Map(adt.YieldEither(half(a)), func(b int) int {
//			return a + b
//		})
//	})
//
//	result := adt.RunEither[string, int](comp)
//	// result == Left("odd: 5"); the second half call halted the comprehension
package adt
