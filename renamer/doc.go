// Package renamer walks filesystem trees and renames every entry whose name
// is not in Unicode Normalization Form C to its composed equivalent.
//
// The walk is a structured fan-out: every directory task lists its children
// and starts one task per child, then waits for all of them. A shared
// [Limiter] bounds how many tasks may hold a permit at once. A permit covers
// the work on a single entry (normalization decision, rename and, for a
// directory, its listing) and is released before the task waits on its
// children, so the walk makes progress for any capacity of at least one.
//
// A directory is renamed before it is listed. Children therefore see the
// directory's new name, and every task rebuilds its paths at the moment it
// runs by composing the in-walk directory segment again (see [Entry.Resolve]).
//
// Renames never replace an existing destination. Two siblings that compose to
// the same name produce one success and one reported failure.
//
// Following directory symlinks (Options.FollowSymlinks) may recurse forever
// on cyclic links. No cycle detection is done; callers enabling it accept
// that risk.
package renamer
