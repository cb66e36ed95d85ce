// Package editor implements the batch material tools: the Ripper, which
// clones every primary material under a set of roots into standalone
// assets, and the Replacer, which swaps materials across a hierarchy using
// a positional find/replace mapping.
//
// Both tools mutate scene state synchronously and record undo, dirty and
// prefab-override state according to the ownership of the root they were
// given (see OwnershipPolicy). Neither tool is safe for concurrent use.
package editor
