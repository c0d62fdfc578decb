// Package runtime provides the execution context for detour commands.
//
// It bundles the collaborators every workflow needs (git adapter, output,
// prompts, spinner, config and clock) so they can be replaced in tests.
package runtime
