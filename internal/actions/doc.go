// Package actions provides the workflows behind each CLI command.
//
// Each action corresponds to a detour command (status, save, sync, etc.)
// and composes calls on the git adapter with prompts and formatted output.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Git, Splog, Prompter and Spinner
//   - Actions are stateless - every run re-queries the live repository
//   - Actions start with Git.EnsureRepo and never exit the process; failures
//     are returned as errors and mapped to exit codes by main
package actions
