/*
Package cmdkit is a toolkit for command line applications with nested commands and typed arguments.

  - Package args declares argument formats, and binds raw tokens to typed values.
  - Package cli builds command trees on top of args, and selects the command that should handle a given invocation.
  - Package suggest finds similar names for "did you mean" hints.
  - Package syncx has the concurrency helpers the other packages share.

Most applications only need package cli, which re-uses the args types for declaring arguments and options.
*/
package cmdkit
