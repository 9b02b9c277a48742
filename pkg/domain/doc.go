/*
Package domain contains the core models of cmdform.

It describes a static command tree and the per-request values derived from it.
The package is pure: no I/O, no HTTP, no rendering.

# Key Entities

  - Command: a named command with help text, parameters and sub-commands.
  - Param: a declared option or argument of a command.
  - Scope: the resolution context of one command, chained to its parent.
  - PathChain: the (Scope, Command) pairs of a resolved path, root first.
  - Form: the per-level structure handed to renderers (help HTML and fields).
*/
package domain
