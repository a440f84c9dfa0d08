// Package shell generates the small scripts that let the calling shell
// change directory: the per-invocation cd script that the shell driver
// sources, and the driver function snippets installed into rc files.
package shell
