package backend

import "golang.org/x/sys/cpu"

// hasVectorSearch reports whether coregex can use its AVX2 memchr and
// SSSE3 Teddy prefilters on this machine.
var hasVectorSearch = cpu.X86.HasAVX2 && cpu.X86.HasSSSE3

// Auto returns Coregex when the CPU supports the vector instructions that
// coregex's prefilters are built on, and Stdlib otherwise.
//
// The choice is made per process and never changes after start-up.
func Auto() Compiler {
	if hasVectorSearch {
		return Coregex
	}
	return Stdlib
}
