package asm

// Prologue is the fixed built-in macro library prepended to every program.
//
// Macros are tried in definition order, so the more specific headers
// (zeroing before copy, copy before arithmetic) must stay first.
const Prologue = `
@def goto {label}
	$a <- $a + 1
	if $a != 0 goto label
@end

@def if {v} = 0 goto {label}
	if v != 0 goto %E0
	goto label
[%E0]	nop
@end

@def if {v1} < {v2} goto {label}
	$a <- v2 - v1
	if $a != 0 goto label
@end

@def {v} <- 0
[%A0]	v <- v - 1
	if v != 0 goto %A0
@end

@def {v1} <- {v2}
	v1 <- 0
[%A0]	if v2 != 0 goto %B0
	goto %C0
[%B0]	v2 <- v2 - 1
	v1 <- v1 + 1
	$a <- $a + 1
	goto %A0
[%C0]	if $a != 0 goto %D0
	goto %E0
[%D0]	$a <- $a - 1
	v2 <- v2 + 1
	goto %C0
[%E0]	nop
@end

@def {v} <- {a} + {b}
	v <- a
	$t <- b
[%C0]	if $t != 0 goto %B0
	goto %E0
[%B0]	$t <- $t - 1
	v <- v + 1
	goto %C0
[%E0]	nop
@end

@def {v} <- {a} - {b}
	v <- a
	$t <- b
[%C0]	if $t != 0 goto %B0
	goto %E0
[%B0]	$t <- $t - 1
	v <- v - 1
	if v != 0 goto %C0
[%E0]	nop
@end

@def {v} <- {a} * {b}
	v <- 0
	$t <- b
[%B0]	if $t != 0 goto %A0
	goto %E0
[%A0]	$t <- $t - 1
	$u <- a + v
	v <- $u
	goto %B0
[%E0]	nop
@end

@def {v} <- {a} / {b}
	v <- 0
	$t <- a
[%C0]	$u <- b - $t
	if $u != 0 goto %E0
	$w <- $t - b
	$t <- $w
	v <- v + 1
	goto %C0
[%E0]	nop
@end

# Alternate instruction spellings
@def inc {v}
	v <- v + 1
@end

@def dec {v}
	v <- v - 1
@end

@def jnz {v} {label}
	if v != 0 goto label
@end

@def jze {v} {label}
	if v = 0 goto label
@end

@def jlt {v1} {v2} {label}
	if v1 < v2 goto label
@end

@def mov {v1} {v2}
	v1 <- v2
@end
`
