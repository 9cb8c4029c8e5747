/*
Package realroots is a pure Go library isolating the real roots of univariate polynomials
with the Vincent-Akritas-Strzeboński continued-fraction method.

It provides an immutable dense polynomial algebra (package polynomial), Möbius transform
bookkeeping (package mobius), lower-bound estimators on positive roots (package bound)
and the isolation engine itself (package vas), which returns real intervals (package interval)
each containing a single root.
*/
package realroots
