// Package vas implements the Vincent-Akritas-Strzeboński (VAS) continued-fraction
// method isolating the positive real roots of a polynomial.
//
// The search operates on states made of a polynomial and a Möbius transform
// mapping its roots in (0, +Inf) back to the roots of the input polynomial. The
// [Evaluator] performs a single step on a state and the [Isolator] drives a FIFO
// worklist of states until it is empty. The roots of the input polynomial are
// found in the images by the transforms of (0, +Inf) of the states having exactly
// one sign change, and at the images of the origin for the states vanishing at 0.
//
// Negative roots can be isolated by running the search on p(-x) and negating the
// resulting intervals.
package vas
