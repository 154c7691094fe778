// Package graft transplants the members of a donor class into a recipient
// class.
//
// A transplant runs in stages, mutating the recipient in place:
//
//  1. The donor must extend java/lang/Object directly.
//  2. Donor interfaces are added unless the recipient already implements
//     any of them, in which case none are added and a warning is recorded.
//  3. Donor fields without the Mock marker are checked (no default value
//     assigned in <init> or <clinit>, no field of the same name on the
//     recipient) and then appended, remapped.
//  4. Donor methods without the Mock marker, other than initializers, are
//     remapped and added. A method colliding with a recipient method must
//     carry the Fuse marker and replaces it; see below.
//  5. The result is checked by the structural verifier.
//
// Fields and methods stop at the first fatal error.
//
// # Fusion
//
// A Fuse method may call the method it replaces by invoking itself:
//
//	@Graft.Fuse
//	public int inc() {
//	    return inc() + 1; // reaches the recipient's inc()
//	}
//
// The replaced method is renamed to inc$original and the self call is
// redirected to it. If the Fuse method never calls itself, the replaced
// method is removed.
//
// # Markers
//
// Markers are read through a MarkerSource. The default implementation looks
// for the annotations graftt/Graft$Recipient, graftt/Graft$Mock and
// graftt/Graft$Fuse.
package graft
