// Package plan loads graft plans and applies them.
//
// A plan lists the donors to transplant, optionally the recipient of each,
// and auxiliary type substitutions:
//
//	version: "1"
//	remap:
//	  com/acme/HelperDep: com/acme/TargetDep
//	transplants:
//	  - donor: com/acme/FooTransplant
//	    recipient: com/acme/Foo
//	  - donor: com/acme/BarTransplant   # recipient from the Recipient marker
//	    remap:
//	      com/acme/BarDep: com/acme/FooDep
//
// Transplants run in order. Donors targeting the same recipient are applied
// to the same definition, so later donors see the members earlier ones added.
package plan
