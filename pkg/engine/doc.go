// Package engine implements the key lifecycle: issue, list, revoke,
// redeem.
//
// An Engine owns the two registries (unredeemed keys, redeemed users)
// and enforces the lifecycle invariants: an identifier lives in at most
// one registry, a redemption is all-or-nothing from the caller's
// perspective, and every mutation schedules an asynchronous durable
// flush. The external account-provisioning step is injected as a
// provision.Provisioner so tests can stub it.
//
// Every operation requires the statically configured administrative
// token; the comparison is constant-time.
package engine
