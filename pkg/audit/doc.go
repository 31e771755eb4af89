// Package audit provides audit logging for keyturn operations.
//
// Security-relevant operations on the key lifecycle (issue, redeem,
// revoke, listing, administrative authorization) are recorded as typed
// events and rendered as RFC5424 syslog lines on stdout. If AUDIT_DATABASE_URL is
// set, events are additionally persisted to a Postgres table.
//
// # Usage
//
//	audit.Log(audit.IssueEvent{KeyID: id, Comment: comment})
//
// Events never carry passwords; the credential pair stored by the user
// registry is reduced to its login before any event is built.
package audit
