// Package router scopes write access to the cluster node that currently accepts
// writes.
//
// Every write operation gets its own bounded pool against the node chosen for
// it. The pool is opened when the operation starts and closed when it returns,
// however it returns, so a failover between two operations never leaves a
// connection pointed at a demoted node. Nothing is cached between calls.
//
// In atomic mode the whole operation runs in a single transaction on that pool.
// Otherwise every statement commits on its own and a failed operation leaves the
// statements that already ran in place.
package router
