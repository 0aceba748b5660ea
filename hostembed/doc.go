// Package hostembed is the host-engine collaborator described in the
// core's external interfaces: it accepts a sparse map of pre-collapsed
// positions supplied by a host tile-map engine, optionally bridges
// disconnected seed regions so they sit reachable from one another,
// runs a resolver, and hands back an ordered sequence of placement
// events the host can replay onto its own tile-map representation.
package hostembed
