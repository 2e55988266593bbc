// Package kernel contains shared value objects used across the domain model.
// It currently provides kind-prefixed entity identifiers, ensuring every
// aggregate carries a validated, collision-free ID that still reads like the
// legacy short tags (ORD..., V..., D..., B..., U...).
package kernel
