// Package model defines the reasoning-service boundary: a normalized
// Request/Response pair plus the Model interface the engine drives once per
// turn. Provider adapters live in the subpackages (anthropic, openai) and
// translate the normalized shapes into their SDK's wire format.
//
// The boundary is deliberately synchronous: Complete is called once per
// turn and blocks until the provider answers. The engine never inspects
// provider specifics, only StopReason and the ordered content parts.
package model
