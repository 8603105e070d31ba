// Package key defines the physical key and abstract action types for the
// input system.
//
// A Key identifies a physical key or button as delivered by a key source
// (global hook or a scripted source in tests). An Action is the abstract
// combat input a combo step asks for: a numbered operator skill, the chain
// attack, or the heavy attack. The mapping between the two is a pure, total
// function; keys with no action are invisible to combo discrimination.
package key
