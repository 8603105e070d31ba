// Package combo provides the combo script format and the step sequencer.
//
// A combo script is an ordered list of authored combat inputs. The text
// format is line oriented:
//
//	KEY,CHARACTER,SKILL_TYPE,MEMO|
//
// KEY is 1-9 for a numbered skill slot, E for the chain attack or L for
// the heavy attack; a U prefix marks the step as a hold. A # in the key
// field marks a title line, and "!!!!!" is the end-of-file marker.
//
// The Sequencer walks the non-title steps, wrapping forward and flooring
// at zero backward, and publishes the expected action for the current
// step into the discrimination engine after every index change.
package combo
