// Package s1 provides types for angles on the unit circle.
//
// Angle is a plain radian measure. ChordAngle measures an angle by the
// squared length of the chord it subtends on the unit sphere, which lets
// distance predicates compare angles using only +, -, * and comparisons,
// with no inverse trigonometry, so comparisons against a ChordAngle can be
// made exact.
package s1
