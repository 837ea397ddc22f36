// SPDX-License-Identifier: MIT

// Package palette assigns a deterministic color to every multi-point
// distance class.
//
// Qualifying keys (bucket size ≥ 2) are colored in ascending key order.
// Up to K keys (default 20) draw from a fixed discrete palette of distinct
// hues; beyond K the whole assignment switches to a continuous hue wheel
// sampled at exactly as many equally spaced hues as there are keys.
//
// Singleton classes are never colored; renderers draw them in Neutral.
//
// Known limitation: in continuous mode, adjacent keys receive adjacent hues,
// which may be hard to tell apart for large key counts.
package palette
