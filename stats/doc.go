// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package stats assembles the /stats report from the flip history:
// the total number of flips, the per-result breakdown and the most recent
// flips, newest first.
package stats
