// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package coin is the randomness source behind every flip.

# Sources

A Source returns one of two outcomes, Heads or Tails:

	src := coin.NewCrypto()
	o := src.Draw()

Three implementations are provided:

  - NewCrypto: crypto/rand, used by the server
  - NewSeeded: math/rand/v2 PCG, reproducible for a given seed
  - NewSequence: replays a fixed script, used by tests

All sources are safe for concurrent use by multiple requests.
*/
package coin
