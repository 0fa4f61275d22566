// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package flip implements single and multi-coin flips.

# Stateless and Persisted

A Service without a Recorder only draws outcomes. With a Recorder (normally
*db.Store) every outcome is stored before the call returns:

	svc := flip.NewService(coin.NewCrypto(), db.NewStore(conn))
	one, err := svc.FlipOnce(ctx, flip.Meta{UserIP: ip})
	many, err := svc.FlipMany(ctx, 10, flip.Meta{UserIP: ip})

# Limits

FlipMany accepts 1..MaxCount flips. Out of range counts fail with
ErrCountNotPositive or ErrCountTooLarge, both wrapping ErrInvalidArgument,
and nothing is drawn or stored.

# Sessions

Each request gets a fresh session id (UUID v4). All flips of one FlipMany
call share it and are inserted in one transaction, so a failed batch leaves
no rows behind.

# Errors

Storage failures wrap ErrPersistence:

	if errors.Is(err, flip.ErrPersistence) { ... }
*/
package flip
