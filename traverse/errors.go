package traverse

import "errors"

// ErrSeedNotCore is returned when CoreComponent or SplitFrontiers is given
// a seed id that IsCore reports false for; every seed must already be
// known core, since only cores propagate a traversal frontier.
var ErrSeedNotCore = errors.New("traverse: seed is not a core point")
