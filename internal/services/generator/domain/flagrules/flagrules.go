// Package flagrules propagates forced-flag constraints across the
// settings form.
//
// A rules table relates game modes and gameflags to the flags they
// force on or off. State tracks what the user actually toggled
// separately from the effective set after propagation, so lifting a
// restriction restores the user's last choice instead of inventing one.
package flagrules

import (
	"slices"

	apperrors "github.com/ctjot/seedgen/internal/platform/errors"
	"github.com/ctjot/seedgen/internal/services/generator/domain/settings"
)

// Effects lists the flags a mode or flag forces when active.
type Effects struct {
	ForcesOn  []settings.Flag
	ForcesOff []settings.Flag
}

// Rules is the forced-flag relation, keyed by mode and by flag.
type Rules struct {
	Modes map[settings.GameMode]Effects
	Flags map[settings.Flag]Effects
}

// DefaultRules returns the game-balance constraint table.
func DefaultRules() Rules {
	return Rules{
		Modes: map[settings.GameMode]Effects{
			settings.GameModeLostWorlds: {
				ForcesOff: []settings.Flag{
					settings.FlagZeal,
					settings.FlagEarlyPendant,
					settings.FlagLockedChars,
					settings.FlagUnlockedSkyways,
					settings.FlagEpochFail,
					settings.FlagVanillaDesert,
					settings.FlagSplitArrisDome,
				},
			},
			settings.GameModeLegacyOfCyrus: {
				ForcesOff: []settings.Flag{
					settings.FlagZeal,
					settings.FlagEarlyPendant,
					settings.FlagLockedChars,
					settings.FlagChronosanity,
					settings.FlagRestoreJohnnyRace,
					settings.FlagAddRacelogSpot,
					settings.FlagSplitArrisDome,
				},
			},
			settings.GameModeIceAge: {
				ForcesOff: []settings.Flag{
					settings.FlagZeal,
					settings.FlagEarlyPendant,
					settings.FlagLockedChars,
					settings.FlagChronosanity,
				},
			},
			settings.GameModeVanillaRando: {
				ForcesOff: []settings.Flag{
					settings.FlagBossScaling,
					settings.FlagZeal,
					settings.FlagEarlyPendant,
				},
			},
		},
		Flags: map[settings.Flag]Effects{
			settings.FlagChronosanity: {
				ForcesOff: []settings.Flag{settings.FlagBossScaling},
			},
			settings.FlagDuplicateDuals: {
				ForcesOn: []settings.Flag{settings.FlagDuplicateCharacters},
			},
			settings.FlagDuplicateCharacters: {
				ForcesOn: []settings.Flag{settings.FlagCharRando},
			},
		},
	}
}

// State is the settled constraint state for a form.
type State struct {
	Mode settings.GameMode
	// User holds the flags the user explicitly toggled on. It survives
	// restrictions so a lifted restriction restores the last choice.
	User settings.FlagSet
	// Effective is User plus forced-on minus forced-off flags.
	Effective settings.FlagSet
	// ForcedOn and ForcedOff record the active restrictions.
	ForcedOn  settings.FlagSet
	ForcedOff settings.FlagSet
}

// Delta reports what a transition changed, for the caller to apply to
// its widgets exactly once.
type Delta struct {
	ForcedOn  []settings.Flag
	ForcedOff []settings.Flag
	// Released flags had a restriction lifted by the transition.
	Released []settings.Flag
}

// Graph evaluates the forced-flag relation.
type Graph struct {
	rules Rules
}

// NewGraph builds a graph over the given rules.
func NewGraph(rules Rules) *Graph {
	return &Graph{rules: rules}
}

// Settle computes the resting state for a mode and user flag set by
// iterating the forcing relation to a fixpoint. Forced-off wins over
// forced-on for the same flag. Settle is idempotent: settling a settled
// state changes nothing.
//
// The iteration count is bounded so a contradictory rules table, where
// the effective set oscillates instead of converging, returns the last
// computed state instead of spinning.
func (g *Graph) Settle(mode settings.GameMode, user settings.FlagSet) State {
	st := State{
		Mode:      mode,
		User:      user.Clone(),
		Effective: user.Clone(),
	}

	for range len(settings.GameFlags) + 1 {
		forcedOn := settings.NewFlagSet()
		forcedOff := settings.NewFlagSet()
		collect := func(e Effects) {
			for _, f := range e.ForcesOn {
				forcedOn.Add(f)
			}
			for _, f := range e.ForcesOff {
				forcedOff.Add(f)
			}
		}
		collect(g.rules.Modes[st.Mode])
		for f := range st.Effective {
			collect(g.rules.Flags[f])
		}

		next := st.User.Clone()
		for f := range forcedOn {
			next.Add(f)
		}
		for f := range forcedOff {
			next.Remove(f)
		}

		st.ForcedOn = forcedOn
		st.ForcedOff = forcedOff
		if next.Equal(st.Effective) {
			return st
		}
		st.Effective = next
	}
	return st
}

// ApplyMode switches the active mode and resettles.
func (g *Graph) ApplyMode(st State, mode settings.GameMode) (State, Delta) {
	next := g.Settle(mode, st.User)
	return next, diff(st, next)
}

// ApplyFlagToggle records a user toggle and resettles. Toggling a flag
// that is currently restricted is rejected.
func (g *Graph) ApplyFlagToggle(st State, flag settings.Flag, on bool) (State, Delta, error) {
	if st.ForcedOff.Has(flag) || st.ForcedOn.Has(flag) {
		return st, Delta{}, apperrors.WithMetadata(apperrors.CodeFlagRestricted,
			"flag "+string(flag)+" is restricted by the current mode or another flag",
			map[string]string{"Flag": string(flag)})
	}
	user := st.User.Clone()
	if on {
		user.Add(flag)
	} else {
		user.Remove(flag)
	}
	next := g.Settle(st.Mode, user)
	return next, diff(st, next), nil
}

func diff(prev, next State) Delta {
	var d Delta
	for f := range next.ForcedOn {
		if !prev.ForcedOn.Has(f) {
			d.ForcedOn = append(d.ForcedOn, f)
		}
	}
	for f := range next.ForcedOff {
		if !prev.ForcedOff.Has(f) {
			d.ForcedOff = append(d.ForcedOff, f)
		}
	}
	for f := range prev.ForcedOn {
		if !next.ForcedOn.Has(f) && !next.ForcedOff.Has(f) {
			d.Released = append(d.Released, f)
		}
	}
	for f := range prev.ForcedOff {
		if !next.ForcedOff.Has(f) && !next.ForcedOn.Has(f) {
			d.Released = append(d.Released, f)
		}
	}
	slices.Sort(d.ForcedOn)
	slices.Sort(d.ForcedOff)
	slices.Sort(d.Released)
	return d
}
