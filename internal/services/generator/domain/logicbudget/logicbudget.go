// Package logicbudget checks that key-item-adding options fit in the
// available key-item spots.
package logicbudget

import (
	"strconv"

	apperrors "github.com/ctjot/seedgen/internal/platform/errors"
	"github.com/ctjot/seedgen/internal/services/generator/domain/settings"
)

// Flags that add a key item to the pool.
var keyItemFlags = []settings.Flag{
	settings.FlagRestoreJohnnyRace,
	settings.FlagRestoreTools,
	settings.FlagEpochFail,
}

// Flags that add a spot able to hold a key item.
var spotFlags = []settings.Flag{
	settings.FlagAddBekklerSpot,
	settings.FlagAddOzzieSpot,
	settings.FlagAddRacelogSpot,
	settings.FlagVanillaRoboRibbon,
	settings.FlagAddCyrusSpot,
}

const rocksanityKeyItems = 5

// Check reports whether the selected flags leave enough spots for the
// key items they add. Chronosanity opens every treasure spot, so it is
// never constrained.
func Check(flags settings.FlagSet, mode settings.GameMode) error {
	if flags.Has(settings.FlagChronosanity) {
		return nil
	}

	var numKIs, numSpots int
	for _, f := range keyItemFlags {
		if flags.Has(f) {
			numKIs++
		}
	}
	for _, f := range spotFlags {
		if flags.Has(f) {
			numSpots++
		}
	}

	if flags.Has(settings.FlagRocksanity) {
		numKIs += rocksanityKeyItems
		// Ice Age and Legacy of Cyrus lack the Black Omen rock spot,
		// as does any seed that removes the Black Omen spot outright.
		omenless := mode == settings.GameModeIceAge ||
			mode == settings.GameModeLegacyOfCyrus ||
			flags.Has(settings.FlagRemoveBlackOmenSpot)
		if omenless {
			numSpots += rocksanityKeyItems - 1
		} else {
			numSpots += rocksanityKeyItems
		}
	}

	switch mode {
	case settings.GameModeLegacyOfCyrus:
		numSpots++
	case settings.GameModeIceAge:
		numSpots += 2
	}

	allowedExtras := 1
	if !flags.Has(settings.FlagVanillaRoboRibbon) {
		allowedExtras++
	}
	if flags.Has(settings.FlagEpochFail) {
		allowedExtras++
	}

	if numKIs > numSpots+allowedExtras {
		return apperrors.WithMetadata(apperrors.CodeLogicBudgetExceeded,
			"selected flags add more key items than there are spots to hold them",
			map[string]string{
				"KeyItems": strconv.Itoa(numKIs),
				"Spots":    strconv.Itoa(numSpots + allowedExtras),
			})
	}
	return nil
}
