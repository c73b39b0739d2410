package settings

import "github.com/ctjot/seedgen/internal/services/generator/domain/charassign"

// Defaults returns the settings tree the form starts from. Glitch fixes
// and fast tabs are on by default; everything else matches a fresh form.
func Defaults() Settings {
	return Settings{
		General: GeneralSettings{
			Mode:            GameModeStandard,
			EnemyDifficulty: DifficultyNormal,
			ItemDifficulty:  DifficultyNormal,
			TechOrder:       TechOrderFullRandom,
			ShopPrices:      ShopPricesNormal,
		},
		Flags: NewFlagSet(FlagDisableGlitches, FlagFastTabs),
		Tabs: TabSettings{
			PowerMin: 2, PowerMax: 4,
			MagicMin: 1, MagicMax: 3,
			SpeedMin: 1, SpeedMax: 1,
		},
		Chars: CharSettings{Choices: charassign.Full()},
		RO:    ROSettings{Flags: NewFlagSet()},
		Mystery: MysterySettings{
			GameModeFreqs: map[GameMode]int{
				GameModeStandard:      75,
				GameModeLostWorlds:    25,
				GameModeLegacyOfCyrus: 0,
				GameModeIceAge:        0,
				GameModeVanillaRando:  0,
			},
			ItemDifficultyFreqs: map[Difficulty]int{
				DifficultyEasy:   15,
				DifficultyNormal: 70,
				DifficultyHard:   15,
			},
			EnemyDifficultyFreqs: map[Difficulty]int{
				DifficultyNormal: 75,
				DifficultyHard:   25,
			},
			TechOrderFreqs: map[TechOrder]int{
				TechOrderNormal:         10,
				TechOrderFullRandom:     80,
				TechOrderBalancedRandom: 10,
			},
			ShopPriceFreqs: map[ShopPrices]int{
				ShopPricesNormal:       70,
				ShopPricesRandom:       10,
				ShopPricesMostlyRandom: 10,
				ShopPricesFree:         10,
			},
			FlagProb: map[Flag]float64{
				FlagTabTreasures:        0.10,
				FlagUnlockedMagic:       0.50,
				FlagBucketList:          0.15,
				FlagChronosanity:        0.30,
				FlagBossRando:           0.50,
				FlagBossScaling:         0.30,
				FlagLockedChars:         0.25,
				FlagCharRando:           0.50,
				FlagDuplicateCharacters: 0.25,
				FlagEpochFail:           0.50,
				FlagGearRando:           0.25,
				FlagHealingItemRando:    0.25,
			},
		},
		Bucket: BucketSettings{
			NumObjectives:       5,
			NumObjectivesNeeded: 4,
		},
	}
}
