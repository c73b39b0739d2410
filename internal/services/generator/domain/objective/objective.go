// Package objective parses the bucket-list objective mini-language.
//
// An objective entry is a comma-separated list of weighted clauses like
// "65:quest_gated, 30:boss_nogo, 15:recruit_gated". Each clause names
// an objective type and an argument from that type's closed vocabulary.
// Entries may also match a display-name alias, which bypasses the
// grammar entirely.
package objective

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/ctjot/seedgen/internal/platform/errors"
)

// Parse validates an objective entry and returns its canonical form:
// the alias target for alias matches, otherwise the entry itself with
// whitespace stripped and lowercased. The grammar is validated but the
// canonical form is the normalized input, not a re-serialization.
func Parse(text string) (string, error) {
	if alias, ok := aliases[strings.ToLower(strings.TrimSpace(text))]; ok {
		return alias, nil
	}

	normalized := strings.ToLower(stripWhitespace(text))
	if normalized == "" {
		return "", apperrors.New(apperrors.CodeObjectiveEmpty, "objective entry is empty")
	}

	for _, clause := range strings.Split(normalized, ",") {
		if err := parseClause(clause); err != nil {
			return "", err
		}
	}
	return normalized, nil
}

// EntryError pairs a failing entry's index with its error.
type EntryError struct {
	Index int
	Err   error
}

// ValidateEntries checks every entry and accumulates all failures
// instead of stopping at the first, so the form can mark every bad
// entry at once.
func ValidateEntries(entries []string) []EntryError {
	var errs []EntryError
	for i, entry := range entries {
		if _, err := Parse(entry); err != nil {
			errs = append(errs, EntryError{Index: i, Err: err})
		}
	}
	return errs
}

func parseClause(clause string) error {
	body := clause
	if weight, rest, found := strings.Cut(clause, ":"); found {
		n, err := strconv.Atoi(weight)
		if err != nil || n < 0 {
			return apperrors.WithMetadata(apperrors.CodeObjectiveInvalidWeight,
				fmt.Sprintf("invalid weight %q: weights must be non-negative integers", weight),
				map[string]string{"Weight": weight})
		}
		body = rest
	}

	parts := strings.Split(body, "_")
	switch parts[0] {
	case "quest":
		return parseLookup(parts, "quest", questTags)
	case "boss":
		return parseLookup(parts, "boss", bossNames)
	case "recruit":
		return parseLookup(parts, "recruit", recruitSlots)
	case "collect":
		return parseCollect(parts)
	default:
		return apperrors.WithMetadata(apperrors.CodeObjectiveInvalidType,
			fmt.Sprintf("invalid objective type %q", parts[0]),
			map[string]string{"Type": parts[0]})
	}
}

func parseLookup(parts []string, kind string, vocab map[string]struct{}) error {
	if len(parts) != 2 {
		return apperrors.WithMetadata(apperrors.CodeObjectiveWrongArity,
			fmt.Sprintf("%s objectives take exactly one argument", kind),
			map[string]string{"Objective": strings.Join(parts, "_")})
	}
	if _, ok := vocab[parts[1]]; !ok {
		return apperrors.WithMetadata(apperrors.CodeObjectiveUnresolved,
			fmt.Sprintf("could not resolve %s %s", kind, parts[1]),
			map[string]string{"Kind": kind, "Value": parts[1]})
	}
	return nil
}

// parseCollect handles "collect_<count>_rocks" and
// "collect_<needed>_fragments_<extra>".
func parseCollect(parts []string) error {
	if len(parts) < 3 {
		return apperrors.WithMetadata(apperrors.CodeObjectiveWrongArity,
			"collect objectives take a count and a collect type",
			map[string]string{"Objective": strings.Join(parts, "_")})
	}

	switch parts[2] {
	case "rocks":
		if len(parts) != 3 {
			return apperrors.WithMetadata(apperrors.CodeObjectiveWrongArity,
				"rock objectives look like collect_<count>_rocks",
				map[string]string{"Objective": strings.Join(parts, "_")})
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n <= 0 {
			return apperrors.WithMetadata(apperrors.CodeObjectiveInvalidCount,
				fmt.Sprintf("rock count %q must be a positive integer", parts[1]),
				map[string]string{"Kind": "rock", "Value": parts[1]})
		}
		return nil
	case "fragments":
		if len(parts) != 4 {
			return apperrors.WithMetadata(apperrors.CodeObjectiveWrongArity,
				"fragment objectives look like collect_<needed>_fragments_<extra>",
				map[string]string{"Objective": strings.Join(parts, "_")})
		}
		for _, arg := range []string{parts[1], parts[3]} {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return apperrors.WithMetadata(apperrors.CodeObjectiveInvalidCount,
					fmt.Sprintf("fragment count %q must be a non-negative integer", arg),
					map[string]string{"Kind": "fragment", "Value": arg})
			}
		}
		return nil
	default:
		return apperrors.WithMetadata(apperrors.CodeObjectiveUnresolved,
			fmt.Sprintf("could not resolve collect type %s", parts[2]),
			map[string]string{"Kind": "collect type", "Value": parts[2]})
	}
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
