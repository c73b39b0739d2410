// Package charassign validates character-rando assignment matrices.
//
// An assignment matrix maps the seven character identities (who a recruit
// counts as for logic purposes) to the seven character models (who actually
// shows up). Coverage rules guarantee every identity can be filled and,
// unless duplicate characters are allowed, every model can appear.
package charassign

import (
	"fmt"
	"strings"

	apperrors "github.com/ctjot/seedgen/internal/platform/errors"
)

const (
	// NumIdentities is the number of character identities.
	NumIdentities = 7
	// NumModels is the number of character models.
	NumModels = 7
)

// Names lists the characters in identity/model index order.
var Names = [NumIdentities]string{"Crono", "Marle", "Lucca", "Robo", "Frog", "Ayla", "Magus"}

// Matrix is the identity-to-model assignment matrix.
// Matrix[i][m] reports whether identity i may be assigned model m.
type Matrix [NumIdentities][NumModels]bool

// Full returns a matrix with every model allowed for every identity.
func Full() Matrix {
	var m Matrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = true
		}
	}
	return m
}

// FromChoices builds a matrix from per-identity lists of allowed model indices.
func FromChoices(choices [][]int) (Matrix, error) {
	if len(choices) != NumIdentities {
		return Matrix{}, apperrors.New(apperrors.CodeCharAssignBadChoices,
			fmt.Sprintf("expected %d identity entries, got %d", NumIdentities, len(choices)))
	}
	var m Matrix
	for i, models := range choices {
		for _, model := range models {
			if model < 0 || model >= NumModels {
				return Matrix{}, apperrors.New(apperrors.CodeCharAssignBadChoices,
					fmt.Sprintf("model index %d out of range for identity %s", model, Names[i]))
			}
			m[i][model] = true
		}
	}
	return m, nil
}

// Choices returns the per-identity lists of allowed model indices.
func (m Matrix) Choices() [][]int {
	out := make([][]int, NumIdentities)
	for i := range m {
		models := []int{}
		for j, allowed := range m[i] {
			if allowed {
				models = append(models, j)
			}
		}
		out[i] = models
	}
	return out
}

// Validate checks the coverage invariants.
//
// Every identity must have at least one model allowed. Unless duplicates are
// allowed, every model must be allowed for at least one identity (otherwise
// some recruit spot could not be filled without repeating a model).
// Validate does not mutate the matrix.
func (m Matrix) Validate(duplicatesAllowed bool) error {
	var emptyRows []string
	for i := range m {
		if !anySet(m[i]) {
			emptyRows = append(emptyRows, Names[i])
		}
	}
	if len(emptyRows) > 0 {
		joined := strings.Join(emptyRows, ", ")
		return apperrors.WithMetadata(apperrors.CodeCharAssignIdentityUnassigned,
			fmt.Sprintf("no models selected for identities: %s", joined),
			map[string]string{"Identities": joined})
	}

	if duplicatesAllowed {
		return nil
	}

	var emptyCols []string
	for j := 0; j < NumModels; j++ {
		used := false
		for i := 0; i < NumIdentities; i++ {
			if m[i][j] {
				used = true
				break
			}
		}
		if !used {
			emptyCols = append(emptyCols, Names[j])
		}
	}
	if len(emptyCols) > 0 {
		joined := strings.Join(emptyCols, ", ")
		return apperrors.WithMetadata(apperrors.CodeCharAssignModelUnused,
			fmt.Sprintf("no identities assigned to models: %s", joined),
			map[string]string{"Models": joined})
	}
	return nil
}

// PackHex encodes the matrix as 7 concatenated 2-hex-digit bitmasks,
// one per identity, where bit i set means model i is allowed.
func (m Matrix) PackHex() string {
	var b strings.Builder
	for i := range m {
		var mask int
		for j, allowed := range m[i] {
			if allowed {
				mask |= 1 << j
			}
		}
		fmt.Fprintf(&b, "%02x", mask)
	}
	return b.String()
}

// UnpackHex reverses PackHex.
func UnpackHex(s string) (Matrix, error) {
	if len(s) != NumIdentities*2 {
		return Matrix{}, apperrors.New(apperrors.CodeCharAssignBadHexPack,
			fmt.Sprintf("expected %d hex characters, got %d", NumIdentities*2, len(s)))
	}
	var m Matrix
	for i := 0; i < NumIdentities; i++ {
		var mask int
		if _, err := fmt.Sscanf(s[i*2:i*2+2], "%02x", &mask); err != nil {
			return Matrix{}, apperrors.Wrap(apperrors.CodeCharAssignBadHexPack,
				fmt.Sprintf("bad hex pair for identity %s", Names[i]), err)
		}
		if mask >= 1<<NumModels {
			return Matrix{}, apperrors.New(apperrors.CodeCharAssignBadHexPack,
				fmt.Sprintf("bitmask %#02x has bits beyond model range", mask))
		}
		for j := 0; j < NumModels; j++ {
			m[i][j] = mask&(1<<j) != 0
		}
	}
	return m, nil
}

func anySet(row [NumModels]bool) bool {
	for _, v := range row {
		if v {
			return true
		}
	}
	return false
}
