package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/trashtocash/admin-api/pkg/model"
)

// Scoring is the optional override for reward weights and field aliases.
//
//	[weights]
//	glass = 2
//	plastic = 3
//	cans = 5
//
//	[aliases]
//	occurred_at = ["scannedAt", "timestamp", "createdAt"]
type Scoring struct {
	Weights model.Weights
	Aliases model.FieldAliases
}

type scoringFile struct {
	Weights *struct {
		Glass   *int64 `toml:"glass"`
		Plastic *int64 `toml:"plastic"`
		Cans    *int64 `toml:"cans"`
	} `toml:"weights"`
	Aliases *struct {
		OccurredAt []string `toml:"occurred_at"`
		EmployeeID []string `toml:"employee_id"`
		UserID     []string `toml:"user_id"`
	} `toml:"aliases"`
}

// DefaultScoring is used when no scoring file is configured.
func DefaultScoring() Scoring {
	return Scoring{Weights: model.DefaultWeights, Aliases: model.DefaultFieldAliases()}
}

// LoadScoring reads path, or returns the defaults when path is empty. Keys
// left out of the file keep their default values.
func LoadScoring(path string) (Scoring, error) {
	if path == "" {
		return DefaultScoring(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scoring{}, fmt.Errorf("read scoring file: %w", err)
	}
	s, err := ParseScoring(data)
	if err != nil {
		return Scoring{}, fmt.Errorf("parse scoring file %s: %w", path, err)
	}
	return s, nil
}

// ParseScoring decodes a TOML scoring document. Unknown keys are rejected.
func ParseScoring(data []byte) (Scoring, error) {
	var f scoringFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Scoring{}, err
	}

	s := DefaultScoring()
	if w := f.Weights; w != nil {
		if w.Glass != nil {
			s.Weights.Glass = *w.Glass
		}
		if w.Plastic != nil {
			s.Weights.Plastic = *w.Plastic
		}
		if w.Cans != nil {
			s.Weights.Cans = *w.Cans
		}
		if s.Weights.Glass < 0 || s.Weights.Plastic < 0 || s.Weights.Cans < 0 {
			return Scoring{}, errors.New("weights must not be negative")
		}
	}
	if a := f.Aliases; a != nil {
		if len(a.OccurredAt) > 0 {
			s.Aliases.OccurredAt = a.OccurredAt
		}
		if len(a.EmployeeID) > 0 {
			s.Aliases.EmployeeID = a.EmployeeID
		}
		if len(a.UserID) > 0 {
			s.Aliases.UserID = a.UserID
		}
	}
	return s, nil
}
