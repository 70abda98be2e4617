package nursestore

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/nursematch/internal/domain/entities"
)

//go:embed nurses.json
var embeddedNurses []byte

// loadStatic returns the bundled candidate list, preferring the override
// file when configured. A broken override falls back to the embedded seed
// so the process always has a serving source.
func loadStatic(path string) []*entities.Nurse {
	if path != "" {
		nurses, err := readNursesFile(path)
		if err == nil {
			return nurses
		}
		log.Warn().Err(err).Str("path", path).Msg("failed to load nurses file, using embedded seed")
	}

	nurses, err := parseNurses(embeddedNurses)
	if err != nil {
		// The embedded seed is validated by tests; reaching this means a
		// broken build, not a runtime condition.
		log.Error().Err(err).Msg("embedded nurse seed is invalid")
		return []*entities.Nurse{}
	}
	return nurses
}

func readNursesFile(path string) ([]*entities.Nurse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read nurses file: %w", err)
	}
	return parseNurses(data)
}

func parseNurses(data []byte) ([]*entities.Nurse, error) {
	var nurses []*entities.Nurse
	if err := json.Unmarshal(data, &nurses); err != nil {
		return nil, fmt.Errorf("failed to parse nurses payload: %w", err)
	}
	return nurses, nil
}
