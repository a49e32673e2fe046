package hero

import (
	"context"
	"fmt"
	"os"

	sigsyaml "sigs.k8s.io/yaml"
)

// SeedHero is one hero creation payload in a seed file. Seed files are YAML
// documents holding a list of these.
type SeedHero struct {
	Name       string `json:"name"`
	SecretName string `json:"secret_name"`
	Age        *int   `json:"age,omitempty"`
	TeamID     *int64 `json:"team_id,omitempty"`
	Password   string `json:"password"`
}

// LoadSeedFile parses a YAML seed file into hero creation payloads.
func LoadSeedFile(path string) ([]SeedHero, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var seeds []SeedHero
	if err := sigsyaml.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	for i, s := range seeds {
		if s.Name == "" || s.SecretName == "" || s.Password == "" {
			return nil, fmt.Errorf("seed entry %d: name, secret_name and password are required", i)
		}
	}

	return seeds, nil
}

// Seed hashes each payload's password and inserts the heroes one record at
// a time, each insert in its own transaction. A failure stops the run and
// leaves earlier inserts committed.
func Seed(ctx context.Context, repo Repository, hasher *Hasher, seeds []SeedHero) error {
	for _, s := range seeds {
		hash, err := hasher.Hash(s.Password)
		if err != nil {
			return fmt.Errorf("hashing seed password for %q: %w", s.Name, err)
		}

		h := &Hero{
			Name:           s.Name,
			SecretName:     s.SecretName,
			Age:            s.Age,
			TeamID:         s.TeamID,
			HashedPassword: hash,
		}
		if err := repo.Create(ctx, h); err != nil {
			return fmt.Errorf("seeding hero %q: %w", s.Name, err)
		}
	}

	return nil
}
