package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"svw.info/sudokugen/internal/domain"
)

// FS stores one JSON file per puzzle under <dir>/<difficulty>/<id>.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(id)+".json")
}

// Save writes the puzzle, assigning a UUID when it has no ID yet.
func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("invalid puzzle: nil")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		data, err := os.ReadFile(s.pathFor(id, d))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		// Save buckets by difficulty, so the folder is authoritative.
		out.Difficulty = d
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		ents, err := os.ReadDir(filepath.Join(s.dir, d.String()))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, d.String(), e.Name()))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, domain.PuzzleMeta{
				ID:         p.ID,
				Name:       p.Name,
				Difficulty: d,
				CreatedAt:  p.CreatedAt,
			})
		}
	}
	return out, nil
}
