package characters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/sparta-village/internal/domain/character"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
)

const saveExt = ".sav"

// FileRepoConfig holds configuration for the file repository
type FileRepoConfig struct {
	// Dir holds one <slot>.sav file per save slot
	Dir string
}

// fileRepo stores each slot as a save record on disk. Writes go straight to
// the target file; a crash mid-write can leave a truncated record, which
// then loads as CorruptSave.
type fileRepo struct {
	dir string
}

// NewFileRepository creates a new file-backed repository
func NewFileRepository(cfg *FileRepoConfig) Repository {
	if cfg == nil {
		panic("FileRepoConfig cannot be nil")
	}
	if cfg.Dir == "" {
		panic("save directory cannot be empty")
	}

	return &fileRepo{
		dir: filepath.Clean(cfg.Dir),
	}
}

func (r *fileRepo) path(slot string) string {
	return filepath.Join(r.dir, slot+saveExt)
}

// Load reads and decodes the slot's file
func (r *fileRepo) Load(ctx context.Context, slot string) (*character.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFoundf("save slot '%s' not found", slot).
				WithMeta("slot", slot)
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	return Decode(data)
}

// Save encodes and writes the slot's file
func (r *fileRepo) Save(ctx context.Context, slot string, char *character.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	data, err := Encode(char)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	if err := os.WriteFile(r.path(slot), data, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}

	return nil
}

// Delete removes the slot's file
func (r *fileRepo) Delete(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	if err := os.Remove(r.path(slot)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete save file: %w", err)
	}

	return nil
}

// List summarizes every *.sav file in the directory
func (r *fileRepo) List(ctx context.Context) ([]*SaveSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*SaveSummary{}, nil
		}
		return nil, fmt.Errorf("failed to read save directory: %w", err)
	}

	summaries := make([]*SaveSummary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), saveExt) {
			continue
		}

		slot := strings.TrimSuffix(entry.Name(), saveExt)
		if ValidateSlot(slot) != nil {
			continue
		}

		char, loadErr := r.Load(ctx, slot)
		summary := summarize(slot, char, loadErr)
		if info, err := entry.Info(); err == nil {
			summary.UpdatedAt = info.ModTime().UTC()
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Slot < summaries[j].Slot
	})

	return summaries, nil
}
