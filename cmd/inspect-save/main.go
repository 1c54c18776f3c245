package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/sparta-village/internal/config"
	"github.com/KirkDiggler/sparta-village/internal/domain/equipment"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
	"github.com/KirkDiggler/sparta-village/internal/repositories/characters"
	"github.com/KirkDiggler/sparta-village/internal/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	slot := flag.String("slot", "", "Save slot to inspect (defaults to SAVE_SLOT)")
	all := flag.Bool("all", false, "List every save slot")
	raw := flag.Bool("raw", false, "Print the encoded save record")
	flag.Parse()

	if err := run(*slot, *all, *raw); err != nil {
		log.Fatal(err)
	}
}

func run(slot string, all, raw bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if slot == "" {
		slot = cfg.Save.Slot
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Save.Backend, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Failed to close storage: %v", err)
		}
	}()

	if all {
		if err := listSaves(ctx, store.Repository); err != nil {
			return fmt.Errorf("failed to list saves: %w", err)
		}
		return nil
	}

	if err := showSave(ctx, store.Repository, slot, raw); err != nil {
		return fmt.Errorf("failed to inspect slot %s: %w", slot, err)
	}
	return nil
}

func listSaves(ctx context.Context, repo characters.Repository) error {
	summaries, err := repo.List(ctx)
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		fmt.Println("No saves found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tNAME\tCLASS\tLEVEL\tGOLD\tCLEARS\tUPDATED")
	for _, s := range summaries {
		if s.Corrupt {
			fmt.Fprintf(w, "%s\t(corrupt)\t\t\t\t\t%s\n", s.Slot, formatTime(s))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			s.Slot, s.Name, s.Class, s.Level, s.Gold, s.DungeonClears, formatTime(s))
	}
	return w.Flush()
}

func showSave(ctx context.Context, repo characters.Repository, slot string, raw bool) error {
	char, err := repo.Load(ctx, slot)
	if apperr.IsCorruptSave(err) {
		fmt.Printf("Slot %s is corrupt: %v\n", slot, err)
		if meta := apperr.GetMeta(err); len(meta) > 0 {
			fmt.Printf("Details: %v\n", meta)
		}
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("=== Save Slot %s ===\n", slot)
	fmt.Printf("Name: %s (%s)\n", char.Name, char.Class)
	fmt.Printf("Level: %d\n", char.Level)
	fmt.Printf("Attack: %d (base %d)\n", char.EffectiveAttack(), char.Attack)
	fmt.Printf("Defense: %d (base %d)\n", char.EffectiveDefense(), char.Defense)
	fmt.Printf("Health: %d\n", char.Health)
	fmt.Printf("Gold: %d\n", char.Gold)
	fmt.Printf("Dungeon Clears: %d\n", char.DungeonClears)

	fmt.Printf("\nInventory (%d):\n", char.ItemCount())
	for i, item := range char.Items() {
		mark := " "
		if item.Equipped {
			mark = "E"
		}
		fmt.Printf("  %d. [%s] %s (%s, +%d atk, +%d def, %d G)\n",
			i+1, mark, item.Name, item.Slot, item.AttackBonus, item.DefenseBonus, item.Price)
	}

	fmt.Printf("\nEquipped:\n")
	for _, s := range equipment.Slots {
		name := "-"
		if item := char.EquippedItem(s); item != nil {
			name = item.Name
		}
		fmt.Printf("  %s: %s\n", s, name)
	}

	if raw {
		data, err := characters.Encode(char)
		if err != nil {
			return err
		}
		fmt.Printf("\nRecord:\n%s", data)
	}

	return nil
}

func formatTime(s *characters.SaveSummary) string {
	if s.UpdatedAt.IsZero() {
		return "-"
	}
	return s.UpdatedAt.Local().Format("2006-01-02 15:04:05")
}
